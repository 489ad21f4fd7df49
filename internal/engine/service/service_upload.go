package service

import (
	"context"
	"path"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/go-arcade/ats/internal/engine/model"
	"github.com/go-arcade/ats/internal/pkg/apperr"
	"github.com/go-arcade/ats/internal/pkg/storage"
	"github.com/go-arcade/ats/pkg/id"
	"github.com/go-arcade/ats/pkg/log"
	"github.com/go-arcade/ats/pkg/metrics"
)

/**
 * @file: service_upload.go
 * @description: resume upload broker
 */

const (
	defaultResumeContentType = "application/pdf"
	defaultResumeExt         = "pdf"
	resumePrefix             = "resumes"
)

var (
	allowedResumeTypes = []string{"application/pdf", "image/jpeg", "image/png", "image/gif"}
	resumeExtPattern   = regexp.MustCompile(`^[A-Za-z0-9]{1,8}$`)
)

// UploadSlot is a single object write credential plus the object's permanent
// read URL.
type UploadSlot struct {
	UploadURL string            `json:"upload_url"`
	Method    string            `json:"method"`
	Headers   map[string]string `json:"headers,omitempty"`
	ExpiresAt time.Time         `json:"expires_at"`
	PublicURL string            `json:"public_url"`
	Key       string            `json:"key"`
}

type UploadService struct {
	presigner storage.Presigner
	expiry    time.Duration
	recorder  *metrics.Recorder
}

// NewUploadService accepts a nil presigner; every request then fails as
// UpstreamUnavailable.
func NewUploadService(presigner storage.Presigner, conf *storage.Storage, recorder *metrics.Recorder) *UploadService {
	expiry := time.Hour
	if conf != nil && conf.UploadExpiry > 0 {
		expiry = conf.Expiry()
	}
	return &UploadService{
		presigner: presigner,
		expiry:    expiry,
		recorder:  recorder,
	}
}

// RequestSlot mints a presigned PUT for a fresh object key. The caller's file
// name only contributes its extension.
func (us *UploadService) RequestSlot(ctx context.Context, req *model.UploadSlotReq) (slot *UploadSlot, err error) {
	ctx, span := tracer.Start(ctx, "UploadService.RequestSlot")
	defer func() {
		endSpan(span, err)
		result := "issued"
		if err != nil {
			result = string(apperr.KindOf(err))
		}
		us.recorder.UploadSlot(result)
	}()

	contentType := strings.ToLower(strings.TrimSpace(req.ContentType))
	if contentType == "" {
		contentType = defaultResumeContentType
	}
	if !slices.Contains(allowedResumeTypes, contentType) {
		return nil, apperr.Validation("invalid content type, allowed: %v", allowedResumeTypes)
	}
	if us.presigner == nil {
		return nil, apperr.Upstream(nil, "resume storage is not configured")
	}

	key := path.Join(resumePrefix, id.GetUUID()+"."+resumeExt(req.FileName))
	target, err := us.presigner.PresignPut(ctx, key, contentType, us.expiry)
	if err != nil {
		log.WithContext(ctx).Errorw("presign resume upload failed", "key", key, "error", err)
		return nil, apperr.Upstream(err, "resume storage unavailable")
	}

	return &UploadSlot{
		UploadURL: target.URL,
		Method:    target.Method,
		Headers:   target.Headers,
		ExpiresAt: target.ExpiresAt,
		PublicURL: us.presigner.PublicURL(key),
		Key:       key,
	}, nil
}

func resumeExt(fileName string) string {
	i := strings.LastIndex(fileName, ".")
	if i < 0 {
		return defaultResumeExt
	}
	ext := fileName[i+1:]
	if !resumeExtPattern.MatchString(ext) {
		return defaultResumeExt
	}
	return strings.ToLower(ext)
}

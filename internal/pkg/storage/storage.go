package storage

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	ProviderS3    = "s3"
	ProviderMinio = "minio"
)

// Storage configures the blob store that receives resume uploads.
type Storage struct {
	Provider      string
	Endpoint      string
	Bucket        string
	Region        string
	AccessKey     string
	SecretKey     string
	UseTLS        bool
	UsePathStyle  bool
	BasePath      string
	PublicBaseURL string // read URL prefix, e.g. a CDN in front of the bucket
	UploadExpiry  int    // seconds
}

func (s *Storage) SetDefaults() {
	if s.Provider == "" {
		s.Provider = ProviderS3
	}
	if s.Region == "" {
		s.Region = "us-east-1"
	}
	if s.UploadExpiry <= 0 {
		s.UploadExpiry = 3600
	}
}

func (s *Storage) Validate() error {
	switch s.Provider {
	case ProviderS3, ProviderMinio:
	default:
		return fmt.Errorf("unsupported storage provider: %s", s.Provider)
	}
	if s.Bucket == "" {
		return fmt.Errorf("storage bucket is required")
	}
	if s.Provider == ProviderMinio && s.Endpoint == "" {
		return fmt.Errorf("storage endpoint is required for minio")
	}
	return nil
}

func (s *Storage) Expiry() time.Duration {
	return time.Duration(s.UploadExpiry) * time.Second
}

// UploadTarget is a presigned single object write.
type UploadTarget struct {
	URL       string            `json:"url"`
	Method    string            `json:"method"`
	Headers   map[string]string `json:"headers,omitempty"`
	ExpiresAt time.Time         `json:"expires_at"`
}

// Presigner mints time boxed write credentials for one object key.
type Presigner interface {
	// PresignPut returns a PUT target for key that only accepts contentType.
	PresignPut(ctx context.Context, key, contentType string, expiry time.Duration) (*UploadTarget, error)
	// PublicURL is the permanent read URL of key, valid before the write completes.
	PublicURL(key string) string
}

func getFullPath(basePath, name string) string {
	basePath = strings.Trim(basePath, "/")
	name = strings.TrimLeft(name, "/")
	if basePath == "" {
		return name
	}
	return basePath + "/" + name
}

func publicURL(s *Storage, fullPath string) string {
	if s.PublicBaseURL != "" {
		return strings.TrimRight(s.PublicBaseURL, "/") + "/" + fullPath
	}
	endpoint := strings.TrimRight(s.Endpoint, "/")
	if endpoint == "" {
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.Bucket, s.Region, fullPath)
	}
	if !strings.Contains(endpoint, "://") {
		scheme := "http"
		if s.UseTLS {
			scheme = "https"
		}
		endpoint = scheme + "://" + endpoint
	}
	return fmt.Sprintf("%s/%s/%s", endpoint, s.Bucket, fullPath)
}

func headerMap(h http.Header) map[string]string {
	if len(h) == 0 {
		return nil
	}
	out := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 && !strings.EqualFold(k, "Host") {
			out[http.CanonicalHeaderKey(k)] = v[0]
		}
	}
	return out
}

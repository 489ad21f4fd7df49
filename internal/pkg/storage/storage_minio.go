package storage

import (
	"context"
	"net/http"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioStorage struct {
	Client *minio.Client
	s      *Storage
}

func newMinio(s *Storage) (*MinioStorage, error) {
	client, err := minio.New(s.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(s.AccessKey, s.SecretKey, ""),
		Secure: s.UseTLS,
		// a fixed region keeps presigning free of bucket location lookups
		Region: s.Region,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStorage{Client: client, s: s}, nil
}

func (m *MinioStorage) PresignPut(ctx context.Context, key, contentType string, expiry time.Duration) (*UploadTarget, error) {
	fullPath := getFullPath(m.s.BasePath, key)

	// signing the content type pins the upload to the declared type
	signed := http.Header{}
	signed.Set("Content-Type", contentType)
	u, err := m.Client.PresignHeader(ctx, http.MethodPut, m.s.Bucket, fullPath, expiry, nil, signed)
	if err != nil {
		return nil, err
	}

	return &UploadTarget{
		URL:       u.String(),
		Method:    http.MethodPut,
		Headers:   headerMap(signed),
		ExpiresAt: time.Now().UTC().Add(expiry),
	}, nil
}

func (m *MinioStorage) PublicURL(key string) string {
	return publicURL(m.s, getFullPath(m.s.BasePath, key))
}

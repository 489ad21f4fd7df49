package storage

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFullPath(t *testing.T) {
	assert.Equal(t, "resumes/a.pdf", getFullPath("", "resumes/a.pdf"))
	assert.Equal(t, "ats/resumes/a.pdf", getFullPath("/ats/", "/resumes/a.pdf"))
}

func TestStorage_Validate(t *testing.T) {
	s := &Storage{}
	s.SetDefaults()
	assert.Equal(t, ProviderS3, s.Provider)
	assert.Equal(t, time.Hour, s.Expiry())
	assert.Error(t, s.Validate())

	s.Bucket = "b"
	assert.NoError(t, s.Validate())

	s.Provider = ProviderMinio
	assert.Error(t, s.Validate())

	s.Provider = "ftp"
	assert.Error(t, s.Validate())
}

func TestS3_PresignPut(t *testing.T) {
	p, err := NewPresigner(&Storage{
		Provider:     ProviderS3,
		Endpoint:     "http://localhost:9000",
		Bucket:       "ats-uploads",
		AccessKey:    "AKIAEXAMPLE",
		SecretKey:    "secret",
		UsePathStyle: true,
	})
	require.NoError(t, err)

	target, err := p.PresignPut(context.Background(), "resumes/abc.pdf", "application/pdf", 15*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(target.URL)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.Equal(t, "/ats-uploads/resumes/abc.pdf", u.Path)
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
	assert.Equal(t, "PUT", target.Method)
	assert.Equal(t, "application/pdf", target.Headers["Content-Type"])

	assert.Equal(t, "http://localhost:9000/ats-uploads/resumes/abc.pdf", p.PublicURL("resumes/abc.pdf"))
}

func TestMinio_PresignPut(t *testing.T) {
	p, err := NewPresigner(&Storage{
		Provider:      ProviderMinio,
		Endpoint:      "minio.local:9000",
		Bucket:        "ats",
		AccessKey:     "minio",
		SecretKey:     "minio123",
		BasePath:      "prod",
		PublicBaseURL: "https://cdn.example.com/",
	})
	require.NoError(t, err)

	target, err := p.PresignPut(context.Background(), "resumes/abc.png", "image/png", time.Hour)
	require.NoError(t, err)

	u, err := url.Parse(target.URL)
	require.NoError(t, err)
	assert.Equal(t, "minio.local:9000", u.Host)
	assert.Equal(t, "/ats/prod/resumes/abc.png", u.Path)
	assert.Contains(t, u.Query().Get("X-Amz-SignedHeaders"), "content-type")
	assert.Equal(t, "image/png", target.Headers["Content-Type"])
	assert.WithinDuration(t, time.Now().Add(time.Hour), target.ExpiresAt, time.Minute)

	assert.Equal(t, "https://cdn.example.com/prod/resumes/abc.png", p.PublicURL("resumes/abc.png"))
}

func TestPublicURL_Defaults(t *testing.T) {
	s := &Storage{Bucket: "b", Region: "eu-west-1"}
	assert.Equal(t, "https://b.s3.eu-west-1.amazonaws.com/k", publicURL(s, "k"))

	s = &Storage{Bucket: "b", Endpoint: "files.local", UseTLS: true}
	assert.Equal(t, "https://files.local/b/k", publicURL(s, "k"))
}

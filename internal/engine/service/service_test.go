package service

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-arcade/ats/internal/engine/config"
	"github.com/go-arcade/ats/internal/engine/model"
	"github.com/go-arcade/ats/internal/engine/repo"
	"github.com/go-arcade/ats/internal/pkg/apperr"
	"github.com/go-arcade/ats/internal/pkg/storage"
	"github.com/go-arcade/ats/pkg/cache"
	"github.com/go-arcade/ats/pkg/database"
	"github.com/go-arcade/ats/pkg/metrics"
	"github.com/stretchr/testify/require"
)

type fakePresigner struct {
	err  error
	keys []string
}

func (f *fakePresigner) PresignPut(_ context.Context, key, contentType string, expiry time.Duration) (*storage.UploadTarget, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.keys = append(f.keys, key)
	return &storage.UploadTarget{
		URL:       "https://blob.example.com/bucket/" + key + "?sig=1",
		Method:    "PUT",
		Headers:   map[string]string{"Content-Type": contentType},
		ExpiresAt: time.Now().Add(expiry),
	}, nil
}

func (f *fakePresigner) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

type testEnv struct {
	repos     *repo.Repositories
	services  *Services
	presigner *fakePresigner
}

func newTestEnv(t *testing.T, mutate ...func(*config.PipelineConfig, *config.IntakeConfig)) *testEnv {
	t.Helper()
	m, err := database.NewManager(database.Database{
		Driver: database.DriverSQLite,
		SQLite: database.SQLiteConfig{Path: filepath.Join(t.TempDir(), "ats.db")},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })
	require.NoError(t, database.AutoMigrate(m.Database()))

	pipelineConf := config.PipelineConfig{AuditNotes: true}
	intakeConf := config.IntakeConfig{}
	for _, fn := range mutate {
		fn(&pipelineConf, &intakeConf)
	}

	repos := repo.NewRepositories(m, cache.NewFastCache(cache.FastCacheConfig{}))
	presigner := &fakePresigner{}
	services := NewServices(repos, presigner, &storage.Storage{UploadExpiry: 600}, pipelineConf, intakeConf, metrics.NewRecorder())
	return &testEnv{repos: repos, services: services, presigner: presigner}
}

// onboard creates a shop for a fresh operator and returns its principal.
func (e *testEnv) onboard(t *testing.T, userId, name string) *Principal {
	t.Helper()
	ctx := context.Background()
	p, err := e.services.Identity.Resolve(ctx, userId, userId+"@example.com")
	require.NoError(t, err)
	_, err = e.services.Shop.Create(ctx, p, &model.CreateShopReq{Name: name})
	require.NoError(t, err)

	p, err = e.services.Identity.Resolve(ctx, userId, userId+"@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, p.ShopId)
	return p
}

func (e *testEnv) submit(t *testing.T, p *Principal, name, position string) *model.Applicant {
	t.Helper()
	a, err := e.services.Intake.Submit(context.Background(), &model.ApplicantDraft{
		Shop:            p.ShopId,
		FullName:        name,
		Email:           strings.ReplaceAll(strings.ToLower(name), " ", ".") + "@x.com",
		Phone:           "555-0100",
		PositionApplied: position,
	})
	require.NoError(t, err)
	return a
}

func requireKind(t *testing.T, want apperr.Kind, err error) {
	t.Helper()
	require.Error(t, err)
	var ae *apperr.Error
	require.True(t, errors.As(err, &ae), "expected *apperr.Error, got %T: %v", err, err)
	require.Equal(t, want, ae.Kind, ae.Error())
}

func ptr[T any](v T) *T {
	return &v
}

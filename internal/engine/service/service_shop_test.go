package service

import (
	"context"
	"strings"
	"testing"

	"github.com/go-arcade/ats/internal/engine/model"
	"github.com/go-arcade/ats/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityService_Resolve(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.services.Identity.Resolve(ctx, "user-1", "u1@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user-1", p.UserId)
	assert.Empty(t, p.ShopId)
	_, err = p.Tenant()
	requireKind(t, apperr.KindForbidden, err)

	_, err = env.services.Identity.Resolve(ctx, "", "")
	requireKind(t, apperr.KindUnauthorized, err)

	p = env.onboard(t, "user-1", "JJ Auto")
	shopId, err := p.Tenant()
	require.NoError(t, err)
	assert.NotEmpty(t, shopId)
}

func TestShopService_Create(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.services.Identity.Resolve(ctx, "user-1", "u1@example.com")
	require.NoError(t, err)
	shop, err := env.services.Shop.Create(ctx, p, &model.CreateShopReq{Name: "JJ Auto", Slug: "jj-auto"})
	require.NoError(t, err)
	assert.Equal(t, "jj-auto", shop.Slug)
	assert.Equal(t, "JJ Auto", shop.Name)
	assert.NotNil(t, shop.Settings)

	_, err = env.services.Shop.Create(ctx, p, &model.CreateShopReq{Name: "Second"})
	requireKind(t, apperr.KindConflict, err)

	// a stale principal is still rejected by the repository
	stale := &Principal{UserId: "user-1", Email: "u1@example.com"}
	_, err = env.services.Shop.Create(ctx, stale, &model.CreateShopReq{Name: "Third"})
	requireKind(t, apperr.KindConflict, err)
}

func TestShopService_SlugCollision(t *testing.T) {
	env := newTestEnv(t)
	first := env.onboard(t, "user-1", "JJ Auto")
	second := env.onboard(t, "user-2", "JJ Auto!")

	a, err := env.services.Shop.Mine(context.Background(), first)
	require.NoError(t, err)
	b, err := env.services.Shop.Mine(context.Background(), second)
	require.NoError(t, err)

	assert.Equal(t, "jj-auto", a.Slug)
	assert.True(t, strings.HasPrefix(b.Slug, "jj-auto-"), b.Slug)
	assert.Equal(t, model.Slugify(b.Slug), b.Slug)
}

func TestShopService_CreateValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := &Principal{UserId: "user-1"}

	_, err := env.services.Shop.Create(ctx, p, &model.CreateShopReq{Name: "   "})
	requireKind(t, apperr.KindValidation, err)

	_, err = env.services.Shop.Create(ctx, p, &model.CreateShopReq{Name: "!!!"})
	requireKind(t, apperr.KindValidation, err)
}

func TestShopService_PublicLookups(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.onboard(t, "user-1", "JJ Auto")

	pub, err := env.services.Shop.BySlug(ctx, "jj-auto")
	require.NoError(t, err)
	assert.Equal(t, p.ShopId, pub.ShopId)
	assert.Equal(t, "JJ Auto", pub.Name)

	pub, err = env.services.Shop.ById(ctx, p.ShopId)
	require.NoError(t, err)
	assert.Equal(t, "jj-auto", pub.Slug)

	_, err = env.services.Shop.ById(ctx, "not-a-uuid")
	requireKind(t, apperr.KindNotFound, err)
	_, err = env.services.Shop.BySlug(ctx, "nope")
	requireKind(t, apperr.KindNotFound, err)

	_, err = env.services.Shop.Mine(ctx, &Principal{UserId: "user-9"})
	requireKind(t, apperr.KindNotFound, err)
}

func TestShopService_Resolve(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.onboard(t, "user-1", "JJ Auto")

	shop, err := env.services.Shop.Resolve(ctx, "jj-auto")
	require.NoError(t, err)
	assert.Equal(t, p.ShopId, shop.ShopId)

	shop, err = env.services.Shop.Resolve(ctx, p.ShopId)
	require.NoError(t, err)
	assert.Equal(t, "jj-auto", shop.Slug)

	for _, ref := range []string{"", "missing", "7b0d0e4e-5a43-4d0b-9c11-2f1d3f0c9a11"} {
		_, err = env.services.Shop.Resolve(ctx, ref)
		requireKind(t, apperr.KindTenantNotFound, err)
		assert.Equal(t, apperr.TenantNotFoundMsg, apperr.As(err).Detail)
	}
}

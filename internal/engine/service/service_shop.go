package service

import (
	"context"
	"strings"

	"github.com/go-arcade/ats/internal/engine/model"
	"github.com/go-arcade/ats/internal/engine/repo"
	"github.com/go-arcade/ats/internal/pkg/apperr"
	"github.com/go-arcade/ats/pkg/id"
	"github.com/go-arcade/ats/pkg/log"
	"gorm.io/datatypes"
)

/**
 * @file: service_shop.go
 * @description: tenant onboarding and public shop lookups
 */

const slugBaseLen = 40

type ShopService struct {
	shopRepo repo.IShopRepository
}

func NewShopService(shopRepo repo.IShopRepository) *ShopService {
	return &ShopService{shopRepo: shopRepo}
}

// Create onboards the caller's shop. A taken slug gets a random suffix.
func (ss *ShopService) Create(ctx context.Context, p *Principal, req *model.CreateShopReq) (shop *model.Shop, err error) {
	ctx, span := tracer.Start(ctx, "ShopService.Create")
	defer func() { endSpan(span, err) }()

	if p.ShopId != "" {
		return nil, repo.ErrOperatorHasShop
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.Validation("name is required")
	}
	source := req.Slug
	if strings.TrimSpace(source) == "" {
		source = name
	}
	slug := model.Slugify(source)
	if slug == "" {
		return nil, apperr.Validation("name must contain at least one letter or digit")
	}

	taken, err := ss.shopRepo.SlugExists(ctx, slug)
	if err != nil {
		return nil, err
	}
	if taken {
		base := []rune(slug)
		if len(base) > slugBaseLen {
			base = base[:slugBaseLen]
		}
		slug = model.Slugify(string(base) + "-" + id.ShortId())
	}

	shop = &model.Shop{
		ShopId:   id.GetUUID(),
		Name:     name,
		Slug:     slug,
		Settings: datatypes.JSONMap{},
	}
	if err := ss.shopRepo.CreateForOperator(ctx, shop, p.UserId, p.Email); err != nil {
		return nil, err
	}
	p.ShopId = shop.ShopId

	log.WithContext(ctx).Infow("shop created", "shopId", shop.ShopId, "slug", shop.Slug, "userId", p.UserId)
	return shop, nil
}

// Mine returns the caller's own shop with settings.
func (ss *ShopService) Mine(ctx context.Context, p *Principal) (*model.Shop, error) {
	shopId, err := p.Tenant()
	if err != nil {
		return nil, apperr.NotFound("shop")
	}
	return ss.shopRepo.Get(ctx, shopId)
}

func (ss *ShopService) BySlug(ctx context.Context, slug string) (*model.ShopPublic, error) {
	shop, err := ss.shopRepo.LookupBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return shop.Public(), nil
}

func (ss *ShopService) ById(ctx context.Context, shopId string) (*model.ShopPublic, error) {
	if !id.IsUUID(shopId) {
		return nil, apperr.NotFound("shop")
	}
	shop, err := ss.shopRepo.LookupById(ctx, shopId)
	if err != nil {
		return nil, err
	}
	return shop.Public(), nil
}

// Resolve maps a public reference (shop id or slug) to a shop. Any miss is
// reported as the same generic TenantNotFound.
func (ss *ShopService) Resolve(ctx context.Context, ref string) (*model.Shop, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, apperr.TenantNotFound()
	}
	if id.IsUUID(ref) {
		shop, err := ss.shopRepo.LookupById(ctx, ref)
		if err == nil {
			return shop, nil
		}
		if apperr.KindOf(err) != apperr.KindNotFound {
			return nil, err
		}
	}
	shop, err := ss.shopRepo.LookupBySlug(ctx, ref)
	if apperr.KindOf(err) == apperr.KindNotFound {
		return nil, apperr.TenantNotFound()
	}
	return shop, err
}

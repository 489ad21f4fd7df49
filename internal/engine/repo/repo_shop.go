package repo

import (
	"context"
	"errors"
	"time"

	"github.com/go-arcade/ats/internal/engine/model"
	"github.com/go-arcade/ats/internal/pkg/apperr"
	"github.com/go-arcade/ats/pkg/cache"
	"github.com/go-arcade/ats/pkg/database"
	"gorm.io/gorm"
)

const (
	shopBySlugCacheKeyPrefix = "ats:shop:slug:"
	shopByIdCacheKeyPrefix   = "ats:shop:id:"
	shopCacheTTL             = 10 * time.Minute
)

// ErrOperatorHasShop is returned when onboarding runs twice for one operator.
var ErrOperatorHasShop = apperr.Conflict("operator already has a shop")

type IShopRepository interface {
	Get(ctx context.Context, shopId string) (*model.Shop, error)
	LookupById(ctx context.Context, shopId string) (*model.Shop, error)
	LookupBySlug(ctx context.Context, slug string) (*model.Shop, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	CreateForOperator(ctx context.Context, shop *model.Shop, userId, email string) error
}

type ShopRepo struct {
	database.IDatabase
	cache.ICache
}

func NewShopRepo(db database.IDatabase, c cache.ICache) IShopRepository {
	return &ShopRepo{
		IDatabase: db,
		ICache:    c,
	}
}

// Get reads a shop from the database, bypassing the cache.
func (sr *ShopRepo) Get(ctx context.Context, shopId string) (*model.Shop, error) {
	var shop model.Shop
	err := database.ReadDB(sr.Database()).WithContext(ctx).
		Where("shop_id = ?", shopId).
		First(&shop).Error
	if err != nil {
		return nil, translate(err, "shop")
	}
	return &shop, nil
}

// LookupById serves public lookups by shop id through the cache.
func (sr *ShopRepo) LookupById(ctx context.Context, shopId string) (*model.Shop, error) {
	cq := cache.NewCachedQuery(
		sr.ICache,
		func(params ...any) string { return shopByIdCacheKeyPrefix + params[0].(string) },
		func(ctx context.Context, params ...any) (*model.Shop, error) {
			return sr.Get(ctx, params[0].(string))
		},
		cache.WithTTL[*model.Shop](shopCacheTTL),
		cache.WithLogPrefix[*model.Shop]("[ShopRepo]"),
	)
	return cq.Get(ctx, shopId)
}

// LookupBySlug serves public lookups by slug through the cache.
func (sr *ShopRepo) LookupBySlug(ctx context.Context, slug string) (*model.Shop, error) {
	cq := cache.NewCachedQuery(
		sr.ICache,
		func(params ...any) string { return shopBySlugCacheKeyPrefix + params[0].(string) },
		func(ctx context.Context, params ...any) (*model.Shop, error) {
			var shop model.Shop
			err := database.ReadDB(sr.Database()).WithContext(ctx).
				Where("slug = ?", params[0].(string)).
				First(&shop).Error
			if err != nil {
				return nil, translate(err, "shop")
			}
			return &shop, nil
		},
		cache.WithTTL[*model.Shop](shopCacheTTL),
		cache.WithLogPrefix[*model.Shop]("[ShopRepo]"),
	)
	return cq.Get(ctx, slug)
}

func (sr *ShopRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := database.WriteDB(sr.Database()).WithContext(ctx).
		Model(&model.Shop{}).
		Where("slug = ?", slug).
		Count(&count).Error
	if err != nil {
		return false, translate(err, "shop")
	}
	return count > 0, nil
}

// CreateForOperator inserts the shop and links it to the operator in one
// transaction. The operator row is created on first use.
func (sr *ShopRepo) CreateForOperator(ctx context.Context, shop *model.Shop, userId, email string) error {
	err := sr.Database().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var op model.Operator
		err := tx.Where("user_id = ?", userId).First(&op).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			op = model.Operator{UserId: userId, Email: email}
			if err := tx.Create(&op).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		}
		if op.HasShop() {
			return ErrOperatorHasShop
		}

		if err := tx.Create(shop).Error; err != nil {
			return err
		}

		res := tx.Model(&model.Operator{}).
			Where("user_id = ? AND shop_id = ?", userId, "").
			Updates(map[string]any{"shop_id": shop.ShopId, "email": email})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrOperatorHasShop
		}
		return nil
	})
	return translate(err, "shop")
}

package repo

import (
	"context"

	"github.com/go-arcade/ats/internal/engine/model"
	"github.com/go-arcade/ats/pkg/database"
)

type IOperatorRepository interface {
	GetByUserId(ctx context.Context, userId string) (*model.Operator, error)
}

type OperatorRepo struct {
	database.IDatabase
}

func NewOperatorRepo(db database.IDatabase) IOperatorRepository {
	return &OperatorRepo{
		IDatabase: db,
	}
}

// GetByUserId reads from the primary so a freshly onboarded operator sees its shop.
func (r *OperatorRepo) GetByUserId(ctx context.Context, userId string) (*model.Operator, error) {
	var op model.Operator
	err := database.WriteDB(r.Database()).WithContext(ctx).
		Select("id", "user_id", "email", "shop_id", "created_at", "updated_at").
		Where("user_id = ?", userId).
		First(&op).Error
	if err != nil {
		return nil, translate(err, "operator")
	}
	return &op, nil
}

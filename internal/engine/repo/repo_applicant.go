package repo

import (
	"context"
	"errors"
	"maps"

	"github.com/go-arcade/ats/internal/engine/model"
	"github.com/go-arcade/ats/pkg/database"
	"github.com/go-arcade/ats/pkg/statemachine"
	"gorm.io/gorm"
)

// ErrStaleStatus means the compare-and-set on status matched no row: the
// applicant moved to another stage (or vanished) since it was read.
var ErrStaleStatus = errors.New("applicant status changed concurrently")

// StatusChange is a guarded status write. Audit, when set, is inserted in the
// same transaction.
type StatusChange struct {
	From  statemachine.Stage
	To    statemachine.Stage
	Audit *model.Note
}

type IApplicantRepository interface {
	Create(ctx context.Context, applicant *model.Applicant, audit *model.Note) error
	Get(ctx context.Context, shopId, applicantId string) (*model.Applicant, error)
	GetPrimary(ctx context.Context, shopId, applicantId string) (*model.Applicant, error)
	List(ctx context.Context, shopId string, filter model.ApplicantFilter) ([]*model.Applicant, error)
	Update(ctx context.Context, shopId, applicantId string, fields map[string]any, change *StatusChange) (*model.Applicant, error)
	Delete(ctx context.Context, shopId, applicantId string) error
}

type ApplicantRepo struct {
	database.IDatabase
}

func NewApplicantRepo(db database.IDatabase) IApplicantRepository {
	return &ApplicantRepo{
		IDatabase: db,
	}
}

func (ar *ApplicantRepo) Create(ctx context.Context, applicant *model.Applicant, audit *model.Note) error {
	err := ar.Database().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(applicant).Error; err != nil {
			return err
		}
		if audit != nil {
			return tx.Create(audit).Error
		}
		return nil
	})
	return translate(err, "applicant")
}

func (ar *ApplicantRepo) Get(ctx context.Context, shopId, applicantId string) (*model.Applicant, error) {
	return ar.get(database.ReadDB(ar.Database()).WithContext(ctx), shopId, applicantId)
}

// GetPrimary reads from the primary, for re-validation after a lost race.
func (ar *ApplicantRepo) GetPrimary(ctx context.Context, shopId, applicantId string) (*model.Applicant, error) {
	return ar.get(database.WriteDB(ar.Database()).WithContext(ctx), shopId, applicantId)
}

func (ar *ApplicantRepo) get(db *gorm.DB, shopId, applicantId string) (*model.Applicant, error) {
	var applicant model.Applicant
	err := db.Where("applicant_id = ? AND shop_id = ?", applicantId, shopId).
		First(&applicant).Error
	if err != nil {
		return nil, translate(err, "applicant")
	}
	return &applicant, nil
}

// List returns the shop's applicants, newest first. Every filter narrows.
func (ar *ApplicantRepo) List(ctx context.Context, shopId string, filter model.ApplicantFilter) ([]*model.Applicant, error) {
	query := database.ReadDB(ar.Database()).WithContext(ctx).
		Model(&model.Applicant{}).
		Select(model.SummaryColumns).
		Where("shop_id = ?", shopId)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Position != "" {
		query = query.Where("position_applied = ?", filter.Position)
	}
	if filter.Search != "" {
		p := likePattern(filter.Search)
		query = query.Where(
			"LOWER(full_name) LIKE ? ESCAPE '!' OR LOWER(email) LIKE ? ESCAPE '!' OR LOWER(phone) LIKE ? ESCAPE '!'",
			p, p, p,
		)
	}

	var applicants []*model.Applicant
	if err := query.Order("created_at DESC, id DESC").Find(&applicants).Error; err != nil {
		return nil, translate(err, "applicant")
	}
	return applicants, nil
}

// Update writes fields and, when change is set, moves status from change.From
// to change.To with a compare-and-set. It returns ErrStaleStatus when the
// guard matched nothing; the caller decides how to report that.
func (ar *ApplicantRepo) Update(ctx context.Context, shopId, applicantId string, fields map[string]any, change *StatusChange) (*model.Applicant, error) {
	values := maps.Clone(fields)
	if values == nil {
		values = map[string]any{}
	}

	var out model.Applicant
	err := ar.Database().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&model.Applicant{}).
			Where("applicant_id = ? AND shop_id = ?", applicantId, shopId)
		if change != nil {
			values["status"] = change.To
			query = query.Where("status = ?", change.From)
		}

		if len(values) > 0 {
			res := query.Updates(values)
			if res.Error != nil {
				return res.Error
			}
			if change != nil && res.RowsAffected == 0 {
				return ErrStaleStatus
			}
		}
		if change != nil && change.Audit != nil {
			if err := tx.Create(change.Audit).Error; err != nil {
				return err
			}
		}

		return tx.Where("applicant_id = ? AND shop_id = ?", applicantId, shopId).
			First(&out).Error
	})
	if errors.Is(err, ErrStaleStatus) {
		return nil, err
	}
	if err != nil {
		return nil, translate(err, "applicant")
	}
	return &out, nil
}

// Delete removes the applicant and its notes in one transaction.
func (ar *ApplicantRepo) Delete(ctx context.Context, shopId, applicantId string) error {
	err := ar.Database().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("applicant_id = ? AND shop_id = ?", applicantId, shopId).
			Delete(&model.Applicant{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("applicant_id = ? AND shop_id = ?", applicantId, shopId).
			Delete(&model.Note{}).Error
	})
	return translate(err, "applicant")
}

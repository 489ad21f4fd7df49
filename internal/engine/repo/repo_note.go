package repo

import (
	"context"

	"github.com/go-arcade/ats/internal/engine/model"
	"github.com/go-arcade/ats/pkg/database"
	"gorm.io/gorm"
)

type INoteRepository interface {
	Append(ctx context.Context, note *model.Note) error
	List(ctx context.Context, shopId, applicantId string) ([]*model.Note, error)
}

type NoteRepo struct {
	database.IDatabase
}

func NewNoteRepo(db database.IDatabase) INoteRepository {
	return &NoteRepo{
		IDatabase: db,
	}
}

// Append inserts the note if its applicant is visible to note.ShopId.
func (nr *NoteRepo) Append(ctx context.Context, note *model.Note) error {
	err := nr.Database().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&model.Applicant{}).
			Where("applicant_id = ? AND shop_id = ?", note.ApplicantId, note.ShopId).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count == 0 {
			return translate(gorm.ErrRecordNotFound, "applicant")
		}
		return tx.Create(note).Error
	})
	return translate(err, "note")
}

// List returns the ledger oldest first. note_id is a monotonic ULID and breaks
// timestamp ties in insertion order.
func (nr *NoteRepo) List(ctx context.Context, shopId, applicantId string) ([]*model.Note, error) {
	var notes []*model.Note
	err := database.ReadDB(nr.Database()).WithContext(ctx).
		Where("applicant_id = ? AND shop_id = ?", applicantId, shopId).
		Order("created_at ASC, note_id ASC").
		Find(&notes).Error
	if err != nil {
		return nil, translate(err, "note")
	}
	return notes, nil
}

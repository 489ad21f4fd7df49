package service

import (
	"context"
	"strings"

	"github.com/go-arcade/ats/internal/engine/model"
	"github.com/go-arcade/ats/internal/engine/repo"
	"github.com/go-arcade/ats/internal/pkg/apperr"
	"github.com/go-arcade/ats/pkg/id"
	"github.com/go-arcade/ats/pkg/metrics"
)

// NoteService is the append only notes ledger.
type NoteService struct {
	applicantRepo repo.IApplicantRepository
	noteRepo      repo.INoteRepository
	recorder      *metrics.Recorder
}

func NewNoteService(applicantRepo repo.IApplicantRepository, noteRepo repo.INoteRepository, recorder *metrics.Recorder) *NoteService {
	return &NoteService{
		applicantRepo: applicantRepo,
		noteRepo:      noteRepo,
		recorder:      recorder,
	}
}

// Append adds a note authored by the caller. added_by is a display name the
// client may override; added_by_id is always the caller.
func (ns *NoteService) Append(ctx context.Context, p *Principal, applicantId string, req *model.CreateNoteReq) (note *model.Note, err error) {
	ctx, span := tracer.Start(ctx, "NoteService.Append")
	defer func() { endSpan(span, err) }()

	shopId, err := p.Tenant()
	if err != nil {
		return nil, err
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, apperr.Validation("message is required")
	}

	var addedBy *string
	if req.AddedBy != nil && strings.TrimSpace(*req.AddedBy) != "" {
		v := strings.TrimSpace(*req.AddedBy)
		addedBy = &v
	} else if p.Email != "" {
		v := p.Email
		addedBy = &v
	}
	userId := p.UserId

	note = &model.Note{
		NoteId:      id.GetUlid(),
		ApplicantId: applicantId,
		ShopId:      shopId,
		AddedBy:     addedBy,
		AddedById:   &userId,
		Message:     message,
	}
	if err := ns.noteRepo.Append(ctx, note); err != nil {
		return nil, err
	}
	ns.recorder.NoteAppended("operator")
	return note, nil
}

// List returns the ledger oldest first. A missing applicant is NotFound,
// including one that was deleted along with its notes.
func (ns *NoteService) List(ctx context.Context, p *Principal, applicantId string) ([]*model.Note, error) {
	shopId, err := p.Tenant()
	if err != nil {
		return nil, err
	}
	if _, err := ns.applicantRepo.Get(ctx, shopId, applicantId); err != nil {
		return nil, err
	}
	notes, err := ns.noteRepo.List(ctx, shopId, applicantId)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []*model.Note{}
	}
	return notes, nil
}

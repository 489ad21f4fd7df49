package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-arcade/ats/internal/engine/config"
	"github.com/go-arcade/ats/internal/engine/model"
	"github.com/go-arcade/ats/internal/engine/repo"
	"github.com/go-arcade/ats/internal/pkg/apperr"
	"github.com/go-arcade/ats/pkg/id"
	"github.com/go-arcade/ats/pkg/log"
	"github.com/go-arcade/ats/pkg/statemachine"
	"gorm.io/datatypes"
)

// ApplicantService is the tenant scoped applicant store.
type ApplicantService struct {
	applicantRepo repo.IApplicantRepository
	pipeline      *PipelineService
	pipelineConf  config.PipelineConfig
	intakeConf    config.IntakeConfig
}

func NewApplicantService(
	applicantRepo repo.IApplicantRepository,
	pipeline *PipelineService,
	pipelineConf config.PipelineConfig,
	intakeConf config.IntakeConfig,
) *ApplicantService {
	return &ApplicantService{
		applicantRepo: applicantRepo,
		pipeline:      pipeline,
		pipelineConf:  pipelineConf,
		intakeConf:    intakeConf,
	}
}

// Create stores a new applicant for shopId. Status is always the initial stage,
// whatever the draft carries.
func (as *ApplicantService) Create(ctx context.Context, shopId string, draft *model.ApplicantDraft) (a *model.Applicant, err error) {
	ctx, span := tracer.Start(ctx, "ApplicantService.Create")
	defer func() { endSpan(span, err) }()

	a = &model.Applicant{
		ApplicantId:     id.GetUUID(),
		ShopId:          shopId,
		FullName:        strings.TrimSpace(draft.FullName),
		Email:           strings.TrimSpace(draft.Email),
		Phone:           strings.TrimSpace(draft.Phone),
		PositionApplied: strings.TrimSpace(draft.PositionApplied),
		Status:          statemachine.StageNew,
		FormData:        datatypes.JSONMap{},
		InternalData:    datatypes.JSONMap{},
	}
	switch {
	case a.FullName == "":
		return nil, apperr.Validation("full_name is required")
	case a.Email == "":
		return nil, apperr.Validation("email is required")
	case a.Phone == "":
		return nil, apperr.Validation("phone is required")
	}
	if err := as.checkPosition(a.PositionApplied); err != nil {
		return nil, err
	}
	if a.Source, err = normalizeSource(draft.Source); err != nil {
		return nil, err
	}
	if err := model.ValidateFormData(draft.FormData); err != nil {
		return nil, apperr.Validation("%s", err.Error())
	}
	if draft.FormData != nil {
		a.FormData = datatypes.JSONMap(draft.FormData)
	}

	var audit *model.Note
	if as.pipelineConf.AuditNotes {
		via := "website"
		if a.Source != nil {
			via = *a.Source
		}
		audit = systemNote(a, fmt.Sprintf("Application submitted via %s.", via))
	}
	if err := as.applicantRepo.Create(ctx, a, audit); err != nil {
		return nil, err
	}

	log.WithContext(ctx).Infow("applicant created", "shopId", shopId, "applicantId", a.ApplicantId)
	return a, nil
}

func (as *ApplicantService) Get(ctx context.Context, p *Principal, applicantId string) (*model.Applicant, error) {
	shopId, err := p.Tenant()
	if err != nil {
		return nil, err
	}
	return as.applicantRepo.Get(ctx, shopId, applicantId)
}

// List runs a fresh query on every call; there is no server side cursor.
func (as *ApplicantService) List(ctx context.Context, p *Principal, filter model.ApplicantFilter) (out []*model.ApplicantSummary, err error) {
	ctx, span := tracer.Start(ctx, "ApplicantService.List")
	defer func() { endSpan(span, err) }()

	shopId, err := p.Tenant()
	if err != nil {
		return nil, err
	}
	filter.Search = strings.TrimSpace(filter.Search)
	if filter.Status != "" {
		if _, ok := statemachine.ParseStage(filter.Status); !ok {
			return nil, apperr.Validation("invalid status, must be one of: %v", statemachine.OrderedStages)
		}
	}

	applicants, err := as.applicantRepo.List(ctx, shopId, filter)
	if err != nil {
		return nil, err
	}
	out = make([]*model.ApplicantSummary, 0, len(applicants))
	for _, a := range applicants {
		out = append(out, a.Summary())
	}
	return out, nil
}

// Update applies a partial patch. A status in the patch goes through the
// pipeline rules together with the other fields, in one transaction.
func (as *ApplicantService) Update(ctx context.Context, p *Principal, applicantId string, patch *model.ApplicantPatch) (a *model.Applicant, err error) {
	ctx, span := tracer.Start(ctx, "ApplicantService.Update")
	defer func() { endSpan(span, err) }()

	shopId, err := p.Tenant()
	if err != nil {
		return nil, err
	}
	fields, err := as.patchFields(patch)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil {
		return as.pipeline.apply(ctx, p, shopId, applicantId, fields, *patch.Status)
	}
	return as.applicantRepo.Update(ctx, shopId, applicantId, fields, nil)
}

func (as *ApplicantService) Delete(ctx context.Context, p *Principal, applicantId string) (err error) {
	ctx, span := tracer.Start(ctx, "ApplicantService.Delete")
	defer func() { endSpan(span, err) }()

	shopId, err := p.Tenant()
	if err != nil {
		return err
	}
	if err := as.applicantRepo.Delete(ctx, shopId, applicantId); err != nil {
		return err
	}
	log.WithContext(ctx).Infow("applicant deleted", "shopId", shopId, "applicantId", applicantId, "userId", p.UserId)
	return nil
}

func (as *ApplicantService) patchFields(patch *model.ApplicantPatch) (map[string]any, error) {
	fields := map[string]any{}
	required := []struct {
		column string
		value  *string
	}{
		{"full_name", patch.FullName},
		{"email", patch.Email},
		{"phone", patch.Phone},
	}
	for _, r := range required {
		if r.value == nil {
			continue
		}
		v := strings.TrimSpace(*r.value)
		if v == "" {
			return nil, apperr.Validation("%s cannot be empty", r.column)
		}
		fields[r.column] = v
	}
	if patch.PositionApplied != nil {
		v := strings.TrimSpace(*patch.PositionApplied)
		if err := as.checkPosition(v); err != nil {
			return nil, err
		}
		fields["position_applied"] = v
	}
	if patch.Source != nil {
		src, err := normalizeSource(patch.Source)
		if err != nil {
			return nil, err
		}
		if src == nil {
			fields["source"] = nil
		} else {
			fields["source"] = *src
		}
	}
	if patch.FormData != nil {
		if err := model.ValidateFormData(patch.FormData); err != nil {
			return nil, apperr.Validation("%s", err.Error())
		}
		fields["form_data"] = datatypes.JSONMap(patch.FormData)
	}
	if patch.InternalData != nil {
		fields["internal_data"] = datatypes.JSONMap(patch.InternalData)
	}
	return fields, nil
}

func (as *ApplicantService) checkPosition(position string) error {
	if position == "" {
		return apperr.Validation("position_applied is required")
	}
	if as.intakeConf.StrictPositions && !model.IsPosition(position) {
		return apperr.Validation("invalid position_applied %q", position)
	}
	return nil
}

// normalizeSource returns nil for an absent or blank source.
func normalizeSource(src *string) (*string, error) {
	if src == nil {
		return nil, nil
	}
	v := strings.TrimSpace(*src)
	if v == "" {
		return nil, nil
	}
	if !model.IsSource(v) {
		return nil, apperr.Validation("invalid source %q, must be one of: %v", v, model.Sources)
	}
	return &v, nil
}

func systemNote(a *model.Applicant, message string) *model.Note {
	author := model.SystemAuthor
	return &model.Note{
		NoteId:      id.GetUlid(),
		ApplicantId: a.ApplicantId,
		ShopId:      a.ShopId,
		AddedBy:     &author,
		Message:     message,
	}
}

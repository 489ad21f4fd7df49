package service

import (
	"context"
	"testing"

	"github.com/go-arcade/ats/internal/engine/config"
	"github.com/go-arcade/ats/internal/engine/model"
	"github.com/go-arcade/ats/internal/pkg/apperr"
	"github.com/go-arcade/ats/pkg/statemachine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntakeService_JJAutoScenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.services.Identity.Resolve(ctx, "owner", "owner@jjauto.com")
	require.NoError(t, err)
	shop, err := env.services.Shop.Create(ctx, p, &model.CreateShopReq{Name: "JJ Auto", Slug: "jj-auto"})
	require.NoError(t, err)

	a, err := env.services.Intake.Submit(ctx, &model.ApplicantDraft{
		Shop:            "jj-auto",
		FullName:        "Pat Lee",
		Email:           "pat@x.com",
		Phone:           "555-0100",
		PositionApplied: "Lube Technician",
	})
	require.NoError(t, err)
	assert.Equal(t, statemachine.StageNew, a.Status)
	assert.Equal(t, shop.ShopId, a.ShopId)
	assert.NotEmpty(t, a.ApplicantId)

	notes, err := env.services.Note.List(ctx, p, a.ApplicantId)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Application submitted via website.", notes[0].Message)
	require.NotNil(t, notes[0].AddedBy)
	assert.Equal(t, model.SystemAuthor, *notes[0].AddedBy)
	assert.Nil(t, notes[0].AddedById)
}

func TestIntakeService_IgnoresSuppliedStatus(t *testing.T) {
	env := newTestEnv(t)
	p := env.onboard(t, "owner", "JJ Auto")

	a, err := env.services.Intake.Submit(context.Background(), &model.ApplicantDraft{
		ShopId:          p.ShopId,
		FullName:        "Pat Lee",
		Email:           "pat@x.com",
		Phone:           "555-0100",
		PositionApplied: "B-Tech",
		Status:          "HIRED",
		Source:          ptr("Indeed"),
		FormData:        map[string]any{"experience_years": float64(3), "resume_url": "https://cdn.example.com/resumes/a.pdf"},
	})
	require.NoError(t, err)
	assert.Equal(t, statemachine.StageNew, a.Status)
	assert.Equal(t, "Indeed", *a.Source)

	got, err := env.services.Applicant.Get(context.Background(), p, a.ApplicantId)
	require.NoError(t, err)
	assert.Equal(t, statemachine.StageNew, got.Status)
	assert.Equal(t, "https://cdn.example.com/resumes/a.pdf", got.FormData["resume_url"])

	notes, err := env.services.Note.List(context.Background(), p, a.ApplicantId)
	require.NoError(t, err)
	assert.Equal(t, "Application submitted via Indeed.", notes[0].Message)
}

func TestIntakeService_UnknownShop(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.services.Intake.Submit(context.Background(), &model.ApplicantDraft{
		Shop:            "ghost-garage",
		FullName:        "Pat Lee",
		Email:           "pat@x.com",
		Phone:           "555-0100",
		PositionApplied: "B-Tech",
	})
	requireKind(t, apperr.KindTenantNotFound, err)
}

func TestIntakeService_Validation(t *testing.T) {
	env := newTestEnv(t, func(_ *config.PipelineConfig, i *config.IntakeConfig) {
		i.StrictPositions = true
	})
	p := env.onboard(t, "owner", "JJ Auto")

	base := func() *model.ApplicantDraft {
		return &model.ApplicantDraft{
			Shop:            "jj-auto",
			FullName:        "Pat Lee",
			Email:           "pat@x.com",
			Phone:           "555-0100",
			PositionApplied: "B-Tech",
		}
	}
	tests := []struct {
		name   string
		mutate func(d *model.ApplicantDraft)
	}{
		{"blank name", func(d *model.ApplicantDraft) { d.FullName = "  " }},
		{"blank email", func(d *model.ApplicantDraft) { d.Email = "" }},
		{"blank phone", func(d *model.ApplicantDraft) { d.Phone = "" }},
		{"blank position", func(d *model.ApplicantDraft) { d.PositionApplied = "" }},
		{"unknown position", func(d *model.ApplicantDraft) { d.PositionApplied = "Astronaut" }},
		{"unknown source", func(d *model.ApplicantDraft) { d.Source = ptr("Carrier pigeon") }},
		{"bad form data", func(d *model.ApplicantDraft) { d.FormData = map[string]any{"has_tools": true} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := base()
			tt.mutate(d)
			_, err := env.services.Intake.Submit(context.Background(), d)
			requireKind(t, apperr.KindValidation, err)
		})
	}

	list, err := env.services.Applicant.List(context.Background(), p, model.ApplicantFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestIntakeService_AuditNotesDisabled(t *testing.T) {
	env := newTestEnv(t, func(pc *config.PipelineConfig, _ *config.IntakeConfig) {
		pc.AuditNotes = false
	})
	p := env.onboard(t, "owner", "JJ Auto")
	a := env.submit(t, p, "Pat Lee", "B-Tech")

	notes, err := env.services.Note.List(context.Background(), p, a.ApplicantId)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-arcade/ats/internal/engine/config"
	"github.com/go-arcade/ats/internal/engine/model"
	"github.com/go-arcade/ats/internal/engine/repo"
	"github.com/go-arcade/ats/internal/pkg/apperr"
	"github.com/go-arcade/ats/pkg/id"
	"github.com/go-arcade/ats/pkg/log"
	"github.com/go-arcade/ats/pkg/metrics"
	"github.com/go-arcade/ats/pkg/statemachine"
	"go.opentelemetry.io/otel/attribute"
)

const (
	transitionApplied  = "applied"
	transitionRejected = "invalid"
	transitionConflict = "conflict"
)

// PipelineService validates and applies status transitions.
type PipelineService struct {
	applicantRepo repo.IApplicantRepository
	stages        *statemachine.StateMachine[statemachine.Stage]
	conf          config.PipelineConfig
	recorder      *metrics.Recorder
}

func NewPipelineService(applicantRepo repo.IApplicantRepository, conf config.PipelineConfig, recorder *metrics.Recorder) *PipelineService {
	return &PipelineService{
		applicantRepo: applicantRepo,
		stages:        statemachine.Stages(),
		conf:          conf,
		recorder:      recorder,
	}
}

// CanTransition reports whether current may move to proposed: exactly one
// stage forward, or straight to HIRED or REJECTED from a non terminal stage.
func (ps *PipelineService) CanTransition(current, proposed statemachine.Stage) bool {
	return ps.stages.CanTransition(current, proposed)
}

// NextStages lists the legal targets from the applicant's current stage.
func (ps *PipelineService) NextStages(ctx context.Context, p *Principal, applicantId string) ([]statemachine.Stage, error) {
	shopId, err := p.Tenant()
	if err != nil {
		return nil, err
	}
	a, err := ps.applicantRepo.Get(ctx, shopId, applicantId)
	if err != nil {
		return nil, err
	}
	next := ps.stages.GetValidNextStates(a.Status)
	if next == nil {
		next = []statemachine.Stage{}
	}
	return next, nil
}

func (ps *PipelineService) Transition(ctx context.Context, p *Principal, applicantId, proposed string) (*model.Applicant, error) {
	shopId, err := p.Tenant()
	if err != nil {
		return nil, err
	}
	return ps.apply(ctx, p, shopId, applicantId, nil, proposed)
}

// apply moves the applicant to proposed with a compare-and-set on the stage it
// was read at. When another writer got there first, the proposal is checked
// again against the stage that writer left: still legal means Conflict,
// otherwise InvalidTransition.
func (ps *PipelineService) apply(ctx context.Context, p *Principal, shopId, applicantId string, fields map[string]any, proposed string) (a *model.Applicant, err error) {
	ctx, span := tracer.Start(ctx, "PipelineService.Transition")
	defer func() { endSpan(span, err) }()

	to, ok := statemachine.ParseStage(proposed)
	if !ok {
		return nil, apperr.Validation("invalid status %q, must be one of: %v", proposed, statemachine.OrderedStages)
	}

	current, err := ps.applicantRepo.GetPrimary(ctx, shopId, applicantId)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("ats.applicant.from", current.Status.String()),
		attribute.String("ats.applicant.to", to.String()),
	)
	if !ps.CanTransition(current.Status, to) {
		ps.recorder.Transition(to.String(), transitionRejected)
		return nil, apperr.InvalidTransition(current.Status.String(), to.String())
	}

	change := &repo.StatusChange{From: current.Status, To: to}
	if ps.conf.AuditNotes {
		change.Audit = ps.auditNote(current, p, to)
	}

	a, err = ps.applicantRepo.Update(ctx, shopId, applicantId, fields, change)
	if errors.Is(err, repo.ErrStaleStatus) {
		return nil, ps.lostRace(ctx, shopId, applicantId, to)
	}
	if err != nil {
		return nil, err
	}

	ps.recorder.Transition(to.String(), transitionApplied)
	log.WithContext(ctx).Infow("applicant status changed",
		"shopId", shopId,
		"applicantId", applicantId,
		"from", current.Status,
		"to", to,
		"userId", p.UserId,
	)
	return a, nil
}

func (ps *PipelineService) lostRace(ctx context.Context, shopId, applicantId string, to statemachine.Stage) error {
	latest, err := ps.applicantRepo.GetPrimary(ctx, shopId, applicantId)
	if err != nil {
		return err
	}
	if !ps.CanTransition(latest.Status, to) {
		ps.recorder.Transition(to.String(), transitionRejected)
		return apperr.InvalidTransition(latest.Status.String(), to.String())
	}
	ps.recorder.Transition(to.String(), transitionConflict)
	return apperr.Conflict("applicant was modified concurrently, refetch and retry")
}

func (ps *PipelineService) auditNote(a *model.Applicant, p *Principal, to statemachine.Stage) *model.Note {
	n := &model.Note{
		NoteId:      id.GetUlid(),
		ApplicantId: a.ApplicantId,
		ShopId:      a.ShopId,
		Message:     fmt.Sprintf("Status changed from %s to %s.", a.Status, to),
	}
	if p.Email != "" {
		email := p.Email
		n.AddedBy = &email
	}
	if p.UserId != "" {
		userId := p.UserId
		n.AddedById = &userId
	}
	return n
}

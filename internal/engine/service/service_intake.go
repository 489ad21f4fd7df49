package service

import (
	"context"

	"github.com/go-arcade/ats/internal/engine/model"
	"github.com/go-arcade/ats/pkg/metrics"
	"go.opentelemetry.io/otel/attribute"
)

// IntakeService is the public application entry point.
type IntakeService struct {
	shops      *ShopService
	applicants *ApplicantService
	recorder   *metrics.Recorder
}

func NewIntakeService(shops *ShopService, applicants *ApplicantService, recorder *metrics.Recorder) *IntakeService {
	return &IntakeService{
		shops:      shops,
		applicants: applicants,
		recorder:   recorder,
	}
}

// Submit files an application with the shop named by the draft's public
// reference. A resume_url in form data is stored as given.
func (is *IntakeService) Submit(ctx context.Context, draft *model.ApplicantDraft) (a *model.Applicant, err error) {
	ctx, span := tracer.Start(ctx, "IntakeService.Submit")
	defer func() { endSpan(span, err) }()

	shop, err := is.shops.Resolve(ctx, draft.TenantRef())
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("ats.shop.id", shop.ShopId))

	// status is never taken from the public payload
	draft.Status = ""
	a, err = is.applicants.Create(ctx, shop.ShopId, draft)
	if err != nil {
		return nil, err
	}

	source := ""
	if a.Source != nil {
		source = *a.Source
	}
	is.recorder.ApplicantSubmitted(source)
	return a, nil
}

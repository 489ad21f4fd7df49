package service

import (
	"github.com/go-arcade/ats/internal/pkg/apperr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/go-arcade/ats/internal/engine/service")

// endSpan records err on span and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String("ats.error.kind", string(apperr.KindOf(err))))
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

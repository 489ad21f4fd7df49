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

package apperr

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Kind is the stable, machine readable class of an error.
type Kind string

const (
	KindValidation          Kind = "Validation"
	KindNotFound            Kind = "NotFound"
	KindInvalidTransition   Kind = "InvalidTransition"
	KindTenantNotFound      Kind = "TenantNotFound"
	KindConflict            Kind = "Conflict"
	KindUpstreamUnavailable Kind = "UpstreamUnavailable"
	KindUnauthorized        Kind = "Unauthorized"
	KindForbidden           Kind = "Forbidden"
	KindInternal            Kind = "Internal"
)

// TenantNotFoundMsg is the only message ever returned for an unresolved public shop reference.
const TenantNotFoundMsg = "shop not found"

// Status maps a Kind to its HTTP status.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound, KindTenantNotFound:
		return http.StatusNotFound
	case KindInvalidTransition, KindConflict:
		return http.StatusConflict
	case KindUpstreamUnavailable:
		return http.StatusServiceUnavailable
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Error carries a Kind, a caller safe Detail and an optional internal Cause.
// Only Detail is ever shown to callers.
type Error struct {
	Kind   Kind
	Detail string
	Cause  error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same Kind, so errors.Is(err, apperr.NotFound("")) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// Wrap attaches a cause, recording a stack on it for logs.
func Wrap(kind Kind, cause error, detail string) *Error {
	if cause != nil {
		cause = errors.WithStack(cause)
	}
	return &Error{Kind: kind, Detail: detail, Cause: cause}
}

func Validation(format string, args ...any) *Error {
	return New(KindValidation, format, args...)
}

func NotFound(entity string) *Error {
	if entity == "" {
		entity = "resource"
	}
	return New(KindNotFound, "%s not found", entity)
}

func InvalidTransition(from, to string) *Error {
	return New(KindInvalidTransition, "cannot transition from %s to %s", from, to)
}

func TenantNotFound() *Error {
	return &Error{Kind: KindTenantNotFound, Detail: TenantNotFoundMsg}
}

func Conflict(format string, args ...any) *Error {
	return New(KindConflict, format, args...)
}

func Upstream(cause error, detail string) *Error {
	return Wrap(KindUpstreamUnavailable, cause, detail)
}

func Internal(cause error) *Error {
	return Wrap(KindInternal, cause, "internal error")
}

func Unauthorized(detail string) *Error {
	return &Error{Kind: KindUnauthorized, Detail: detail}
}

func Forbidden(detail string) *Error {
	return &Error{Kind: KindForbidden, Detail: detail}
}

// As returns err as *Error. Errors outside the taxonomy become Internal.
func As(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err)
}

// KindOf returns the Kind of err, Internal for foreign errors.
func KindOf(err error) Kind {
	if e := As(err); e != nil {
		return e.Kind
	}
	return ""
}

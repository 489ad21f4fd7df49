package apperr

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestKind_Status(t *testing.T) {
	tests := map[Kind]int{
		KindValidation:          http.StatusBadRequest,
		KindNotFound:            http.StatusNotFound,
		KindInvalidTransition:   http.StatusConflict,
		KindTenantNotFound:      http.StatusNotFound,
		KindConflict:            http.StatusConflict,
		KindUpstreamUnavailable: http.StatusServiceUnavailable,
		KindUnauthorized:        http.StatusUnauthorized,
		KindForbidden:           http.StatusForbidden,
		KindInternal:            http.StatusInternalServerError,
	}
	for kind, status := range tests {
		assert.Equal(t, status, kind.Status(), string(kind))
	}
}

func TestError_IsAndAs(t *testing.T) {
	err := errors.Wrap(NotFound("applicant"), "get applicant")

	assert.True(t, errors.Is(err, NotFound("")))
	assert.False(t, errors.Is(err, Conflict("")))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "applicant not found", As(err).Detail)
}

func TestAs_ForeignError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	e := As(cause)
	assert.Equal(t, KindInternal, e.Kind)
	assert.Equal(t, "internal error", e.Detail)
	assert.ErrorIs(t, e, cause)
	assert.Nil(t, As(nil))
}

func TestDetails(t *testing.T) {
	assert.Equal(t, "shop not found", TenantNotFound().Detail)
	assert.Equal(t, "cannot transition from NEW to PHONE_SCREEN", InvalidTransition("NEW", "PHONE_SCREEN").Detail)

	up := Upstream(errors.New("s3 down"), "upload storage unavailable")
	assert.Equal(t, KindUpstreamUnavailable, up.Kind)
	assert.Contains(t, up.Error(), "s3 down")
	assert.NotContains(t, up.Detail, "s3 down")
}

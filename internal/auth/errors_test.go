package auth_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/campaign-service/internal/auth"
)

func TestErrorKindHTTPMapping(t *testing.T) {
	tests := []struct {
		kind auth.ErrorKind
		code string
	}{
		{auth.KindExpired, "TOKEN_EXPIRED"},
		{auth.KindInvalid, "TOKEN_INVALID"},
		{auth.KindRefreshInvalid, "TOKEN_INVALID"},
		{auth.KindUnknown, "TOKEN_INVALID"},
	}

	for _, tt := range tests {
		status, code := tt.kind.HTTPMapping()
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, tt.code, code)
	}
}

func TestAsErrorWrapsUnclassified(t *testing.T) {
	cause := errors.New("database gone")

	wrapped := auth.AsError(cause)
	assert.Equal(t, auth.KindUnknown, wrapped.Kind)
	assert.NotContains(t, wrapped.Message, "database")
	assert.ErrorIs(t, wrapped, cause)

	classified := auth.NewError(auth.KindExpired, "token expired", nil)
	assert.Same(t, classified, auth.AsError(classified))
}

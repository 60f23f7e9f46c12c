package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid argument", E(CodeInvalidArgument, "op", "bad", nil), http.StatusBadRequest},
		{"not configured", E(CodeNotConfigured, "op", "OPENAI_API_KEY is not set", nil), http.StatusBadRequest},
		{"not found", E(CodeNotFound, "op", "missing", nil), http.StatusNotFound},
		{"unavailable", E(CodeUnavailable, "op", "down", nil), http.StatusServiceUnavailable},
		{"timeout", E(CodeTimeout, "op", "slow", nil), http.StatusGatewayTimeout},
		{"internal", E(CodeInternal, "op", "boom", nil), http.StatusInternalServerError},
		{"wrapped app error", fmt.Errorf("outer: %w", E(CodeNotFound, "op", "x", nil)), http.StatusNotFound},
		{"sentinel", fmt.Errorf("lookup: %w", ErrNotFound), http.StatusNotFound},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"plain", errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatus(tc.err))
		})
	}
}

func TestAppErrorMessageAndUnwrap(t *testing.T) {
	cause := errors.New("upstream exploded")
	err := E(CodeInternal, "SessionService.Ingest", "Failed to process session", cause)

	assert.Equal(t, "SessionService.Ingest: Failed to process session: upstream exploded", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsCode(err, CodeInternal))
	assert.False(t, IsCode(err, CodeNotFound))
	assert.False(t, IsCode(cause, CodeInternal))
}

package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, http.StatusOK},
		{"validation", fmt.Errorf("%w: name is required", ErrValidation), http.StatusBadRequest},
		{"conflict is a bad request", fmt.Errorf("%w: email taken", ErrConflict), http.StatusBadRequest},
		{"not found", fmt.Errorf("%w: user", ErrNotFound), http.StatusNotFound},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized},
		{"throttled", ErrTooManyAttempts, http.StatusTooManyRequests},
		{"wrapped twice", fmt.Errorf("login: %w", fmt.Errorf("%w: bad password", ErrUnauthorized)), http.StatusUnauthorized},
		{"unknown error", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

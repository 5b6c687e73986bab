package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTokener struct {
	token       string
	tokenErr    error
	validateErr error
}

func (f *fakeTokener) GetTokenFromRequest(_ context.Context, _ *http.Request) (string, error) {
	return f.token, f.tokenErr
}

func (f *fakeTokener) Validate(_ context.Context, _ string) error {
	return f.validateErr
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		tokener        *fakeTokener
		expectedStatus int
		expectNext     bool
	}{
		{
			name:           "valid token",
			tokener:        &fakeTokener{token: "ok"},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "missing token",
			tokener:        &fakeTokener{tokenErr: errors.New("no header")},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			tokener:        &fakeTokener{token: "bad", validateErr: errors.New("expired")},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(tt.tokener)(next)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
		})
	}
}

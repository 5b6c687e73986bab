package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/rewardlabs/points-txcore/internal/jwt"
	"github.com/rewardlabs/points-txcore/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCurrentTransactionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokener := NewMockTokener(ctrl)
	mockReader := NewMockTransactionReader(ctrl)

	userID := uuid.New()
	token := "valid-token"

	authorize := func() {
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return(token, nil)
		mockTokener.EXPECT().GetClaims(gomock.Any(), token).
			Return(&jwt.Claims{UserID: userID}, nil)
	}

	tests := []struct {
		name           string
		setupMocks     func()
		expectedStatus int
	}{
		{
			name: "record present",
			setupMocks: func() {
				authorize()
				mockReader.EXPECT().Current(gomock.Any(), userID).
					Return(&models.TransactionRecord{
						Request: models.TransactionRequest{ID: "T1"},
						Status:  models.StatusProcessing,
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "idle session",
			setupMocks: func() {
				authorize()
				mockReader.EXPECT().Current(gomock.Any(), userID).Return(nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "unauthorized",
			setupMocks: func() {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewCurrentTransactionHandler(mockTokener, mockReader)

			req := httptest.NewRequest(http.MethodGet, "/transactions/current", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestDismissTransactionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokener := NewMockTokener(ctrl)
	mockDismisser := NewMockTransactionDismisser(ctrl)

	userID := uuid.New()
	token := "valid-token"

	authorize := func() {
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return(token, nil)
		mockTokener.EXPECT().GetClaims(gomock.Any(), token).
			Return(&jwt.Claims{UserID: userID}, nil)
	}

	tests := []struct {
		name           string
		setupMocks     func()
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "dismissed",
			setupMocks: func() {
				authorize()
				mockDismisser.EXPECT().Dismiss(gomock.Any(), userID).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "still in flight",
			setupMocks: func() {
				authorize()
				mockDismisser.EXPECT().Dismiss(gomock.Any(), userID).
					Return(models.NewOrchestrationError(models.ErrSubmissionConflict, "in flight"))
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "SUBMISSION_CONFLICT",
		},
		{
			name: "unauthorized",
			setupMocks: func() {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewDismissTransactionHandler(mockTokener, mockDismisser)

			req := httptest.NewRequest(http.MethodDelete, "/transactions/current", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedCode != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedCode, resp.Code)
			}
		})
	}
}

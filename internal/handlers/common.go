package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rewardlabs/points-txcore/internal/jwt"
	"github.com/rewardlabs/points-txcore/internal/models"
)

// Tokener extracts and verifies the actor token on protected routes.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ErrorResponse is the error payload of every endpoint
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Stable machine-readable reason code
	// example: INSUFFICIENT_BALANCE
	Code string `json:"code"`

	// Human-readable message
	// example: amount 1500 exceeds available balance of 1000 XP
	Error string `json:"error"`
}

func actorID(tokener Tokener, r *http.Request) (uuid.UUID, error) {
	ctx := r.Context()
	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return uuid.Nil, err
	}
	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeUnauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, ErrorResponse{Code: "UNAUTHORIZED", Error: "unauthorized"})
}

// writeError maps orchestration error kinds onto HTTP statuses; anything
// that is not an OrchestrationError is an internal failure.
func writeError(w http.ResponseWriter, err error) {
	var oe *models.OrchestrationError
	if !errors.As(err, &oe) {
		writeJSON(w, http.StatusInternalServerError,
			ErrorResponse{Code: string(models.ErrUnknown), Error: "internal server error"})
		return
	}

	status := http.StatusBadRequest
	switch oe.Kind {
	case models.ErrSubmissionConflict:
		status = http.StatusConflict
	case models.ErrNetworkError, models.ErrBackendRejection:
		status = http.StatusBadGateway
	case models.ErrUnknown:
		status = http.StatusInternalServerError
	}

	writeJSON(w, status, ErrorResponse{Code: string(oe.Kind), Error: oe.Message})
}

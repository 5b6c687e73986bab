package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rewardlabs/points-txcore/internal/models"
)

// TransactionReader exposes the actor's current lifecycle record.
type TransactionReader interface {
	Current(ctx context.Context, actorID uuid.UUID) *models.TransactionRecord
}

// TransactionDismisser acknowledges the actor's terminal record.
type TransactionDismisser interface {
	Dismiss(ctx context.Context, actorID uuid.UUID) error
}

// NewCurrentTransactionHandler returns the actor's lifecycle record.
// @Summary Current transaction
// @Description Returns the in-flight or terminal transaction record, 404 when idle
// @Tags transactions
// @Produce json
// @Success 200 {object} models.TransactionRecord
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /transactions/current [get]
// @Security BearerAuth
func NewCurrentTransactionHandler(tokener Tokener, reader TransactionReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorID(tokener, r)
		if err != nil {
			writeUnauthorized(w)
			return
		}

		record := reader.Current(r.Context(), actor)
		if record == nil {
			writeJSON(w, http.StatusNotFound,
				ErrorResponse{Code: "NO_TRANSACTION", Error: "no transaction"})
			return
		}
		writeJSON(w, http.StatusOK, record)
	}
}

// NewDismissTransactionHandler acknowledges a terminal record and resets
// the session to idle.
// @Summary Dismiss transaction
// @Description Acknowledge a completed or failed transaction. In-flight transactions cannot be dismissed.
// @Tags transactions
// @Produce json
// @Success 204
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Transaction still in flight"
// @Router /transactions/current [delete]
// @Security BearerAuth
func NewDismissTransactionHandler(tokener Tokener, dismisser TransactionDismisser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorID(tokener, r)
		if err != nil {
			writeUnauthorized(w)
			return
		}

		if err := dismisser.Dismiss(r.Context(), actor); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rewardlabs/points-txcore/internal/models"
	"github.com/shopspring/decimal"
)

// Submitter confirms a candidate transaction for an actor.
type Submitter interface {
	Submit(ctx context.Context, actorID uuid.UUID, kind models.TransactionKind, fromCurrency, toCurrency string, amount decimal.Decimal, destination *models.Destination) (*models.TransactionRecord, error)
}

// SubmitRequest represents the JSON body for confirming a transaction
// swagger:model SubmitRequest
type SubmitRequest struct {
	// Transaction kind: conversion or withdrawal
	// required: true
	// example: conversion
	Kind models.TransactionKind `json:"kind"`

	// Source currency
	// required: true
	// example: XP
	FromCurrency string `json:"from_currency"`

	// Target currency (conversions only)
	// example: USDT
	ToCurrency string `json:"to_currency,omitempty"`

	// Amount to convert or withdraw
	// required: true
	// example: 500
	Amount decimal.Decimal `json:"amount"`

	// Payout destination (withdrawals only)
	Destination *models.Destination `json:"destination,omitempty"`
}

// SubmitResponse represents an accepted submission
// swagger:model SubmitResponse
type SubmitResponse struct {
	// Success message
	// example: Transaction submitted
	Message string `json:"message"`

	// The lifecycle record awaiting confirmation
	Transaction models.TransactionRecord `json:"transaction"`
}

// NewSubmitHandler confirms a transaction: re-validates, enforces the
// single in-flight rule and dispatches the signed request.
// @Summary Submit a transaction
// @Description Confirm a conversion or withdrawal. At most one transaction may be in flight per actor.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body handlers.SubmitRequest true "Submit Request"
// @Success 200 {object} handlers.SubmitResponse
// @Failure 400 {object} handlers.ErrorResponse "Validation rejection"
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "A transaction is already in flight"
// @Failure 502 {object} handlers.ErrorResponse "Endpoint unreachable or declined"
// @Router /transactions [post]
// @Security BearerAuth
func NewSubmitHandler(tokener Tokener, submitter Submitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorID(tokener, r)
		if err != nil {
			writeUnauthorized(w)
			return
		}

		var req SubmitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest,
				ErrorResponse{Code: "BAD_REQUEST", Error: "invalid request body"})
			return
		}
		if req.Kind != models.KindConversion && req.Kind != models.KindWithdrawal {
			writeJSON(w, http.StatusBadRequest,
				ErrorResponse{Code: "BAD_REQUEST", Error: "kind must be conversion or withdrawal"})
			return
		}
		if req.Kind == models.KindWithdrawal && req.Destination == nil {
			writeJSON(w, http.StatusBadRequest,
				ErrorResponse{Code: "BAD_REQUEST", Error: "withdrawal requires a destination"})
			return
		}

		record, err := submitter.Submit(r.Context(), actor,
			req.Kind, req.FromCurrency, req.ToCurrency, req.Amount, req.Destination)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, SubmitResponse{
			Message:     "Transaction submitted",
			Transaction: *record,
		})
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rewardlabs/points-txcore/internal/models"
	"github.com/shopspring/decimal"
)

// Quoter recomputes the estimate for a candidate transaction.
type Quoter interface {
	Quote(ctx context.Context, actorID uuid.UUID, fromCurrency, toCurrency string, amount decimal.Decimal) (*models.QuoteResult, error)
}

// QuoteRequest represents the JSON body for quoting a conversion
// swagger:model QuoteRequest
type QuoteRequest struct {
	// Source currency
	// required: true
	// example: XP
	FromCurrency string `json:"from_currency"`

	// Target currency
	// required: true
	// example: USDT
	ToCurrency string `json:"to_currency"`

	// Amount to convert
	// required: true
	// example: 500
	Amount decimal.Decimal `json:"amount"`
}

// NewQuoteHandler recomputes output, fee and price impact for the given
// amount and pair against the latest rate table and balance snapshot.
// @Summary Quote a conversion
// @Description Returns the locally computed estimate and the validation verdict for the candidate transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body handlers.QuoteRequest true "Quote Request"
// @Success 200 {object} models.QuoteResult
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /quote [post]
// @Security BearerAuth
func NewQuoteHandler(tokener Tokener, quoter Quoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorID(tokener, r)
		if err != nil {
			writeUnauthorized(w)
			return
		}

		var req QuoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest,
				ErrorResponse{Code: "BAD_REQUEST", Error: "invalid request body"})
			return
		}

		result, err := quoter.Quote(r.Context(), actor, req.FromCurrency, req.ToCurrency, req.Amount)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

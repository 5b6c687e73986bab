package handlers

import (
	"net/http"

	"github.com/rewardlabs/points-txcore/internal/models"
)

// RatesLister exposes the current pair table.
type RatesLister interface {
	List() []models.CurrencyPair
}

// RatesResponse holds the full pair table
// swagger:model RatesResponse
type RatesResponse struct {
	Pairs []models.CurrencyPair `json:"pairs"`
}

// NewRatesHandler returns the current conversion pair table.
// @Summary Current rates
// @Description Returns the full table of conversion pairs with rates, fees and limits
// @Tags rates
// @Produce json
// @Success 200 {object} handlers.RatesResponse
// @Router /rates [get]
// @Security BearerAuth
func NewRatesHandler(rates RatesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, RatesResponse{Pairs: rates.List()})
	}
}

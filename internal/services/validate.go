package services

import (
	"github.com/rewardlabs/points-txcore/internal/models"
	"github.com/shopspring/decimal"
)

// Validate decides whether a transaction of the given amount may proceed.
// It returns nil when allowed and the first matching rejection otherwise,
// checked in priority order: pair availability, minimum, maximum, balance.
//
// A non-positive amount means "no transaction attempted" and is not a
// rejection; the confirm action is suppressed upstream, but the guard stays
// composable with the zero-handling of ComputeQuote.
func Validate(pair *models.CurrencyPair, amount, balance decimal.Decimal) *models.OrchestrationError {
	if pair == nil {
		return models.NewOrchestrationError(models.ErrPairUnavailable,
			"no rate available for the selected pair")
	}

	if amount.Sign() <= 0 {
		return nil
	}

	if amount.LessThan(pair.MinAmount) {
		return models.NewOrchestrationError(models.ErrBelowMinimum,
			"amount %s is below the minimum of %s %s", amount, pair.MinAmount, pair.From)
	}

	if pair.MaxAmount.Sign() > 0 && amount.GreaterThan(pair.MaxAmount) {
		return models.NewOrchestrationError(models.ErrAboveMaximum,
			"amount %s exceeds the maximum of %s %s", amount, pair.MaxAmount, pair.From)
	}

	if amount.GreaterThan(balance) {
		return models.NewOrchestrationError(models.ErrInsufficientBalance,
			"amount %s exceeds available balance of %s %s", amount, balance, pair.From)
	}

	return nil
}

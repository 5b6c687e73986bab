package services

import (
	"github.com/rewardlabs/points-txcore/internal/models"
	"github.com/shopspring/decimal"
)

// Price-impact curve constants. Impact grows with the absolute amount and
// with the amount as a fraction of the actor's available balance, capped
// at 15 percent.
var (
	impactCap          = decimal.NewFromInt(15)
	impactSizeDivisor  = decimal.NewFromInt(1000)
	impactSizeWeight   = decimal.RequireFromString("0.5")
	impactShareWeight  = decimal.RequireFromString("0.15")
	impactDepthDivisor = decimal.NewFromInt(50000)
	impactDepthWeight  = decimal.NewFromInt(2)
	hundred            = decimal.NewFromInt(100)
)

// ComputeQuote estimates output amount, fee and price impact for converting
// amount units of pair.From. Pure function, safe on every keystroke;
// amount <= 0 yields an all-zero quote.
func ComputeQuote(pair models.CurrencyPair, amount, balance decimal.Decimal) models.Quote {
	if amount.Sign() <= 0 {
		return models.Quote{
			Output:             decimal.Zero,
			Fee:                decimal.Zero,
			PriceImpactPercent: decimal.Zero,
		}
	}

	gross := amount.Mul(pair.Rate)
	fee := gross.Mul(pair.FeePercent).Div(hundred)

	return models.Quote{
		Output:             gross.Sub(fee),
		Fee:                fee,
		PriceImpactPercent: priceImpact(amount, balance),
	}
}

func priceImpact(amount, balance decimal.Decimal) decimal.Decimal {
	impact := amount.Div(impactSizeDivisor).Mul(impactSizeWeight)
	impact = impact.Add(amount.Div(impactDepthDivisor).Mul(impactDepthWeight))

	if balance.Sign() > 0 {
		share := amount.Div(balance).Mul(hundred)
		impact = impact.Add(share.Mul(impactShareWeight))
	}

	if impact.GreaterThan(impactCap) {
		return impactCap
	}
	return impact
}

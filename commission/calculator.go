package commission

import (
	"github.com/shopspring/decimal"
)

// Result carries the two commission amounts derived from one purchase.
type Result struct {
	Tier1 decimal.Decimal `json:"tier1"`
	Tier2 decimal.Decimal `json:"tier2"`
}

// Compute derives both tier amounts from the purchase amount and the
// configured rates, rounded half-up to currency minor units. A
// non-positive purchase yields zero commissions rather than an error so
// refund-adjusted purchases flow through untouched.
func Compute(purchaseAmount, tier1Rate, tier2Rate decimal.Decimal) Result {
	if !purchaseAmount.IsPositive() {
		return Result{Tier1: decimal.Zero, Tier2: decimal.Zero}
	}

	return Result{
		Tier1: round(purchaseAmount.Mul(tier1Rate)),
		Tier2: round(purchaseAmount.Mul(tier2Rate)),
	}
}

// round applies half-up rounding on two minor units. Decimal.Round is
// half-away-from-zero, which matches half-up for the non-negative
// amounts handled here.
func round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

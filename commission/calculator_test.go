package commission

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeTwoTiers(t *testing.T) {
	result := Compute(d("1000"), d("0.65"), d("0.05"))

	assert.True(t, d("650").Equal(result.Tier1))
	assert.True(t, d("50").Equal(result.Tier2))
}

func TestComputeRoundsHalfUp(t *testing.T) {
	// 33.33 * 0.65 = 21.6645 -> 21.66, 33.33 * 0.05 = 1.6665 -> 1.67
	result := Compute(d("33.33"), d("0.65"), d("0.05"))

	assert.True(t, d("21.66").Equal(result.Tier1))
	assert.True(t, d("1.67").Equal(result.Tier2))

	// exact half on the minor unit rounds up
	result = Compute(d("10.50"), d("0.05"), d("0.05"))
	assert.True(t, d("0.53").Equal(result.Tier1))
}

func TestComputeZeroAndNegativePurchase(t *testing.T) {
	for _, amount := range []string{"0", "-100"} {
		result := Compute(d(amount), d("0.65"), d("0.05"))

		assert.True(t, result.Tier1.IsZero())
		assert.True(t, result.Tier2.IsZero())
	}
}

func TestComputeZeroRates(t *testing.T) {
	result := Compute(d("1000"), decimal.Zero, decimal.Zero)

	assert.True(t, result.Tier1.IsZero())
	assert.True(t, result.Tier2.IsZero())
}

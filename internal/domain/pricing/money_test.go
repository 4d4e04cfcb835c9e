//go:build unit

package pricing_test

import (
	"math"
	"testing"

	"luxora-booking/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromAmount(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		cents  int64
		errIs  error
	}{
		{name: "whole amount", amount: 120, cents: 12000},
		{name: "fractional amount", amount: 99.99, cents: 9999},
		{name: "half dollar", amount: 10.5, cents: 1050},
		{name: "zero", amount: 0, cents: 0},
		{name: "negative", amount: -1, errIs: pricing.ErrNegativeAmount},
		{name: "maximum", amount: pricing.MaxAmount, cents: 100_000_000},
		{name: "above maximum", amount: pricing.MaxAmount + 0.01, errIs: pricing.ErrAmountTooLarge},
		{name: "infinite", amount: math.Inf(1), errIs: pricing.ErrAmountTooLarge},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, err := pricing.FromAmount(c.amount)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.cents, m.Cents())
		})
	}
}

func TestNightlyPriceCalculator(t *testing.T) {
	rate, err := pricing.NewMoney(18000)
	require.NoError(t, err)

	q := pricing.NewNightlyPriceCalculator().Quote(rate, 3)

	assert.Equal(t, int64(18000), q.PricePerNight.Cents())
	assert.Equal(t, 3, q.Nights)
	assert.Equal(t, int64(54000), q.Total.Cents())
	assert.InDelta(t, 540.0, q.Total.Amount(), 0.0001)
}

func TestNightlyPriceCalculator_MaxRateLongStay(t *testing.T) {
	rate, err := pricing.FromAmount(pricing.MaxAmount)
	require.NoError(t, err)

	// Longer than any stay that ends by 9999-12-31.
	q := pricing.NewNightlyPriceCalculator().Quote(rate, 3_000_000)

	assert.Equal(t, int64(300_000_000_000_000), q.Total.Cents())
	assert.True(t, q.Total.IsPositive())
}

package pricing

import (
	"errors"
	"math"
)

// MaxAmount bounds a single nightly rate, which keeps any stay total well
// inside int64 cents.
const MaxAmount = 1_000_000

var (
	ErrNegativeAmount = errors.New("money cannot be negative")
	ErrAmountTooLarge = errors.New("money exceeds the maximum amount")
)

// Money is an amount in minor units (cents).
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

// FromAmount converts a decimal amount such as 120.5 into cents, rounding
// half away from zero.
func FromAmount(amount float64) (Money, error) {
	if math.IsNaN(amount) || amount < 0 {
		return Money{}, ErrNegativeAmount
	}
	if amount > MaxAmount {
		return Money{}, ErrAmountTooLarge
	}
	return NewMoney(int64(math.Round(amount * 100)))
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) IsPositive() bool {
	return m.cents > 0
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

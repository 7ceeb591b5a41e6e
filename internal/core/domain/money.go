package domain

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// MicrosPerUnit is the factor between a currency unit and a micro-unit.
const MicrosPerUnit = 1_000_000

// ErrAmountOutOfRange is returned when a money value does not fit in int64
// micro-units.
var ErrAmountOutOfRange = errors.New("amount out of micro-unit range")

var (
	microsFactor = decimal.NewFromInt(MicrosPerUnit)
	maxMicros    = decimal.NewFromInt(math.MaxInt64)
	minMicros    = decimal.NewFromInt(math.MinInt64)

	// MaxAmount is the largest currency amount representable in micro-units.
	MaxAmount = maxMicros.Div(microsFactor)
)

// ToMicros converts a currency amount to micro-units, rounding half away
// from zero to the nearest integer micro. Amounts beyond MaxAmount clamp to
// the int64 range; use AmountToMicros to detect them.
func ToMicros(amount decimal.Decimal) int64 {
	m, err := AmountToMicros(amount)
	if err != nil {
		if amount.IsNegative() {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	return m
}

// AmountToMicros converts a currency amount to micro-units.
func AmountToMicros(amount decimal.Decimal) (int64, error) {
	return WholeMicros(amount.Mul(microsFactor))
}

// WholeMicros rounds a micro-unit value to an integer, failing when it
// falls outside int64.
func WholeMicros(micros decimal.Decimal) (int64, error) {
	r := micros.Round(0)
	if r.GreaterThan(maxMicros) || r.LessThan(minMicros) {
		return 0, fmt.Errorf("%w: %s", ErrAmountOutOfRange, micros.String())
	}
	return r.IntPart(), nil
}

// FromMicros converts micro-units back to a currency amount.
func FromMicros(micros int64) decimal.Decimal {
	return decimal.NewFromInt(micros).Div(microsFactor)
}

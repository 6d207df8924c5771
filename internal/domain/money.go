package domain

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Money is an amount in cents. $10.50 is stored as 1050.
type Money int64

const centsExp = 2

var maxMoney = decimal.NewFromInt(math.MaxInt64)

// ParseAmount converts a caller-supplied amount to an exact decimal. Negative,
// non-finite and unrepresentable amounts are rejected with ErrInvalidAmount.
// Sub-cent digits are kept; MoneyFromDecimal decides whether they are allowed.
func ParseAmount(amount float64) (decimal.Decimal, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return decimal.Zero, fmt.Errorf("ParseAmount: %v: %w", amount, ErrInvalidAmount)
	}

	d := decimal.NewFromFloat(amount)
	if d.Shift(centsExp).GreaterThan(maxMoney) {
		return decimal.Zero, fmt.Errorf("ParseAmount: %v: %w", amount, ErrInvalidAmount)
	}
	return d, nil
}

// MoneyFromDecimal converts an exact amount to cents. Amounts with digits
// below the cent are rejected rather than rounded.
func MoneyFromDecimal(d decimal.Decimal) (Money, error) {
	cents := d.Shift(centsExp)
	if !cents.IsInteger() {
		return 0, fmt.Errorf("MoneyFromDecimal: %s has fractional cents: %w", d, ErrInvalidAmount)
	}
	if cents.IsNegative() || cents.GreaterThan(maxMoney) {
		return 0, fmt.Errorf("MoneyFromDecimal: %s: %w", d, ErrInvalidAmount)
	}
	return Money(cents.IntPart()), nil
}

func MoneyFromFloat(amount float64) (Money, error) {
	d, err := ParseAmount(amount)
	if err != nil {
		return 0, err
	}
	return MoneyFromDecimal(d)
}

func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -centsExp)
}

func (m Money) Float64() float64 {
	f, _ := m.Decimal().Float64()
	return f
}

// String renders the amount with exactly two fractional digits, e.g. "100.00".
func (m Money) String() string {
	return m.Decimal().StringFixed(centsExp)
}

// Add returns m+other, failing with ErrBalanceOverflow when the sum does not
// fit in a Money.
func (m Money) Add(other Money) (Money, error) {
	if other > 0 && m > math.MaxInt64-other {
		return 0, ErrBalanceOverflow
	}
	return m + other, nil
}

// Sub returns m-other, failing with ErrInsufficientFunds when the result
// would go below zero.
func (m Money) Sub(other Money) (Money, error) {
	if other > m {
		return 0, ErrInsufficientFunds
	}
	return m - other, nil
}

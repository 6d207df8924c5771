package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFromFloat(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		want    Money
		wantErr error
	}{
		{name: "whole dollars", amount: 100, want: 10000},
		{name: "cents", amount: 10.5, want: 1050},
		{name: "binary fraction is exact", amount: 0.1, want: 10},
		{name: "half cent", amount: 1.005, wantErr: ErrInvalidAmount},
		{name: "fraction of a cent", amount: 2.004, wantErr: ErrInvalidAmount},
		{name: "sub-cent only", amount: 0.004, wantErr: ErrInvalidAmount},
		{name: "zero", amount: 0, want: 0},
		{name: "negative zero", amount: math.Copysign(0, -1), want: 0},
		{name: "negative", amount: -500, wantErr: ErrInvalidAmount},
		{name: "tiny negative", amount: -0.001, wantErr: ErrInvalidAmount},
		{name: "NaN", amount: math.NaN(), wantErr: ErrInvalidAmount},
		{name: "positive infinity", amount: math.Inf(1), wantErr: ErrInvalidAmount},
		{name: "too large", amount: 1e30, wantErr: ErrInvalidAmount},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MoneyFromFloat(tc.amount)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseAmountKeepsSubCentDigits(t *testing.T) {
	d, err := ParseAmount(100.004)
	require.NoError(t, err)
	assert.Equal(t, "100.004", d.String())
	assert.True(t, d.GreaterThan(Money(10000).Decimal()))

	_, err = MoneyFromDecimal(d)
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestMoneyString(t *testing.T) {
	tests := []struct {
		money Money
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{1050, "10.50"},
		{10000, "100.00"},
		{123456789, "1234567.89"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.money.String())
		})
	}
}

func TestMoneyFloat64(t *testing.T) {
	assert.Equal(t, 500.0, Money(50000).Float64())
	assert.Equal(t, 0.1, Money(10).Float64())
}

func TestMoneyAdd(t *testing.T) {
	sum, err := Money(30000).Add(20000)
	require.NoError(t, err)
	assert.Equal(t, Money(50000), sum)

	limit, err := Money(math.MaxInt64 - 100).Add(100)
	require.NoError(t, err)
	assert.Equal(t, Money(math.MaxInt64), limit)

	_, err = Money(math.MaxInt64 - 100).Add(101)
	require.ErrorIs(t, err, ErrBalanceOverflow)

	_, err = Money(math.MaxInt64).Add(1)
	require.ErrorIs(t, err, ErrBalanceOverflow)
	assert.True(t, errors.Is(err, ErrRuntimeFault))
}

func TestMoneySub(t *testing.T) {
	diff, err := Money(10000).Sub(10000)
	require.NoError(t, err)
	assert.Equal(t, Money(0), diff)

	_, err = Money(10000).Sub(10001)
	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.True(t, errors.Is(err, ErrRuntimeFault))
	assert.False(t, errors.Is(err, ErrInvalidArgument))
}

func TestErrorKinds(t *testing.T) {
	invalid := []error{ErrAccountNotFound, ErrAccountExists, ErrInvalidAmount, ErrInvalidName}
	for _, err := range invalid {
		assert.ErrorIs(t, err, ErrInvalidArgument, err.Error())
		assert.NotErrorIs(t, err, ErrRuntimeFault, err.Error())
	}

	faults := []error{ErrInsufficientFunds, ErrBalanceOverflow}
	for _, err := range faults {
		assert.ErrorIs(t, err, ErrRuntimeFault, err.Error())
		assert.NotErrorIs(t, err, ErrInvalidArgument, err.Error())
	}
}

func TestIdentityString(t *testing.T) {
	id := NewIdentity(2468, 1357)
	assert.Equal(t, "card 2468", id.String())
	assert.NotContains(t, id.String(), "1357")
}

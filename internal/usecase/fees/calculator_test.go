package fees

import (
	"testing"

	feesv1 "github.com/ananyaprabhakarm/Matching-Engine/internal/domain/fees/v1"
	"github.com/ananyaprabhakarm/Matching-Engine/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func defaultCalculator() *Calculator {
	return NewCalculator(feesv1.Schedule{
		MakerRate: d("0.001"),
		TakerRate: d("0.002"),
	})
}

// Test 1: Maker and taker fees on the same notional
func TestCalculator_Fee(t *testing.T) {
	calc := defaultCalculator()

	// 0.5 @ 65000 -> notional 32500
	notional := d("65000").Mul(d("0.5"))

	makerFee, err := calc.Fee(notional, feesv1.RoleMaker)
	require.NoError(t, err)
	assert.True(t, makerFee.Equal(d("32.5")), "got %s", makerFee)

	takerFee, err := calc.Fee(notional, feesv1.RoleTaker)
	require.NoError(t, err)
	assert.True(t, takerFee.Equal(d("65")), "got %s", takerFee)
}

// Test 2: Fees are rounded half away from zero at 8 decimal places
func TestCalculator_Fee_Rounding(t *testing.T) {
	calc := NewCalculator(feesv1.Schedule{
		MakerRate: d("0.001"),
		TakerRate: d("0.002"),
	})

	// 0.000012345 * 0.001 = 0.000000012345 -> rounds to 0.00000001
	fee, err := calc.Fee(d("0.000012345"), feesv1.RoleMaker)
	require.NoError(t, err)
	assert.True(t, fee.Equal(d("0.00000001")), "got %s", fee)

	// 0.0000155 * 0.001 = 0.0000000155 -> the half digit rounds up
	fee, err = calc.Fee(d("0.0000155"), feesv1.RoleMaker)
	require.NoError(t, err)
	assert.True(t, fee.Equal(d("0.00000002")), "got %s", fee)
}

// Test 3: Zero notional yields a zero fee
func TestCalculator_Fee_ZeroNotional(t *testing.T) {
	calc := defaultCalculator()

	fee, err := calc.Fee(decimal.Zero, feesv1.RoleTaker)

	require.NoError(t, err)
	assert.True(t, fee.IsZero())
}

// Test 4: Negative notional is rejected
func TestCalculator_Fee_NegativeNotional(t *testing.T) {
	calc := defaultCalculator()

	_, err := calc.Fee(d("-1"), feesv1.RoleMaker)

	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.InvalidNotional)))
}

// Test 5: Rate lookup follows the schedule
func TestCalculator_Rate(t *testing.T) {
	calc := defaultCalculator()

	assert.True(t, calc.Rate(feesv1.RoleMaker).Equal(d("0.001")))
	assert.True(t, calc.Rate(feesv1.RoleTaker).Equal(d("0.002")))
}

package fees

import (
	feesv1 "github.com/ananyaprabhakarm/Matching-Engine/internal/domain/fees/v1"
	"github.com/ananyaprabhakarm/Matching-Engine/pkg/errors"
	"github.com/shopspring/decimal"
)

// FeePrecision is the number of decimal places fees are rounded to.
const FeePrecision = 8

// Calculator applies a fixed fee schedule to trade notionals. Rounding is
// half away from zero at FeePrecision decimal places.
type Calculator struct {
	schedule feesv1.Schedule
}

var _ feesv1.Calculator = (*Calculator)(nil)

// NewCalculator creates a calculator for the given schedule.
func NewCalculator(schedule feesv1.Schedule) *Calculator {
	return &Calculator{schedule: schedule}
}

// Fee returns notional * rate(role), rounded to FeePrecision. A zero
// notional yields a zero fee; a negative notional is rejected.
func (c *Calculator) Fee(notional decimal.Decimal, role feesv1.Role) (decimal.Decimal, error) {
	if notional.Sign() < 0 {
		return decimal.Zero, errors.NewErrorDetails(
			"notional must not be negative",
			string(errors.InvalidNotional),
			"notional",
		)
	}
	return notional.Mul(c.schedule.Rate(role)).Round(FeePrecision), nil
}

// Rate returns the configured rate for the given role.
func (c *Calculator) Rate(role feesv1.Role) decimal.Decimal {
	return c.schedule.Rate(role)
}

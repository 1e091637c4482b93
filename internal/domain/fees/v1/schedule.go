package feesv1

import "github.com/shopspring/decimal"

// Role identifies which side of a trade a fee applies to.
type Role string

const (
	// RoleMaker is the resting order supplying liquidity.
	RoleMaker Role = "maker"
	// RoleTaker is the incoming order removing liquidity.
	RoleTaker Role = "taker"
)

// Schedule holds the two fixed fee rates applied to trade notional.
// It is configuration, not runtime-mutable state.
type Schedule struct {
	MakerRate decimal.Decimal
	TakerRate decimal.Decimal
}

// Rate returns the rate for the given role.
func (s Schedule) Rate(role Role) decimal.Decimal {
	if role == RoleMaker {
		return s.MakerRate
	}
	return s.TakerRate
}

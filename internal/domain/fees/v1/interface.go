package feesv1

import "github.com/shopspring/decimal"

// Calculator computes the fee owed on a trade's notional value.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=feesv1_mock
type Calculator interface {
	// Fee returns notional * rate(role), rounded to the fee precision.
	// It fails on negative notional.
	Fee(notional decimal.Decimal, role Role) (decimal.Decimal, error)
	// Rate returns the configured rate for the given role.
	Rate(role Role) decimal.Decimal
}

package entity

import (
	"github.com/shopspring/decimal"
)

//nolint:gochecknoglobals
var minorUnitsPerMajor = decimal.NewFromInt(100)

// ToMinorUnits converts an amount in hryvnias to kopecks rounding half away from zero.
// A null amount is zero.
func ToMinorUnits(amount decimal.NullDecimal) int64 {
	if !amount.Valid {
		return 0
	}

	return amount.Decimal.Mul(minorUnitsPerMajor).Round(0).IntPart()
}

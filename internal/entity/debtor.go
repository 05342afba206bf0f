package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debtor is a row of the debt registry. Balances are nullable in the registry.
type Debtor struct {
	ID                       int64
	Name                     string
	TaxIdentification        string
	ResidentialDebt          decimal.NullDecimal
	NonResidentialDebt       decimal.NullDecimal
	LandDebt                 decimal.NullDecimal
	RentalDebt               decimal.NullDecimal
	MinimumTaxObligationDebt decimal.NullDecimal
	AsOfDate                 time.Time
}

package entity

import (
	"github.com/shopspring/decimal"
)

// TaxCategory describes one of the statutory debt types a debtor can pay.
type TaxCategory struct {
	Digit          int
	Code           string // budget classification code
	DisplayName    string
	GatewayType    string
	SettingsPrefix string
	// Debt selects the outstanding balance of this category from a debtor.
	Debt func(d Debtor) decimal.NullDecimal
}

// TaxCategories is indexed by the trailing digit of a tax identifier (1-5).
//
//nolint:gochecknoglobals
var TaxCategories = []TaxCategory{
	{
		Digit:          1,
		Code:           "18010300",
		DisplayName:    "Податок на нерухоме майно (житлова нерухомість)",
		GatewayType:    "tax_residential",
		SettingsPrefix: "residential",
		Debt:           func(d Debtor) decimal.NullDecimal { return d.ResidentialDebt },
	},
	{
		Digit:          2,
		Code:           "18010400",
		DisplayName:    "Податок на нерухоме майно (нежитлова нерухомість)",
		GatewayType:    "tax_non_residential",
		SettingsPrefix: "non_residential",
		Debt:           func(d Debtor) decimal.NullDecimal { return d.NonResidentialDebt },
	},
	{
		Digit:          3,
		Code:           "18010700",
		DisplayName:    "Земельний податок",
		GatewayType:    "tax_land",
		SettingsPrefix: "land",
		Debt:           func(d Debtor) decimal.NullDecimal { return d.LandDebt },
	},
	{
		Digit:          4,
		Code:           "18010900",
		DisplayName:    "Орендна плата за землю",
		GatewayType:    "tax_rent",
		SettingsPrefix: "rent",
		Debt:           func(d Debtor) decimal.NullDecimal { return d.RentalDebt },
	},
	{
		Digit:          5,
		Code:           "11011300",
		DisplayName:    "Мінімальне податкове зобов'язання",
		GatewayType:    "tax_mpz",
		SettingsPrefix: "mpz",
		Debt:           func(d Debtor) decimal.NullDecimal { return d.MinimumTaxObligationDebt },
	},
}

// TaxCategoryByDigit returns the category for digit or false if there is none.
func TaxCategoryByDigit(digit int) (TaxCategory, bool) {
	for _, c := range TaxCategories {
		if c.Digit == digit {
			return c, true
		}
	}

	return TaxCategory{}, false
}

// Amount returns the debt of the category, zero when the category has no debt field.
func (c TaxCategory) Amount(d Debtor) decimal.NullDecimal {
	if c.Debt == nil {
		return decimal.NullDecimal{}
	}

	return c.Debt(d)
}

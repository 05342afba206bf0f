package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/vstpayment/internal/entity"
)

func TestClassifyIdentifier(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name       string
		identifier string
		wantOK     bool
		want       entity.TaxIdentifier
	}{
		{name: "empty", identifier: "", wantOK: false},
		{name: "single digit", identifier: "1", wantOK: true, want: entity.TaxIdentifier{DebtorID: "", Digit: 1}},
		{name: "single out of range digit", identifier: "7", wantOK: false},
		{name: "residential", identifier: "123456781", wantOK: true, want: entity.TaxIdentifier{DebtorID: "12345678", Digit: 1}},
		{name: "minimum tax obligation", identifier: "425", wantOK: true, want: entity.TaxIdentifier{DebtorID: "42", Digit: 5}},
		{name: "digit out of range", identifier: "123456786", wantOK: false},
		{name: "zero digit", identifier: "123456780", wantOK: false},
		{name: "letter suffix", identifier: "12345678a", wantOK: false},
		{name: "letter in prefix", identifier: "12a4", wantOK: false},
		{name: "service account", identifier: "CNAP-2024-001", wantOK: false},
		{name: "unicode", identifier: "№1", wantOK: false},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := entity.ClassifyIdentifier(tt.identifier)
			require.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func TestToMinorUnits(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name   string
		amount decimal.NullDecimal
		want   int64
	}{
		{name: "float noise", amount: decimal.NewNullDecimal(decimal.NewFromFloat(100.999)), want: 10100},
		{name: "zero", amount: decimal.NewNullDecimal(decimal.Zero), want: 0},
		{name: "null", amount: decimal.NullDecimal{}, want: 0},
		{name: "big", amount: decimal.NewNullDecimal(decimal.NewFromFloat(9999999.99)), want: 999999999},
		{name: "exact", amount: decimal.NewNullDecimal(decimal.NewFromFloat(123.45)), want: 12345},
		{name: "half kopeck", amount: decimal.NewNullDecimal(decimal.RequireFromString("0.005")), want: 1},
		{name: "negative half kopeck", amount: decimal.NewNullDecimal(decimal.RequireFromString("-0.005")), want: -1},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, entity.ToMinorUnits(tt.amount))
		})
	}
}

func TestTaxCategories_Amount(t *testing.T) {
	t.Parallel()

	debtor := entity.Debtor{
		ResidentialDebt:          decimal.NewNullDecimal(decimal.RequireFromString("2500.75")),
		NonResidentialDebt:       decimal.NewNullDecimal(decimal.RequireFromString("1500.50")),
		LandDebt:                 decimal.NewNullDecimal(decimal.RequireFromString("300.00")),
		RentalDebt:               decimal.NewNullDecimal(decimal.RequireFromString("450.25")),
		MinimumTaxObligationDebt: decimal.NewNullDecimal(decimal.RequireFromString("100.00")),
	}

	want := map[int]int64{1: 250075, 2: 150050, 3: 30000, 4: 45025, 5: 10000}

	for digit, sum := range want {
		c, ok := entity.TaxCategoryByDigit(digit)
		require.True(t, ok)
		require.Equal(t, sum, entity.ToMinorUnits(c.Amount(debtor)), "digit %d", digit)
	}

	_, ok := entity.TaxCategoryByDigit(6)
	require.False(t, ok)

	require.Equal(t, int64(0), entity.ToMinorUnits(entity.TaxCategory{}.Amount(debtor)))
}

func TestSettings_Requisites(t *testing.T) {
	t.Parallel()

	s := entity.NewSettings(1, "https://example.com/cb", map[string]entity.Requisites{
		"land":        {Account: "UA1", EDRPOU: "123", RecipientName: "Land recipient"},
		"residential": {Account: " ", EDRPOU: "123"},
		"rent":        {Account: "UA2", EDRPOU: ""},
	})

	r, err := s.Requisites("land")
	require.NoError(t, err)
	require.Equal(t, "Land recipient", r.RecipientName)

	for _, prefix := range []string{"residential", "rent", "mpz"} {
		_, err = s.Requisites(prefix)
		require.ErrorIs(t, err, entity.ErrMisconfigured)
		require.ErrorIs(t, err, entity.ErrNotFound)
	}
}

func TestServiceAccount_Resolved(t *testing.T) {
	t.Parallel()

	require.False(t, entity.ServiceAccount{}.Resolved())
	require.False(t, entity.ServiceAccount{Service: &entity.ServiceDefinition{Identifier: "01"}}.Resolved())
	require.True(t, entity.ServiceAccount{Service: &entity.ServiceDefinition{Identifier: "01", Name: "Passport"}}.Resolved())
}

func TestParseConfirmationStatus(t *testing.T) {
	t.Parallel()

	s, err := entity.ParseConfirmationStatus("")
	require.NoError(t, err)
	require.Equal(t, entity.OperationStatusSuccess, s)

	s, err = entity.ParseConfirmationStatus("failed")
	require.NoError(t, err)
	require.Equal(t, entity.OperationStatusFailed, s)

	_, err = entity.ParseConfirmationStatus("expired")
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

package entity

import (
	"github.com/shopspring/decimal"
)

// ServiceDefinition is an administrative service (CNAP) with its bank details.
type ServiceDefinition struct {
	Identifier string
	Name       string
	Price      decimal.NullDecimal
	EDRPOU     string
	IBAN       string
}

// ServiceAccount is a bill for an administrative service issued to a payer.
type ServiceAccount struct {
	ID            int64
	AccountNumber string
	ServiceID     int64
	Administrator string
	Payer         string
	Amount        decimal.NullDecimal
	Enabled       bool
	Date          string
	Time          string
	Service       *ServiceDefinition // nil when the service join is missing
}

// Resolved reports whether the account is linked to a service with a code and a name.
func (a ServiceAccount) Resolved() bool {
	return a.Service != nil && a.Service.Identifier != "" && a.Service.Name != ""
}

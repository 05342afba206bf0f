package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeDebtor AccountType = "debtor"
	AccountTypeCNAP   AccountType = "cnap"
)

func (a AccountType) String() string {
	return string(a)
}

type OperationStatus string

const (
	OperationStatusInitiated OperationStatus = "initiated"
	OperationStatusSuccess   OperationStatus = "success"
	OperationStatusFailed    OperationStatus = "failed"
	OperationStatusExpired   OperationStatus = "expired"
)

func (o OperationStatus) String() string {
	return string(o)
}

// Final reports whether the gateway may not change the status anymore.
func (o OperationStatus) Final() bool {
	return o != OperationStatusInitiated
}

// ParseConfirmationStatus accepts the statuses a gateway confirmation may carry.
func ParseConfirmationStatus(s string) (OperationStatus, error) {
	switch OperationStatus(s) {
	case OperationStatusSuccess, OperationStatusFailed:
		return OperationStatus(s), nil
	case "":
		return OperationStatusSuccess, nil
	default:
		return "", fmt.Errorf("%w: unknown confirmation status %q", ErrInvalidArgument, s)
	}
}

// TransactionRecord is an append-only ledger row of one payment initiation attempt.
type TransactionRecord struct {
	ID              int64 // Filled by our DB.
	UUID            uuid.UUID
	PaymentPerson   string
	PersonID        string
	AccountNumber   string
	AccountType     AccountType
	OperationStatus OperationStatus
	OperationDate   time.Time
	Info            json.RawMessage
	CreatedAt       time.Time
}

// TransactionFilter narrows a ledger lookup to one account.
type TransactionFilter struct {
	AccountNumber string
	UUID          uuid.UUID // ignored when uuid.Nil
	Status        OperationStatus
}

// TaxPaymentInfo is the ledger snapshot of a tax payment initiation.
type TaxPaymentInfo struct {
	Identifier  string          `json:"identifier"`
	DebtorID    int64           `json:"debtor_id"`
	DebtorName  string          `json:"debtor_name"`
	TaxCode     string          `json:"tax_code"`
	Category    int             `json:"category"`
	AmountMinor int64           `json:"amount_minor"`
	Amount      decimal.Decimal `json:"amount"`
}

// ServicePaymentInfo is the ledger snapshot of an administrative service payment initiation.
type ServicePaymentInfo struct {
	Identifier    string          `json:"identifier"`
	AccountNumber string          `json:"account_number"`
	Payer         string          `json:"payer"`
	ServiceCode   string          `json:"service_code"`
	ServiceName   string          `json:"service_name"`
	AmountMinor   int64           `json:"amount_minor"`
	Amount        decimal.Decimal `json:"amount"`
	Administrator string          `json:"administrator"`
}

// Confirmation is a gateway notification about the outcome of a payment.
type Confirmation struct {
	PaymentID     string
	TransactionID uuid.UUID // uuid.Nil when the gateway did not send it
	SumMinorUnits int64
	Status        OperationStatus
	OperationDate time.Time
}

// ConfirmationResult tells whether a confirmation changed the ledger.
type ConfirmationResult struct {
	Matched       bool
	Applied       bool
	TransactionID uuid.UUID
	Status        OperationStatus
}

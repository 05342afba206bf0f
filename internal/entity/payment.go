package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// PaymentDescriptor is what the payment gateway needs to charge a payer.
type PaymentDescriptor struct {
	ID            string
	Code          string
	Name          string
	SumMinorUnits int64
	Type          string
	Account       string
	EDRPOU        string
	RecipientName string
	SenderName    string
	CallbackURL   string
	TransactionID uuid.UUID
	TerminalID    string
	Timestamp     time.Time
}

// GatewayTime formats a timestamp the way the gateway expects it.
func GatewayTime(t time.Time) string {
	return t.Format(time.DateTime)
}

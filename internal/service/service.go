package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/vstpayment/internal/entity"
	"github.com/samandr77/microservices/vstpayment/pkg/broker"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type SettingsRepository interface {
	CurrentSettings(ctx context.Context) (entity.Settings, error)
}

type DebtorRepository interface {
	Debtor(ctx context.Context, id int64) (entity.Debtor, error)
}

type ServiceAccountRepository interface {
	ServiceAccount(ctx context.Context, accountNumber string) (entity.ServiceAccount, error)
}

type TransactionRecorder interface {
	CreateTransaction(ctx context.Context, tx entity.TransactionRecord) (entity.TransactionRecord, error)
}

type Ledger interface {
	LatestTransaction(ctx context.Context, f entity.TransactionFilter) (entity.TransactionRecord, error)
	UpdateOperationStatus(ctx context.Context, id uuid.UUID, prev, status entity.OperationStatus, operationDate time.Time) (bool, error)
	ExpireTransactions(ctx context.Context, createdBefore, now time.Time) (int64, error)
}

type Producer interface {
	SendPaymentEvent(ctx context.Context, event broker.PaymentEvent)
}

// Resolver turns a gateway identifier into a payment descriptor.
// It returns an error matching entity.ErrNotFound when the identifier is not its kind of payment.
type Resolver interface {
	Name() string
	Resolve(ctx context.Context, identifier string) (entity.PaymentDescriptor, error)
}

// Gateway holds the payment gateway parameters that are not stored in the registry.
type Gateway struct {
	TerminalID          string
	FallbackCallbackURL string
	ServicePaymentType  string
}

// Dispatcher tries resolvers in order, the first resolved payment wins.
type Dispatcher struct {
	resolvers []Resolver
}

func NewDispatcher(resolvers ...Resolver) *Dispatcher {
	return &Dispatcher{
		resolvers: resolvers,
	}
}

func (d *Dispatcher) Resolve(ctx context.Context, identifier string) (entity.PaymentDescriptor, error) {
	if strings.TrimSpace(identifier) == "" {
		return entity.PaymentDescriptor{}, fmt.Errorf("%w: empty identifier", entity.ErrInvalidArgument)
	}

	for _, r := range d.resolvers {
		p, err := r.Resolve(ctx, identifier)
		if err == nil {
			slog.InfoContext(ctx, "payment resolved", "resolver", r.Name(), "transaction_id", p.TransactionID, "sum", p.SumMinorUnits)
			return p, nil
		}

		if !errors.Is(err, entity.ErrNotFound) {
			return entity.PaymentDescriptor{}, fmt.Errorf("%s resolver: %w", r.Name(), err)
		}

		slog.DebugContext(ctx, "payment not resolved", "resolver", r.Name(), "reason", err.Error())
	}

	return entity.PaymentDescriptor{}, fmt.Errorf("payment %q: %w", identifier, entity.ErrNotFound)
}

// initiator appends initiation attempts to the ledger. Both resolvers share it.
type initiator struct {
	recorder TransactionRecorder
	producer Producer
}

func (i initiator) initiate(
	ctx context.Context,
	identifier string,
	personID string,
	payer string,
	accountType entity.AccountType,
	sum int64,
	info any,
) (entity.TransactionRecord, error) {
	b, err := json.Marshal(info)
	if err != nil {
		return entity.TransactionRecord{}, fmt.Errorf("marshal info: %w", err)
	}

	now := time.Now()

	tx := entity.TransactionRecord{
		UUID:            uuid.Must(uuid.NewV4()),
		PaymentPerson:   payer,
		PersonID:        personID,
		AccountNumber:   identifier,
		AccountType:     accountType,
		OperationStatus: entity.OperationStatusInitiated,
		OperationDate:   now,
		Info:            b,
		CreatedAt:       now,
	}

	tx, err = i.recorder.CreateTransaction(ctx, tx)
	if err != nil {
		return entity.TransactionRecord{}, fmt.Errorf("create transaction: %w", err)
	}

	i.producer.SendPaymentEvent(ctx, broker.PaymentEvent{
		Type:          broker.EventPaymentInitiated,
		TransactionID: tx.UUID,
		AccountNumber: tx.AccountNumber,
		AccountType:   tx.AccountType.String(),
		Status:        tx.OperationStatus.String(),
		SumMinorUnits: sum,
		OccurredAt:    now,
	})

	return tx, nil
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/vstpayment/internal/entity"
	"github.com/samandr77/microservices/vstpayment/pkg/broker"
)

// Callbacks applies gateway confirmations to the ledger and expires stale initiations.
type Callbacks struct {
	ledger      Ledger
	producer    Producer
	expireAfter time.Duration
}

func NewCallbacks(ledger Ledger, producer Producer, expireAfter time.Duration) *Callbacks {
	return &Callbacks{
		ledger:      ledger,
		producer:    producer,
		expireAfter: expireAfter,
	}
}

// Status returns the ledger record of transactionID, or the latest record of paymentID
// when transactionID is uuid.Nil.
func (c *Callbacks) Status(ctx context.Context, paymentID string, transactionID uuid.UUID) (entity.TransactionRecord, error) {
	tx, err := c.ledger.LatestTransaction(ctx, entity.TransactionFilter{AccountNumber: paymentID, UUID: transactionID})
	if err != nil {
		return entity.TransactionRecord{}, fmt.Errorf("get transaction of %q: %w", paymentID, err)
	}

	return tx, nil
}

// Confirm applies a gateway confirmation at most once. A repeated delivery returns
// a result with Applied=false and no error.
func (c *Callbacks) Confirm(ctx context.Context, conf entity.Confirmation) (entity.ConfirmationResult, error) {
	if conf.PaymentID == "" {
		return entity.ConfirmationResult{}, fmt.Errorf("%w: empty payment id", entity.ErrInvalidArgument)
	}

	tx, err := c.match(ctx, conf)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			slog.WarnContext(ctx, "confirmation does not match any transaction",
				"payment_id", conf.PaymentID, "transaction_id", conf.TransactionID)

			return entity.ConfirmationResult{}, nil
		}

		return entity.ConfirmationResult{}, err
	}

	res := entity.ConfirmationResult{
		Matched:       true,
		TransactionID: tx.UUID,
		Status:        tx.OperationStatus,
	}

	if tx.OperationStatus.Final() {
		slog.InfoContext(ctx, "repeated confirmation", "transaction_id", tx.UUID, "status", tx.OperationStatus)
		return res, nil
	}

	checkSum(ctx, tx, conf.SumMinorUnits)

	operationDate := conf.OperationDate
	if operationDate.IsZero() {
		operationDate = time.Now()
	}

	applied, err := c.ledger.UpdateOperationStatus(ctx, tx.UUID, entity.OperationStatusInitiated, conf.Status, operationDate)
	if err != nil {
		return entity.ConfirmationResult{}, fmt.Errorf("update transaction %q status to %q: %w", tx.UUID, conf.Status, err)
	}

	if !applied {
		// A concurrent delivery won the update.
		slog.InfoContext(ctx, "confirmation already applied", "transaction_id", tx.UUID)
		return res, nil
	}

	res.Applied = true
	res.Status = conf.Status

	c.producer.SendPaymentEvent(ctx, broker.PaymentEvent{
		Type:          broker.EventPaymentConfirmed,
		TransactionID: tx.UUID,
		AccountNumber: tx.AccountNumber,
		AccountType:   tx.AccountType.String(),
		Status:        conf.Status.String(),
		SumMinorUnits: conf.SumMinorUnits,
		OccurredAt:    operationDate,
	})

	return res, nil
}

// match finds the ledger record a confirmation is about: the sent transaction id when it
// belongs to the account, otherwise the latest initiated record of the account.
func (c *Callbacks) match(ctx context.Context, conf entity.Confirmation) (entity.TransactionRecord, error) {
	if conf.TransactionID != uuid.Nil {
		tx, err := c.ledger.LatestTransaction(ctx, entity.TransactionFilter{
			AccountNumber: conf.PaymentID,
			UUID:          conf.TransactionID,
		})

		switch {
		case err == nil:
			return tx, nil
		case !errors.Is(err, entity.ErrNotFound):
			return entity.TransactionRecord{}, fmt.Errorf("get transaction %q: %w", conf.TransactionID, err)
		}
	}

	tx, err := c.ledger.LatestTransaction(ctx, entity.TransactionFilter{
		AccountNumber: conf.PaymentID,
		Status:        entity.OperationStatusInitiated,
	})
	if err == nil {
		return tx, nil
	}

	if !errors.Is(err, entity.ErrNotFound) {
		return entity.TransactionRecord{}, fmt.Errorf("get initiated transaction of %q: %w", conf.PaymentID, err)
	}

	// Nothing is pending: a repeated delivery is matched with the latest record.
	tx, err = c.ledger.LatestTransaction(ctx, entity.TransactionFilter{AccountNumber: conf.PaymentID})
	if err != nil {
		return entity.TransactionRecord{}, fmt.Errorf("get latest transaction of %q: %w", conf.PaymentID, err)
	}

	return tx, nil
}

func checkSum(ctx context.Context, tx entity.TransactionRecord, sum int64) {
	if sum == 0 || len(tx.Info) == 0 {
		return
	}

	var info struct {
		AmountMinor int64 `json:"amount_minor"`
	}

	err := json.Unmarshal(tx.Info, &info)
	if err != nil {
		slog.WarnContext(ctx, "unmarshal transaction info", "transaction_id", tx.UUID, "error", err)
		return
	}

	if info.AmountMinor != sum {
		slog.WarnContext(ctx, "confirmed sum differs from initiated sum",
			"transaction_id", tx.UUID, "initiated", info.AmountMinor, "confirmed", sum)
	}
}

// CleanupExpired marks initiated records older than olderThan as expired.
func (c *Callbacks) CleanupExpired(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, fmt.Errorf("%w: non positive expiry interval %s", entity.ErrInvalidArgument, olderThan)
	}

	now := time.Now()

	n, err := c.ledger.ExpireTransactions(ctx, now.Add(-olderThan), now)
	if err != nil {
		return 0, fmt.Errorf("expire transactions: %w", err)
	}

	if n > 0 {
		slog.InfoContext(ctx, "transactions expired", "count", n, "older_than", olderThan.String())

		c.producer.SendPaymentEvent(ctx, broker.PaymentEvent{
			Type:       broker.EventPaymentExpired,
			Status:     entity.OperationStatusExpired.String(),
			Count:      n,
			OccurredAt: now,
		})
	}

	return n, nil
}

// ExpireStale is the periodic form of CleanupExpired.
func (c *Callbacks) ExpireStale(ctx context.Context) error {
	_, err := c.CleanupExpired(ctx, c.expireAfter)
	return err
}

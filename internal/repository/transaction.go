package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/vstpayment/internal/entity"
)

//nolint:gochecknoglobals
var transactionColumns = []string{
	"id",
	"uuid",
	"payment_person",
	"person_id",
	"account_number",
	"account_type",
	"operation_status",
	"operation_date",
	"info",
	"created_at",
}

// CreateTransaction appends an initiation attempt to the ledger.
func (r *Repository) CreateTransaction(ctx context.Context, tx entity.TransactionRecord) (entity.TransactionRecord, error) {
	const q = `
	INSERT INTO vst_transactions (
		uuid,
		payment_person,
		person_id,
		account_number,
		account_type,
		operation_status,
		operation_date,
		info,
		created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id
	`

	info := tx.Info
	if len(info) == 0 {
		info = []byte("{}")
	}

	err := r.db.QueryRow(
		ctx,
		q,
		tx.UUID,
		tx.PaymentPerson,
		tx.PersonID,
		tx.AccountNumber,
		tx.AccountType,
		tx.OperationStatus,
		tx.OperationDate,
		string(info),
		tx.CreatedAt,
	).Scan(&tx.ID)
	if err != nil {
		return entity.TransactionRecord{}, err
	}

	return tx, nil
}

// LatestTransaction returns the most recent ledger record matching f.
func (r *Repository) LatestTransaction(ctx context.Context, f entity.TransactionFilter) (entity.TransactionRecord, error) {
	stmt := sq.Select(transactionColumns...).
		From("vst_transactions").
		Where(sq.Eq{"account_number": f.AccountNumber}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		PlaceholderFormat(sq.Dollar)

	stmt = applyTransactionFilter(stmt, f)

	sql, args, err := stmt.ToSql()
	if err != nil {
		return entity.TransactionRecord{}, err
	}

	return scanTransaction(r.db.QueryRow(ctx, sql, args...))
}

func applyTransactionFilter(stmt sq.SelectBuilder, f entity.TransactionFilter) sq.SelectBuilder {
	if f.UUID != uuid.Nil {
		stmt = stmt.Where(sq.Eq{"uuid": f.UUID})
	}

	if f.Status != "" {
		stmt = stmt.Where(sq.Eq{"operation_status": f.Status})
	}

	return stmt
}

// UpdateOperationStatus moves a record from prev to status.
// It reports false when the record is not in prev anymore, so a repeated call changes nothing.
func (r *Repository) UpdateOperationStatus(
	ctx context.Context,
	id uuid.UUID,
	prev, status entity.OperationStatus,
	operationDate time.Time,
) (bool, error) {
	const q = `UPDATE vst_transactions SET operation_status = $1, operation_date = $2 WHERE uuid = $3 AND operation_status = $4`

	result, err := r.db.Exec(ctx, q, status, operationDate, id, prev)
	if err != nil {
		return false, err
	}

	return result.RowsAffected() == 1, nil
}

// ExpireTransactions marks initiated records created before createdBefore as expired.
func (r *Repository) ExpireTransactions(ctx context.Context, createdBefore, now time.Time) (int64, error) {
	const q = `UPDATE vst_transactions SET operation_status = $1, operation_date = $2 WHERE operation_status = $3 AND created_at < $4`

	result, err := r.db.Exec(ctx, q, entity.OperationStatusExpired, now, entity.OperationStatusInitiated, createdBefore)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

func scanTransaction(row pgx.Row) (tx entity.TransactionRecord, err error) {
	var info []byte

	err = row.Scan(
		&tx.ID,
		&tx.UUID,
		&tx.PaymentPerson,
		&tx.PersonID,
		&tx.AccountNumber,
		&tx.AccountType,
		&tx.OperationStatus,
		&tx.OperationDate,
		&info,
		&tx.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.TransactionRecord{}, entity.ErrNotFound
		}

		return entity.TransactionRecord{}, err
	}

	tx.Info = info

	return tx, nil
}

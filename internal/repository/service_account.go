package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/vstpayment/internal/entity"
)

// The service is LEFT JOINed so that an account with a dangling service_id is still returned.
const selectServiceAccount = `SELECT
		a.id,
		a.account_number,
		a.service_id,
		a.administrator,
		a.payer,
		a.amount,
		a.enabled,
		a.date,
		a.time,
		s.id,
		s.identifier,
		s.name,
		s.price,
		s.edrpou,
		s.iban
	FROM cnap_accounts a
	LEFT JOIN cnap_services s ON s.id = a.service_id`

// ServiceAccount returns the latest enabled account with the given number.
func (r *Repository) ServiceAccount(ctx context.Context, accountNumber string) (entity.ServiceAccount, error) {
	q := selectServiceAccount + " WHERE a.account_number = $1 AND a.enabled = true ORDER BY a.id DESC LIMIT 1"

	var (
		a         entity.ServiceAccount
		serviceID zeronull.Int8
		accountSv zeronull.Int8
		s         entity.ServiceDefinition
		price     decimal.NullDecimal
	)

	err := r.db.QueryRow(ctx, q, accountNumber).Scan(
		&a.ID,
		&a.AccountNumber,
		&accountSv,
		&a.Administrator,
		&a.Payer,
		&a.Amount,
		&a.Enabled,
		&a.Date,
		&a.Time,
		&serviceID,
		(*zeronull.Text)(&s.Identifier),
		(*zeronull.Text)(&s.Name),
		&price,
		(*zeronull.Text)(&s.EDRPOU),
		(*zeronull.Text)(&s.IBAN),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.ServiceAccount{}, entity.ErrNotFound
		}

		return entity.ServiceAccount{}, err
	}

	a.ServiceID = int64(accountSv)

	if serviceID != 0 {
		s.Price = price
		a.Service = &s
	}

	return a, nil
}

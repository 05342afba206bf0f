package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/samandr77/microservices/vstpayment/internal/entity"
)

const selectDebtor = `SELECT
		id,
		name,
		identification,
		residential_debt,
		non_residential_debt,
		land_debt,
		rent_debt,
		mpz_debt,
		as_of_date
	FROM debtor`

func (r *Repository) Debtor(ctx context.Context, id int64) (entity.Debtor, error) {
	q := selectDebtor + " WHERE id = $1"

	var d entity.Debtor

	err := r.db.QueryRow(ctx, q, id).Scan(
		&d.ID,
		&d.Name,
		(*zeronull.Text)(&d.TaxIdentification),
		&d.ResidentialDebt,
		&d.NonResidentialDebt,
		&d.LandDebt,
		&d.RentalDebt,
		&d.MinimumTaxObligationDebt,
		&d.AsOfDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Debtor{}, entity.ErrNotFound
		}

		return entity.Debtor{}, err
	}

	return d, nil
}

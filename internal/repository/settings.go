package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/samandr77/microservices/vstpayment/internal/entity"
)

// CurrentSettings returns the most recent settings row with requisites of every tax category.
func (r *Repository) CurrentSettings(ctx context.Context) (entity.Settings, error) {
	sql, args, err := settingsQuery().ToSql()
	if err != nil {
		return entity.Settings{}, err
	}

	var (
		id          int64
		callbackURL zeronull.Text
		requisites  = make([]entity.Requisites, len(entity.TaxCategories))
	)

	dest := make([]any, 0, 2+4*len(entity.TaxCategories))
	dest = append(dest, &id, &callbackURL)

	for i := range requisites {
		dest = append(dest,
			(*zeronull.Text)(&requisites[i].Account),
			(*zeronull.Text)(&requisites[i].EDRPOU),
			(*zeronull.Text)(&requisites[i].RecipientName),
			(*zeronull.Text)(&requisites[i].Purpose),
		)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(dest...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Settings{}, fmt.Errorf("settings: %w", entity.ErrNotFound)
		}

		return entity.Settings{}, err
	}

	byPrefix := make(map[string]entity.Requisites, len(requisites))
	for i, c := range entity.TaxCategories {
		byPrefix[c.SettingsPrefix] = requisites[i]
	}

	return entity.NewSettings(id, string(callbackURL), byPrefix), nil
}

func settingsQuery() sq.SelectBuilder {
	columns := []string{"id", "callback_url"}

	for _, c := range entity.TaxCategories {
		columns = append(columns,
			c.SettingsPrefix+"_account",
			c.SettingsPrefix+"_edrpou",
			c.SettingsPrefix+"_recipientname",
			c.SettingsPrefix+"_purpose",
		)
	}

	return sq.Select(columns...).
		From("settings").
		OrderBy("id DESC").
		Limit(1).
		PlaceholderFormat(sq.Dollar)
}

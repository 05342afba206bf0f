package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository reads the debt registry and CNAP tables and writes the payment ledger.
type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}


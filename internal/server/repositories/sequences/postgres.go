package sequences

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blogkeeper/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Next(ctx context.Context, name string) (int64, error) {
	query :=
		`UPDATE sequences SET value = value + 1
		 WHERE name = $1
		 RETURNING value
		 `

	var value int64
	err := r.db.QueryRowContext(ctx, query, name).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("unknown sequence %q", name)
		}
		return 0, fmt.Errorf("db error: %w", err)
	}

	return value, nil
}

package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/anupamk/vidyalaya/internal/pkg/apperrors"
)

// mapQueryError translates pgx errors into the application taxonomy:
// missing rows become ErrNotFound, everything else is a store failure.
func mapQueryError(err error, message string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	return apperrors.NewStoreError(err, message)
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation error.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // 23505 is unique_violation
}

package pgrepo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ledgerbook/ledgerd/internal/domain"
)

const (
	uniqueViolationCode = "23505"
)

// convertErr brings an error to the standard repository-layer form. It adds a
// formatted context message, the business error kind and the original message.
//   - pgx.ErrNoRows maps to domain.ErrRecordNotFound.
//   - Postgres unique violations (uniqueViolationCode) map to domain.ErrDuplicateKey.
//   - Everything else maps to domain.ErrUnknown with the original message kept.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	var pgErr *pgconn.PgError
	errType := domain.ErrUnknown

	if errors.As(err, &pgErr) {
		if isUniqueViolationErr(pgErr) {
			errType = domain.ErrDuplicateKey
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}

func isUniqueViolationErr(err *pgconn.PgError) bool {
	return err.Code == uniqueViolationCode
}

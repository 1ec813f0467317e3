// Package pgerr translates postgres driver errors into the errs taxonomy.
package pgerr

import (
	"errors"

	"printflow/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the SQLSTATE of a duplicate key.
const uniqueViolation = "23505"

// Translate maps a unique violation to errs.ConflictError and returns any other
// error unchanged.
func Translate(paramName string, id any, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return errs.NewConflictErrorWithCause(paramName, id, err)
	}
	return err
}

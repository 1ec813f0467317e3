package pgerr_test

import (
	"errors"
	"fmt"
	"testing"

	"printflow/internal/adapters/out/postgres/pgerr"
	"printflow/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	t.Run("should turn a duplicate key into a conflict", func(t *testing.T) {
		cause := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "orders_pkey"})

		err := pgerr.Translate("orderId", "42", cause)

		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("should pass other errors through", func(t *testing.T) {
		cause := &pgconn.PgError{Code: "23503"}

		assert.Same(t, cause, pgerr.Translate("orderId", "42", cause))
		assert.Nil(t, pgerr.Translate("orderId", "42", nil))
		plain := errors.New("connection reset")
		assert.Equal(t, plain, pgerr.Translate("orderId", "42", plain))
	})
}

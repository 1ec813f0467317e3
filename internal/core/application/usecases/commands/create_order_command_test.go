package commands_test

import (
	"testing"

	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/domain/model/access"
	"printflow/internal/core/domain/model/catalog"
	"printflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should copy the submitted form", func(t *testing.T) {
		values := catalog.FormValues{catalog.FieldQuantity: "10"}

		cmd, err := commands.NewCreateOrderCommand(newSession(t, access.Client), kernel.NewUUID(), kernel.NewUUID(), values, nil)
		require.NoError(t, err)
		values[catalog.FieldQuantity] = "20"

		require.NoError(t, cmd.Validate())
		assert.Equal(t, "10", cmd.Values()[catalog.FieldQuantity])
	})

	t.Run("should require session order and product", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(access.Session{}, kernel.UUID{}, kernel.UUID{}, nil, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, access.ErrSessionIsNotConstructed)
		assert.Contains(t, err.Error(), "productId")
	})

	t.Run("should reject zero value command", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}

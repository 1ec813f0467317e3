package commands

import (
	"errors"
	"fmt"

	"printflow/internal/core/domain/model/access"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

var ErrUpdateOrderQuantityCommandIsNotConstructed = errors.New(
	"UpdateOrderQuantityCommand must be created via NewUpdateOrderQuantityCommand constructor",
)

// UpdateOrderQuantityCommand changes how many copies an order asks for.
type UpdateOrderQuantityCommand struct { //nolint:recvcheck //using for validation
	session  access.Session
	orderID  kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

func NewUpdateOrderQuantityCommand(
	session access.Session,
	orderID kernel.UUID,
	quantity int,
) (UpdateOrderQuantityCommand, error) {
	var quantityErr error
	if quantity <= 0 {
		quantityErr = errs.NewValidationError(errs.FieldIssue{
			Field:  "quantity",
			Reason: fmt.Sprintf("%d is not greater than 0", quantity),
		})
	}

	if err := errors.Join(session.Validate(), orderID.Validate(), quantityErr); err != nil {
		return UpdateOrderQuantityCommand{}, err
	}

	return UpdateOrderQuantityCommand{
		session:  session,
		orderID:  orderID,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderQuantityCommandIsNotConstructed)
}

func (c UpdateOrderQuantityCommand) Session() access.Session { return c.session }
func (c UpdateOrderQuantityCommand) OrderID() kernel.UUID { return c.orderID }
func (c UpdateOrderQuantityCommand) Quantity() int { return c.quantity }

package commands

import (
	"errors"

	"printflow/internal/core/domain/model/access"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand raises an order to a staff member.
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	session access.Session
	orderID kernel.UUID
	staffID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignOrderCommand(session access.Session, orderID, staffID kernel.UUID) (AssignOrderCommand, error) {
	cmd := AssignOrderCommand{guard: guard.NewConstructorGuard()}

	var staffErr error
	if err := staffID.Validate(); err != nil {
		staffErr = errs.NewValueIsRequiredErrorWithCause("staffId", err)
	}

	if err := errors.Join(session.Validate(), orderID.Validate(), staffErr); err != nil {
		return AssignOrderCommand{}, err
	}

	cmd.session = session
	cmd.orderID = orderID
	cmd.staffID = staffID
	return cmd, nil
}

func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

func (c AssignOrderCommand) Session() access.Session { return c.session }
func (c AssignOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c AssignOrderCommand) StaffID() kernel.UUID { return c.staffID }

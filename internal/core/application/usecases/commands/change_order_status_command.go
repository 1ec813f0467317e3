package commands

import (
	"errors"
	"fmt"

	"printflow/internal/core/domain/model/access"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// OrderTransition names a lifecycle operation that only moves the status.
type OrderTransition int

const (
	UnknownTransition OrderTransition = iota
	Approve
	Cancel
	SoftDelete
	Complete
)

type transitionRule struct {
	action string
	roles  []access.Role
	apply  func(*order.Order) error
}

func getTransitionRules() map[OrderTransition]transitionRule {
	return map[OrderTransition]transitionRule{
		Approve:    {"approve orders", []access.Role{access.Admin}, (*order.Order).Approve},
		Cancel:     {"cancel orders", []access.Role{access.Admin}, (*order.Order).Cancel},
		SoftDelete: {"delete orders", []access.Role{access.Admin}, (*order.Order).Delete},
		Complete:   {"complete orders", []access.Role{access.Staff, access.Admin}, (*order.Order).Complete},
	}
}

func (t OrderTransition) Validate() error {
	if _, ok := getTransitionRules()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("transition", fmt.Errorf("%d is not a known transition", t))
	}
	return nil
}

// ChangeOrderStatusCommand approves, cancels, soft-deletes or completes an order.
//
// Example:
//
//	cmd, _ := NewChangeOrderStatusCommand(session, orderID, Approve)
//	err := handler.Handle(ctx, cmd) // PENDING -> ACTIVE
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	session    access.Session
	orderID    kernel.UUID
	transition OrderTransition

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(
	session access.Session,
	orderID kernel.UUID,
	transition OrderTransition,
) (ChangeOrderStatusCommand, error) {
	if err := errors.Join(session.Validate(), orderID.Validate(), transition.Validate()); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		session:    session,
		orderID:    orderID,
		transition: transition,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) Session() access.Session { return c.session }
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c ChangeOrderStatusCommand) Transition() OrderTransition { return c.transition }

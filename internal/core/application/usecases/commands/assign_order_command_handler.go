package commands

import (
	"context"
	"errors"
	"fmt"

	"printflow/internal/core/domain/model/access"
	"printflow/internal/pkg/errs"
)

// AssignOrderCommandHandler assigns an order to a STAFF or ADMIN user. Only
// admins may assign, and an order is assigned once.
type AssignOrderCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

func NewAssignOrderCommandHandler(uowFactory AssignmentUoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{uowFactory: uowFactory}
}

func (h *AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Session().Require("assign orders", access.Admin); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	staff, err := uow.UserRepository().Get(ctx, cmd.StaffID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewValidationError(errs.FieldIssue{Field: "staffId", Reason: "user does not exist"})
	}
	if err != nil {
		return err
	}
	if !staff.CanBeAssigned() {
		return errs.NewValidationError(errs.FieldIssue{
			Field:  "staffId",
			Reason: fmt.Sprintf("user has role %s, expected STAFF or ADMIN", staff.Role()),
		})
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Assign(staff.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

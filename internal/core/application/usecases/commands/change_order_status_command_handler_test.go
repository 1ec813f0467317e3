package commands_test

import (
	"errors"
	"testing"

	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/domain/model/access"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	cases := []struct {
		name       string
		transition commands.OrderTransition
		role       access.Role
		from       order.Status
		to         order.Status
	}{
		{"should approve a pending order", commands.Approve, access.Admin, order.Pending, order.Active},
		{"should cancel an active order", commands.Cancel, access.Admin, order.Active, order.Cancelled},
		{"should soft delete a cancelled order", commands.SoftDelete, access.Admin, order.Cancelled, order.Deleted},
		{"should let staff complete an automated order", commands.Complete, access.Staff, order.Automated, order.Completed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			o := newOrderWithStatus(t, tc.from)
			cmd, err := commands.NewChangeOrderStatusCommand(newSession(t, tc.role), o.ID(), tc.transition)
			require.NoError(t, err)

			repo := new(MockOrderRepository)
			uow := new(MockUoW)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(repo).Once(),
				repo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
				repo.On("Update", ctx, o).Return(nil).Once(),
				uow.On("Commit", ctx).Return(nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)
			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewChangeOrderStatusCommandHandler(factory)
			err = h.Handle(ctx, cmd)

			require.NoError(t, err)
			assert.Equal(t, tc.to, o.Status())
			repo.AssertExpectations(t)
			repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
			uow.AssertExpectations(t)
		})
	}
}

func TestChangeOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	o := newOrderWithStatus(t, order.Automated)
	cmd, err := commands.NewChangeOrderStatusCommand(newSession(t, access.Admin), o.ID(), commands.Cancel)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	var transitionErr *errs.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, "AUTOMATED", transitionErr.From)
	assert.Equal(t, "CANCELLED", transitionErr.To)
	assert.Equal(t, order.Automated, o.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestChangeOrderStatusCommandHandler_Handle_Forbidden(t *testing.T) {
	for _, transition := range []commands.OrderTransition{commands.Approve, commands.Cancel, commands.SoftDelete} {
		ctx := t.Context()
		cmd, err := commands.NewChangeOrderStatusCommand(newSession(t, access.Staff), kernel.NewUUID(), transition)
		require.NoError(t, err)
		factory := new(MockOrderUoWFactory)

		h := commands.NewChangeOrderStatusCommandHandler(factory)
		err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
		factory.AssertNotCalled(t, "Create")
	}

	t.Run("should not let clients complete orders", func(t *testing.T) {
		cmd, err := commands.NewChangeOrderStatusCommand(newSession(t, access.Client), kernel.NewUUID(), commands.Complete)
		require.NoError(t, err)

		h := commands.NewChangeOrderStatusCommandHandler(new(MockOrderUoWFactory))
		err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestChangeOrderStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewChangeOrderStatusCommand(newSession(t, access.Admin), id, commands.Approve)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetForUpdate", ctx, id).Return(nil, errs.NewObjectNotFoundError("orderId", id)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestChangeOrderStatusCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(newSession(t, access.Admin), kernel.NewUUID(), commands.Approve)
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}

func TestNewChangeOrderStatusCommand(t *testing.T) {
	t.Run("should reject unknown transition", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(newSession(t, access.Admin), kernel.NewUUID(), commands.UnknownTransition)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

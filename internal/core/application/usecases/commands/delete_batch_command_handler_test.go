package commands_test

import (
	"testing"

	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/domain/model/access"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteBatchCommandHandler_Handle(t *testing.T) {
	t.Run("should delete an optimizer batch", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, err := commands.NewDeleteBatchCommand(newSession(t, access.Admin), id, commands.OptimizedBatch)
		require.NoError(t, err)

		batches := new(MockAutomationRepository)
		batches.On("Delete", ctx, id).Return(nil).Once()
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("AutomationRepository").Return(batches).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockBatchRemovalUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewDeleteBatchCommandHandler(factory)
		err = h.Handle(ctx, cmd)

		require.NoError(t, err)
		batches.AssertExpectations(t)
		uow.AssertNotCalled(t, "ManualAutomationRepository")
	})

	t.Run("should delete a manual batch", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, err := commands.NewDeleteBatchCommand(newSession(t, access.Admin), id, commands.ManualBatch)
		require.NoError(t, err)

		batches := new(MockManualAutomationRepository)
		batches.On("Delete", ctx, id).Return(nil).Once()
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ManualAutomationRepository").Return(batches).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockBatchRemovalUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewDeleteBatchCommandHandler(factory)
		err = h.Handle(ctx, cmd)

		require.NoError(t, err)
		batches.AssertExpectations(t)
	})

	t.Run("should report a missing batch", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, err := commands.NewDeleteBatchCommand(newSession(t, access.Admin), id, commands.OptimizedBatch)
		require.NoError(t, err)

		batches := new(MockAutomationRepository)
		batches.On("Delete", ctx, id).Return(errs.NewObjectNotFoundError("batch", id.String())).Once()
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("AutomationRepository").Return(batches).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockBatchRemovalUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewDeleteBatchCommandHandler(factory)
		err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should forbid staff", func(t *testing.T) {
		cmd, err := commands.NewDeleteBatchCommand(newSession(t, access.Staff), kernel.NewUUID(), commands.ManualBatch)
		require.NoError(t, err)
		factory := new(MockBatchRemovalUoWFactory)

		h := commands.NewDeleteBatchCommandHandler(factory)
		err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
		factory.AssertNotCalled(t, "Create")
	})
}

func TestNewDeleteBatchCommand(t *testing.T) {
	_, err := commands.NewDeleteBatchCommand(newSession(t, access.Admin), kernel.NewUUID(), commands.UnknownBatchKind)

	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

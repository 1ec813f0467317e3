package commands

import (
	"errors"

	"printflow/internal/core/domain/model/access"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

var ErrDeleteBatchCommandIsNotConstructed = errors.New(
	"DeleteBatchCommand must be created via NewDeleteBatchCommand constructor",
)

// BatchKind tells optimizer batches from manual ones.
type BatchKind int

const (
	UnknownBatchKind BatchKind = iota
	OptimizedBatch
	ManualBatch
)

// DeleteBatchCommand removes a batch record. The orders it covered keep their
// status.
type DeleteBatchCommand struct { //nolint:recvcheck //using for validation
	session access.Session
	batchID kernel.UUID
	kind    BatchKind

	guard guard.ConstructorGuard
}

func NewDeleteBatchCommand(session access.Session, batchID kernel.UUID, kind BatchKind) (DeleteBatchCommand, error) {
	var kindErr error
	if kind != OptimizedBatch && kind != ManualBatch {
		kindErr = errs.NewValueIsOutOfRangeError("kind", kind, OptimizedBatch, ManualBatch)
	}

	if err := errors.Join(session.Validate(), batchID.Validate(), kindErr); err != nil {
		return DeleteBatchCommand{}, err
	}

	return DeleteBatchCommand{
		session: session,
		batchID: batchID,
		kind:    kind,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteBatchCommand) Validate() error {
	return c.guard.Validate(ErrDeleteBatchCommandIsNotConstructed)
}

func (c DeleteBatchCommand) Session() access.Session { return c.session }
func (c DeleteBatchCommand) BatchID() kernel.UUID { return c.batchID }
func (c DeleteBatchCommand) Kind() BatchKind { return c.kind }

package commands

import (
	"errors"
	"time"

	"printflow/internal/core/domain/model/access"
	"printflow/internal/core/domain/model/automation"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

// DefaultOptimizerTimeout bounds an optimizer call when the caller gives none.
const DefaultOptimizerTimeout = 30 * time.Second

var ErrSubmitBatchCommandIsNotConstructed = errors.New(
	"SubmitBatchCommand must be created via NewSubmitBatchCommand constructor",
)

// SubmitBatchCommand sends a set of ACTIVE orders to the packing optimizer and
// records the resulting layout as a batch.
//
// Example:
//
//	cmd, err := NewSubmitBatchCommand(session, kernel.NewUUID(), orderIDs, automation.Settings{
//	    SheetID:   sheetID,
//	    Bleed:     3,
//	    Algorithm: automation.DefaultAlgorithm,
//	}, "", "", 0)
type SubmitBatchCommand struct { //nolint:recvcheck //using for validation
	session     access.Session
	batchID     kernel.UUID
	orderIDs    []kernel.UUID
	settings    automation.Settings
	name        string
	description string
	timeout     time.Duration

	guard guard.ConstructorGuard
}

// NewSubmitBatchCommand builds the command. A non-positive timeout falls back
// to DefaultOptimizerTimeout.
func NewSubmitBatchCommand(
	session access.Session,
	batchID kernel.UUID,
	orderIDs []kernel.UUID,
	settings automation.Settings,
	name string,
	description string,
	timeout time.Duration,
) (SubmitBatchCommand, error) {
	if err := errors.Join(session.Validate(), batchID.Validate()); err != nil {
		return SubmitBatchCommand{}, err
	}

	if err := errors.Join(automation.ValidateOrderIDs(orderIDs), settings.Validate()); err != nil {
		return SubmitBatchCommand{}, errs.NewValidationErrorFrom(err)
	}

	if timeout <= 0 {
		timeout = DefaultOptimizerTimeout
	}

	return SubmitBatchCommand{
		session:     session,
		batchID:     batchID,
		orderIDs:    append([]kernel.UUID(nil), orderIDs...),
		settings:    settings,
		name:        name,
		description: description,
		timeout:     timeout,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitBatchCommand) Validate() error {
	return c.guard.Validate(ErrSubmitBatchCommandIsNotConstructed)
}

func (c SubmitBatchCommand) Session() access.Session { return c.session }
func (c SubmitBatchCommand) BatchID() kernel.UUID { return c.batchID }
func (c SubmitBatchCommand) OrderIDs() []kernel.UUID { return append([]kernel.UUID(nil), c.orderIDs...) }
func (c SubmitBatchCommand) Settings() automation.Settings { return c.settings }
func (c SubmitBatchCommand) Name() string { return c.name }
func (c SubmitBatchCommand) Description() string { return c.description }
func (c SubmitBatchCommand) Timeout() time.Duration { return c.timeout }

package commands

import (
	"errors"
	"strings"

	"printflow/internal/core/domain/model/access"
	"printflow/internal/core/domain/model/automation"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

var ErrSubmitManualBatchCommandIsNotConstructed = errors.New(
	"SubmitManualBatchCommand must be created via NewSubmitManualBatchCommand constructor",
)

// SubmitManualBatchCommand records orders that were laid out by hand. The
// layout file has been uploaded beforehand and is referenced by its URL.
type SubmitManualBatchCommand struct { //nolint:recvcheck //using for validation
	session     access.Session
	batchID     kernel.UUID
	orderIDs    []kernel.UUID
	name        string
	description string
	fileURL     string

	guard guard.ConstructorGuard
}

func NewSubmitManualBatchCommand(
	session access.Session,
	batchID kernel.UUID,
	orderIDs []kernel.UUID,
	name string,
	description string,
	fileURL string,
) (SubmitManualBatchCommand, error) {
	if err := errors.Join(session.Validate(), batchID.Validate()); err != nil {
		return SubmitManualBatchCommand{}, err
	}

	var nameErr, fileErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if strings.TrimSpace(fileURL) == "" {
		fileErr = errs.NewValueIsRequiredError("automationFile")
	}
	if err := errors.Join(nameErr, automation.ValidateOrderIDs(orderIDs), fileErr); err != nil {
		return SubmitManualBatchCommand{}, errs.NewValidationErrorFrom(err)
	}

	return SubmitManualBatchCommand{
		session:     session,
		batchID:     batchID,
		orderIDs:    append([]kernel.UUID(nil), orderIDs...),
		name:        name,
		description: description,
		fileURL:     strings.TrimSpace(fileURL),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitManualBatchCommand) Validate() error {
	return c.guard.Validate(ErrSubmitManualBatchCommandIsNotConstructed)
}

func (c SubmitManualBatchCommand) Session() access.Session { return c.session }
func (c SubmitManualBatchCommand) BatchID() kernel.UUID { return c.batchID }
func (c SubmitManualBatchCommand) OrderIDs() []kernel.UUID { return append([]kernel.UUID(nil), c.orderIDs...) }
func (c SubmitManualBatchCommand) Name() string { return c.name }
func (c SubmitManualBatchCommand) Description() string { return c.description }
func (c SubmitManualBatchCommand) FileURL() string { return c.fileURL }

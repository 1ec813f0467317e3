package automation

import (
	"errors"
	"strings"
	"time"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

// MaxManualFileSize caps a manual layout file at 1 MiB.
const MaxManualFileSize int64 = 1 << 20

var ErrManualBatchIsNotConstructed = errors.New("ManualBatch must be created via NewManualBatch constructor")

// ManualBatch records orders laid out by hand together with the uploaded layout file.
type ManualBatch struct {
	id          kernel.UUID
	name        string
	description string
	orderIDs    []kernel.UUID
	fileURL     string
	createdAt   time.Time
	guard       guard.ConstructorGuard
}

func NewManualBatch(id kernel.UUID, name, description string, orderIDs []kernel.UUID, fileURL string) (*ManualBatch, error) {
	return RestoreManualBatch(id, name, description, orderIDs, fileURL, time.Now().UTC())
}

func RestoreManualBatch(
	id kernel.UUID,
	name string,
	description string,
	orderIDs []kernel.UUID,
	fileURL string,
	createdAt time.Time,
) (*ManualBatch, error) {
	b := &ManualBatch{
		description: strings.TrimSpace(description),
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}

	var idErr error
	if err := id.Validate(); err != nil {
		idErr = err
	}
	b.id = id

	b.name = strings.TrimSpace(name)
	var nameErr error
	if b.name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}

	b.fileURL = strings.TrimSpace(fileURL)
	var fileErr error
	if b.fileURL == "" {
		fileErr = errs.NewValueIsRequiredError("automationFile")
	}

	orderErr := ValidateOrderIDs(orderIDs)
	b.orderIDs = append([]kernel.UUID(nil), orderIDs...)

	if err := errors.Join(idErr, nameErr, orderErr, fileErr); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *ManualBatch) Validate() error {
	if b == nil {
		return ErrManualBatchIsNotConstructed
	}
	return b.guard.Validate(ErrManualBatchIsNotConstructed)
}

func (b *ManualBatch) ID() kernel.UUID { return b.id }
func (b *ManualBatch) Name() string { return b.name }
func (b *ManualBatch) Description() string { return b.description }
func (b *ManualBatch) OrderIDs() []kernel.UUID { return append([]kernel.UUID(nil), b.orderIDs...) }
func (b *ManualBatch) FileURL() string { return b.fileURL }
func (b *ManualBatch) CreatedAt() time.Time { return b.createdAt }

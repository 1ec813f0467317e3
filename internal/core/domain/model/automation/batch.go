package automation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

var ErrBatchIsNotConstructed = errors.New("Batch must be created via NewBatch constructor")

const defaultNameLayout = "2006-01-02 15:04"

// Settings is the packing request of a batch.
type Settings struct {
	SheetID          kernel.UUID
	Bleed            kernel.Millimeters
	RotationsAllowed bool
	Algorithm        AlgorithmType
	Margins          Margins
}

func (s Settings) Validate() error {
	var bleed error
	if s.Bleed < 0 {
		bleed = errs.NewValueIsOutOfRangeError("bleed", s.Bleed, kernel.Millimeters(0), kernel.MaxMillimeters)
	}

	var sheet error
	if err := s.SheetID.Validate(); err != nil {
		sheet = errs.NewValueIsRequiredErrorWithCause("sheetId", err)
	}

	return errors.Join(sheet, bleed, s.Algorithm.Validate(), s.Margins.Validate())
}

// Batch records a successful optimizer run over a set of orders.
type Batch struct {
	id          kernel.UUID
	name        string
	description string
	orderIDs    []kernel.UUID
	settings    Settings
	layout      Layout
	createdAt   time.Time
	guard       guard.ConstructorGuard
}

// NewBatch creates a batch. An empty name is replaced by "Automation <timestamp>".
func NewBatch(
	id kernel.UUID,
	name string,
	description string,
	orderIDs []kernel.UUID,
	settings Settings,
	layout Layout,
) (*Batch, error) {
	now := time.Now().UTC()
	if strings.TrimSpace(name) == "" {
		name = "Automation " + now.Format(defaultNameLayout)
	}
	return RestoreBatch(id, name, description, orderIDs, settings, layout, now)
}

// RestoreBatch rebuilds a batch from persistence.
func RestoreBatch(
	id kernel.UUID,
	name string,
	description string,
	orderIDs []kernel.UUID,
	settings Settings,
	layout Layout,
	createdAt time.Time,
) (*Batch, error) {
	b := &Batch{
		description: strings.TrimSpace(description),
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setName(name),
		b.setOrderIDs(orderIDs),
		b.setSettings(settings),
		b.setLayout(layout),
	); err != nil {
		return nil, err
	}

	return b, nil
}

func (b *Batch) Validate() error {
	if b == nil {
		return ErrBatchIsNotConstructed
	}
	return b.guard.Validate(ErrBatchIsNotConstructed)
}

func (b *Batch) ID() kernel.UUID { return b.id }
func (b *Batch) Name() string { return b.name }
func (b *Batch) Description() string { return b.description }
func (b *Batch) OrderIDs() []kernel.UUID { return append([]kernel.UUID(nil), b.orderIDs...) }
func (b *Batch) Settings() Settings { return b.settings }
func (b *Batch) Layout() Layout { return b.layout }
func (b *Batch) CreatedAt() time.Time { return b.createdAt }

func (b *Batch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Batch) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	b.name = name
	return nil
}

func (b *Batch) setOrderIDs(ids []kernel.UUID) error {
	if err := ValidateOrderIDs(ids); err != nil {
		return err
	}
	b.orderIDs = append([]kernel.UUID(nil), ids...)
	return nil
}

func (b *Batch) setSettings(settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	b.settings = settings
	return nil
}

func (b *Batch) setLayout(layout Layout) error {
	if err := layout.Validate(); err != nil {
		return err
	}
	b.layout = layout
	return nil
}

// ValidateOrderIDs requires a non-empty list without repeats.
func ValidateOrderIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("orderIds")
	}

	seen := make(map[kernel.UUID]struct{}, len(ids))
	for i, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("orderIds[%d]", i), err)
		}
		if _, dup := seen[id]; dup {
			return errs.NewValueIsInvalidErrorWithCause("orderIds", fmt.Errorf("%s is listed more than once", id))
		}
		seen[id] = struct{}{}
	}
	return nil
}

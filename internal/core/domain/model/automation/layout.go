package automation

import (
	"encoding/json"
	"errors"
	"fmt"

	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

var ErrLayoutIsNotConstructed = errs.NewValueIsRequiredError("layout must be created via NewLayout")

// Layout is the optimizer's answer for a batch. Raw keeps the full payload,
// placements included, as it was received.
type Layout struct {
	efficiency    float64
	placementType string
	raw           json.RawMessage
	guard         guard.ConstructorGuard
}

// NewLayout accepts an efficiency percentage in [0..100].
func NewLayout(efficiency float64, placementType string, raw json.RawMessage) (Layout, error) {
	if efficiency < 0 || efficiency > 100 {
		return Layout{}, errs.NewValueIsOutOfRangeError("efficiency", efficiency, 0, 100)
	}
	if len(raw) > 0 && !json.Valid(raw) {
		return Layout{}, errs.NewValueIsInvalidErrorWithCause("layout", errors.New("payload is not valid JSON"))
	}

	return Layout{
		efficiency:    efficiency,
		placementType: placementType,
		raw:           append(json.RawMessage(nil), raw...),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (l Layout) Validate() error {
	return l.guard.Validate(ErrLayoutIsNotConstructed)
}

func (l Layout) Efficiency() float64 { return l.efficiency }
func (l Layout) PlacementType() string { return l.placementType }
func (l Layout) Raw() json.RawMessage { return append(json.RawMessage(nil), l.raw...) }

func (l Layout) String() string {
	return fmt.Sprintf("%s %.2f%%", l.placementType, l.efficiency)
}

package automation

import (
	"errors"
	"fmt"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
)

// Margins is the unprintable border of a sheet.
type Margins struct {
	Top    kernel.Millimeters
	Bottom kernel.Millimeters
	Left   kernel.Millimeters
	Right  kernel.Millimeters
}

// Validate rejects negative edges.
func (m Margins) Validate() error {
	return errors.Join(
		nonNegative("margins.top", m.Top),
		nonNegative("margins.bottom", m.Bottom),
		nonNegative("margins.left", m.Left),
		nonNegative("margins.right", m.Right),
	)
}

// PrintableArea is what remains of sheet inside the margins. It fails when the
// margins leave no printable area.
func (m Margins) PrintableArea(sheet kernel.Dimensions) (kernel.Dimensions, error) {
	if err := m.Validate(); err != nil {
		return kernel.Dimensions{}, err
	}

	width := sheet.Width() - m.Left - m.Right
	height := sheet.Height() - m.Top - m.Bottom
	if width < 1 || height < 1 {
		return kernel.Dimensions{}, errs.NewValueIsInvalidErrorWithCause(
			"margins",
			fmt.Errorf("margins %d/%d/%d/%d leave no printable area on a %s sheet",
				m.Top, m.Bottom, m.Left, m.Right, sheet),
		)
	}
	return kernel.NewDimensions(width, height)
}

func nonNegative(param string, v kernel.Millimeters) error {
	if v < 0 {
		return errs.NewValueIsOutOfRangeError(param, v, kernel.Millimeters(0), kernel.MaxMillimeters)
	}
	return nil
}

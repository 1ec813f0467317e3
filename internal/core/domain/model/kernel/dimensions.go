package kernel

import (
	"errors"
	"fmt"

	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Millimeters is the unit of every physical length in the catalog and on orders.
type Millimeters int

// MaxMillimeters bounds a single edge; the widest roll stock handled is 5 m.
const MaxMillimeters Millimeters = 5000

var areaNormalizer = decimal.NewFromInt(10000)

// ErrDimensionsIsNotConstructed is returned by Validate for a zero-value Dimensions.
var ErrDimensionsIsNotConstructed = errs.NewValueIsRequiredError("dimensions must be created via NewDimensions")

// Dimensions is a width/height pair of a print item, page size or sheet.
type Dimensions struct { //nolint:recvcheck //using for validation
	width  Millimeters
	height Millimeters
	guard  guard.ConstructorGuard
}

// NewDimensions validates that both edges lie in [1..MaxMillimeters].
func NewDimensions(width, height Millimeters) (Dimensions, error) {
	d := Dimensions{guard: guard.NewConstructorGuard()}

	if err := errors.Join(d.setWidth(width), d.setHeight(height)); err != nil {
		return Dimensions{}, err
	}
	return d, nil
}

func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsIsNotConstructed)
}

func (d Dimensions) Width() Millimeters {
	return d.width
}

func (d Dimensions) Height() Millimeters {
	return d.height
}

// NormalizedArea is width*height/10000, the area figure the per square meter
// rates of the catalog are quoted against.
func (d Dimensions) NormalizedArea() decimal.Decimal {
	return decimal.NewFromInt(int64(d.width)).
		Mul(decimal.NewFromInt(int64(d.height))).
		Div(areaNormalizer)
}

// Fits reports whether other fits inside d, optionally turned by 90 degrees.
func (d Dimensions) Fits(other Dimensions, rotationAllowed bool) bool {
	if other.width <= d.width && other.height <= d.height {
		return true
	}
	return rotationAllowed && other.height <= d.width && other.width <= d.height
}

func (d Dimensions) IsEqual(other Dimensions) bool {
	return d.width == other.width && d.height == other.height
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%dmm", d.width, d.height)
}

func (d *Dimensions) setWidth(width Millimeters) error {
	if width < 1 || width > MaxMillimeters {
		return errs.NewValueIsOutOfRangeError("width", width, Millimeters(1), MaxMillimeters)
	}
	d.width = width
	return nil
}

func (d *Dimensions) setHeight(height Millimeters) error {
	if height < 1 || height > MaxMillimeters {
		return errs.NewValueIsOutOfRangeError("height", height, Millimeters(1), MaxMillimeters)
	}
	d.height = height
	return nil
}

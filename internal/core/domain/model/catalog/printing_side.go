package catalog

import (
	"fmt"
	"strings"

	"printflow/internal/pkg/errs"
)

// PrintingSide selects single or double sided printing. Double sided adds the
// product's per unit surcharge.
type PrintingSide int

const (
	UnknownSide PrintingSide = iota
	SingleSide
	DoubleSide
)

func ParsePrintingSide(s string) (PrintingSide, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SINGLE":
		return SingleSide, nil
	case "DOUBLE":
		return DoubleSide, nil
	}
	return UnknownSide, errs.NewValueIsInvalidErrorWithCause("printingSide", fmt.Errorf("%q is not SINGLE or DOUBLE", s))
}

func (p PrintingSide) Validate() error {
	if p != SingleSide && p != DoubleSide {
		return errs.NewValueIsInvalidErrorWithCause("printingSide", fmt.Errorf("%d is not a valid printing side", p))
	}
	return nil
}

func (p PrintingSide) String() string {
	switch p {
	case SingleSide:
		return "SINGLE"
	case DoubleSide:
		return "DOUBLE"
	case UnknownSide:
	}
	return "UNKNOWN"
}

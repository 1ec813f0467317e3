package automation

import (
	"fmt"
	"strings"

	"printflow/internal/pkg/errs"
)

// AlgorithmType selects the packing strategy requested from the optimizer.
type AlgorithmType int

const (
	UnknownAlgorithm AlgorithmType = iota
	BottomLeftFill
	Shelf
	MaxRects
	Gang
)

// DefaultAlgorithm is used when a batch request names none.
const DefaultAlgorithm = BottomLeftFill

func getAlgorithmStrings() map[AlgorithmType]string {
	return map[AlgorithmType]string{
		UnknownAlgorithm: "UNKNOWN",
		BottomLeftFill:   "BOTTOM_LEFT_FILL",
		Shelf:            "SHELF",
		MaxRects:         "MAX_RECTS",
		Gang:             "GANG",
	}
}

func AlgorithmTypes() []AlgorithmType {
	return []AlgorithmType{BottomLeftFill, Shelf, MaxRects, Gang}
}

// ParseAlgorithmType maps an empty string to DefaultAlgorithm.
func ParseAlgorithmType(s string) (AlgorithmType, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	if normalized == "" {
		return DefaultAlgorithm, nil
	}
	for _, a := range AlgorithmTypes() {
		if a.String() == normalized {
			return a, nil
		}
	}
	return UnknownAlgorithm, errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a valid algorithm", s))
}

func (a AlgorithmType) Validate() error {
	if a < BottomLeftFill || a > Gang {
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%d is not a valid algorithm", a))
	}
	return nil
}

func (a AlgorithmType) String() string {
	if s, ok := getAlgorithmStrings()[a]; ok {
		return s
	}
	return "UNKNOWN"
}

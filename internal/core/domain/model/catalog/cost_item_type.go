package catalog

import (
	"fmt"
	"strings"

	"printflow/internal/pkg/errs"
)

// CostItemType is a finishing family. A product may offer several values per type.
type CostItemType int

const (
	UnknownCostItemType CostItemType = iota
	Folding
	Lamination
	UV
	Foil
	Die
	Texture
)

func getCostItemTypeStrings() map[CostItemType]string {
	return map[CostItemType]string{
		Folding:    "FOLDING",
		Lamination: "LAMINATION",
		UV:         "UV",
		Foil:       "FOIL",
		Die:        "DIE",
		Texture:    "TEXTURE",
	}
}

// getCostItemFieldNames maps each type to the order form field that carries its selection.
func getCostItemFieldNames() map[CostItemType]string {
	return map[CostItemType]string{
		Folding:    "foldingType",
		Lamination: "laminationType",
		UV:         "uvType",
		Foil:       "foilType",
		Die:        "dieType",
		Texture:    "textureType",
	}
}

// CostItemTypes lists the types in a stable order.
func CostItemTypes() []CostItemType {
	return []CostItemType{Folding, Lamination, UV, Foil, Die, Texture}
}

func ParseCostItemType(s string) (CostItemType, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for t, name := range getCostItemTypeStrings() {
		if name == normalized {
			return t, nil
		}
	}
	return UnknownCostItemType, errs.NewValueIsInvalidErrorWithCause(
		"costItemType",
		fmt.Errorf("%q is not a known cost item type", s),
	)
}

// CostItemTypeFromField resolves an order form field name such as "laminationType".
func CostItemTypeFromField(field string) (CostItemType, bool) {
	for t, name := range getCostItemFieldNames() {
		if name == field {
			return t, true
		}
	}
	return UnknownCostItemType, false
}

func (t CostItemType) Validate() error {
	if _, ok := getCostItemTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("costItemType", fmt.Errorf("%d is not a valid cost item type", t))
	}
	return nil
}

func (t CostItemType) String() string {
	if s, ok := getCostItemTypeStrings()[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// FieldName is the order form field for this type, empty for an invalid type.
func (t CostItemType) FieldName() string {
	return getCostItemFieldNames()[t]
}

package catalog

import (
	"fmt"
	"strings"

	"printflow/internal/pkg/errs"
)

// Applicability tags a catalog option (size, paper, finishing) with the product
// category it pertains to. General options pertain to every category.
type Applicability int

const (
	UnknownApplicability Applicability = iota
	General
	BusinessCard
	Brochure
	Banner
	Leaflet
	Handbill
	Pamphlet
	LetterHead
	InvitationCard
	Envelope
	Book
	Poster
	Flyer
)

var applicabilityNames = []string{
	"UNKNOWN",
	"GENERAL",
	"BUSINESS_CARD",
	"BROCHURE",
	"BANNER",
	"LEAFLET",
	"HANDBILL",
	"PAMPHLET",
	"LETTER_HEAD",
	"INVITATION_CARD",
	"ENVELOPE",
	"BOOK",
	"POSTER",
	"FLYER",
}

// Applicabilities lists every valid tag in declaration order.
func Applicabilities() []Applicability {
	all := make([]Applicability, 0, len(applicabilityNames)-1)
	for i := range applicabilityNames[1:] {
		all = append(all, Applicability(i+1))
	}
	return all
}

func ParseApplicability(s string) (Applicability, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for i, name := range applicabilityNames {
		if i > 0 && name == normalized {
			return Applicability(i), nil
		}
	}
	return UnknownApplicability, errs.NewValueIsInvalidErrorWithCause(
		"applicability",
		fmt.Errorf("%q is not a known applicability", s),
	)
}

func (a Applicability) Validate() error {
	if a <= UnknownApplicability || int(a) >= len(applicabilityNames) {
		return errs.NewValueIsInvalidErrorWithCause("applicability", fmt.Errorf("%d is not a valid applicability", a))
	}
	return nil
}

func (a Applicability) String() string {
	if a <= UnknownApplicability || int(a) >= len(applicabilityNames) {
		return applicabilityNames[0]
	}
	return applicabilityNames[a]
}

// Covers reports whether an option tagged a may be offered on a product of category.
func (a Applicability) Covers(category Applicability) bool {
	return a == General || a == category
}

package access

import (
	"fmt"
	"strings"

	"printflow/internal/pkg/errs"
)

// Role is the caller's permission level.
type Role int

const (
	UnknownRole Role = iota
	Client
	Staff
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "UNKNOWN",
		Client:      "CLIENT",
		Staff:       "STAFF",
		Admin:       "ADMIN",
	}
}

// ParseRole accepts the role names case-insensitively.
func ParseRole(s string) (Role, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for role, name := range getRoleStrings() {
		if role != UnknownRole && name == normalized {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

func (r Role) Validate() error {
	if r != Client && r != Staff && r != Admin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "UNKNOWN"
}

// IsStaffMember is true for roles that work on orders rather than raise them.
func (r Role) IsStaffMember() bool {
	return r == Staff || r == Admin
}

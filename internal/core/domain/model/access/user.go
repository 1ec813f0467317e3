package access

import (
	"errors"
	"strings"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

var ErrUserIsNotConstructed = errors.New("User must be created via RestoreUser")

// User is an account known to the service. Accounts are provisioned by the
// identity provider, so users are only ever restored, never created here.
type User struct {
	id    kernel.UUID
	name  string
	email string
	role  Role
	guard guard.ConstructorGuard
}

func RestoreUser(id kernel.UUID, name, email string, role Role) (*User, error) {
	u := &User{
		name:  strings.TrimSpace(name),
		email: strings.TrimSpace(email),
		guard: guard.NewConstructorGuard(),
	}

	var nameErr error
	if u.name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}

	if err := errors.Join(id.Validate(), nameErr, role.Validate()); err != nil {
		return nil, err
	}
	u.id = id
	u.role = role
	return u, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID { return u.id }
func (u *User) Name() string { return u.name }
func (u *User) Email() string { return u.email }
func (u *User) Role() Role { return u.role }

// CanBeAssigned reports whether orders may be raised to this user.
func (u *User) CanBeAssigned() bool {
	return u.role.IsStaffMember()
}

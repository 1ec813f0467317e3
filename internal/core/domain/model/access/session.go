package access

import (
	"errors"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

var ErrSessionIsNotConstructed = errs.NewValueIsRequiredError("session must be created via NewSession")

// Session is the authenticated caller. It is passed explicitly into every use case
// instead of being read from ambient state.
type Session struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	role   Role
	guard  guard.ConstructorGuard
}

func NewSession(userID kernel.UUID, role Role) (Session, error) {
	s := Session{guard: guard.NewConstructorGuard()}

	if err := errors.Join(s.setUserID(userID), s.setRole(role)); err != nil {
		return Session{}, err
	}
	return s, nil
}

func (s Session) Validate() error {
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

func (s Session) UserID() kernel.UUID {
	return s.userID
}

func (s Session) Role() Role {
	return s.role
}

// Require returns a ForbiddenError for action unless the caller holds one of roles.
func (s Session) Require(action string, roles ...Role) error {
	if err := s.Validate(); err != nil {
		return err
	}
	for _, r := range roles {
		if s.role == r {
			return nil
		}
	}
	return errs.NewForbiddenError(s.role.String(), action)
}

func (s *Session) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.userID = id
	return nil
}

func (s *Session) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	s.role = role
	return nil
}

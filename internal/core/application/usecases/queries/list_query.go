package queries

import (
	"errors"

	"printflow/internal/core/domain/model/access"
	"printflow/internal/pkg/guard"
)

var ErrListQueryIsNotConstructed = errors.New("ListQuery must be created via NewListQuery constructor")

// ListQuery asks for a whole collection. Only the caller varies between the
// list handlers, so they share this query.
type ListQuery struct { //nolint:recvcheck //using for validation
	session access.Session
	guard   guard.ConstructorGuard
}

func NewListQuery(session access.Session) (ListQuery, error) {
	if err := session.Validate(); err != nil {
		return ListQuery{}, err
	}
	return ListQuery{session: session, guard: guard.NewConstructorGuard()}, nil
}

func (q ListQuery) Validate() error {
	return q.guard.Validate(ErrListQueryIsNotConstructed)
}

func (q ListQuery) Session() access.Session { return q.session }

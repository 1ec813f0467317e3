package queries

import (
	"errors"

	"printflow/internal/core/domain/model/access"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/guard"
)

var ErrGetBatchQueryIsNotConstructed = errors.New("GetBatchQuery must be created via NewGetBatchQuery constructor")

// GetBatchQuery fetches one optimizer batch. It also drives the XLSX export.
type GetBatchQuery struct { //nolint:recvcheck //using for validation
	session access.Session
	batchID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetBatchQuery(session access.Session, batchID kernel.UUID) (GetBatchQuery, error) {
	if err := errors.Join(session.Validate(), batchID.Validate()); err != nil {
		return GetBatchQuery{}, err
	}

	return GetBatchQuery{
		session: session,
		batchID: batchID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetBatchQuery) Validate() error {
	return q.guard.Validate(ErrGetBatchQueryIsNotConstructed)
}

func (q GetBatchQuery) Session() access.Session { return q.session }
func (q GetBatchQuery) BatchID() kernel.UUID { return q.batchID }

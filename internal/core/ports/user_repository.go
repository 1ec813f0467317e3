package ports

import (
	"context"

	"printflow/internal/core/domain/model/access"
	"printflow/internal/core/domain/model/kernel"
)

type UserRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*access.User, error)
}

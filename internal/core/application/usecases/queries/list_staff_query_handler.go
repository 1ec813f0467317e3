package queries

import (
	"context"

	"printflow/internal/core/domain/model/access"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ListStaffQueryHandler lists the accounts orders can be assigned to.
type ListStaffQueryHandler struct {
	db *gorm.DB
}

func NewListStaffQueryHandler(db *gorm.DB) ListStaffQueryHandler {
	return ListStaffQueryHandler{db: db}
}

func (h ListStaffQueryHandler) Handle(ctx context.Context, query ListQuery) ([]StaffView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := query.Session().Require("list staff", access.Staff, access.Admin); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, email, role
		FROM users
		WHERE role IN (?, ?)
		ORDER BY name, id`, access.Staff.String(), access.Admin.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collect(rows, func(r rowScanner) (StaffView, error) {
		var (
			v  StaffView
			id uuid.UUID
		)
		err := r.Scan(&id, &v.Name, &v.Email, &v.Role)
		v.ID = id.String()
		return v, err
	})
}

package http

import (
	"github.com/labstack/echo/v4"
)

// ListStaff lists the users orders can be assigned to.
func (s *Server) ListStaff(c echo.Context) error {
	return list(c, s.h.ListStaff.Handle)
}

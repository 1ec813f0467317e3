package http

import (
	"log/slog"

	"printflow/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// BaseURL prefixes every API route.
const BaseURL = "/api/v1"

// RouterConfig carries what the router needs besides the use cases.
type RouterConfig struct {
	JWTSecret string
	// RateLimit in limiter notation, e.g. "100-M". Empty disables limiting.
	RateLimit string
	// BodyLimit in echo notation, e.g. "25M".
	BodyLimit string
	Logger    *slog.Logger
}

// NewRouter assembles the echo instance: health and swagger endpoints in the
// open, the API behind authentication and request validation.
func NewRouter(server servers.ServerInterface, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := LoadSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}
	RegisterSwagger(doc)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.Recover())
	if cfg.Logger != nil {
		e.Use(RequestLogger(cfg.Logger))
	}
	if cfg.BodyLimit != "" {
		e.Use(middleware.BodyLimit(cfg.BodyLimit))
	}
	if cfg.RateLimit != "" {
		limit, limitErr := RateLimit(cfg.RateLimit)
		if limitErr != nil {
			return nil, limitErr
		}
		e.Use(limit)
	}

	e.GET("/health", healthCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(BaseURL, NewAuthenticator(cfg.JWTSecret).Middleware(), validator)
	servers.RegisterHandlers(api, server, "")

	return e, nil
}

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"printflow/internal/core/domain/model/access"
	"printflow/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const sessionKey = "session"

// Claims is the bearer token payload. Subject carries the user id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator turns HS256 bearer tokens into sessions.
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

// Issue signs a token for a user. Used by operators and tests; the service has
// no login flow of its own.
func (a *Authenticator) Issue(userID kernel.UUID, role access.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Parse validates a token and builds the session it stands for.
func (a *Authenticator) Parse(token string) (access.Session, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return access.Session{}, err
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return access.Session{}, fmt.Errorf("subject: %w", err)
	}
	role, err := access.ParseRole(claims.Role)
	if err != nil {
		return access.Session{}, err
	}
	return access.NewSession(userID, role)
}

// Middleware rejects requests without a valid bearer token with 401 and
// stores the session for the handlers.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || strings.TrimSpace(token) == "" {
				return c.JSON(http.StatusUnauthorized, Envelope{Message: "authorization is required"})
			}

			session, err := a.Parse(strings.TrimSpace(token))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, Envelope{Message: "invalid or expired token"})
			}

			c.Set(sessionKey, session)
			return next(c)
		}
	}
}

var errNoSession = errors.New("request has no session")

func sessionOf(c echo.Context) (access.Session, error) {
	session, found := c.Get(sessionKey).(access.Session)
	if !found {
		return access.Session{}, errNoSession
	}
	return session, nil
}

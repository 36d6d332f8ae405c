package middleware

import (
	"errors"
	"net/http"
	"strings"

	"contacts-api/internal/httperr"
	"contacts-api/internal/logger"
	"contacts-api/internal/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const bearerPrefix = "Bearer "

const (
	MsgMissingToken  = "User not authorized or token is missing"
	MsgNotAuthorized = "User not authorized"
)

// TokenVerifier is satisfied by *service.TokenService.
type TokenVerifier interface {
	Verify(token string) (*service.Identity, error)
}

// AuthedHandlerFunc is a handler that only runs for an authenticated caller.
// The identity is handed over explicitly instead of through context storage.
type AuthedHandlerFunc func(c echo.Context, user service.Identity) error

func extractToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", httperr.Unauthorized(MsgMissingToken)
	}
	token := strings.TrimSpace(authHeader[len(bearerPrefix):])
	if token == "" {
		return "", httperr.Unauthorized(MsgMissingToken)
	}
	return token, nil
}

// RequireAuth verifies the bearer token and calls next with the decoded
// identity. Any failure short-circuits with 401 before next runs.
func RequireAuth(v TokenVerifier, next AuthedHandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := extractToken(c)
		if err != nil {
			return err
		}
		user, err := v.Verify(token)
		if err != nil {
			reason := "invalid"
			if errors.Is(err, service.ErrExpired) {
				reason = "expired"
			}
			logger.Debug("token rejected", zap.String("reason", reason), zap.Error(err))
			return httperr.New(http.StatusUnauthorized, MsgNotAuthorized, err)
		}
		return next(c, *user)
	}
}

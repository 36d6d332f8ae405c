// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"net/http"

	"contacts-api/internal/api"
	"contacts-api/internal/database"
	"contacts-api/internal/httperr"
	"contacts-api/internal/service"
	"contacts-api/internal/store"

	"github.com/labstack/echo/v4"
)

const msgInvalidCredentials = "Invalid credentials"

var (
	authenticateUser  = service.AuthenticateUser
	rejectUnknownUser = service.RejectUnknownUser
)

// TokenIssuer is satisfied by *service.TokenService.
type TokenIssuer interface {
	Issue(id service.Identity) (string, error)
}

// LoginHandler exchanges email and password for an access token.
// @Summary     Log in
// @Description Returns an access token valid for 15 minutes
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "Credentials"
// @Success     200  {object} api.LoginResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /login [post]
func LoginHandler(db database.DB, tokens TokenIssuer) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return httperr.New(http.StatusBadRequest, msgInvalidBody, err)
		}
		if err := c.Validate(&req); err != nil {
			return httperr.New(http.StatusBadRequest, msgMissingFields, err)
		}

		ctx := c.Request().Context()
		// unknown email and wrong password must be indistinguishable, in body
		// and in bcrypt time
		user, err := getUserByEmail(ctx, db, req.Email)
		if errors.Is(err, store.ErrNotFound) {
			return httperr.New(http.StatusBadRequest, msgInvalidCredentials, rejectUnknownUser(ctx, req.Password))
		}
		if err != nil {
			return httperr.Server(err)
		}

		if err := authenticateUser(ctx, *user, req.Password); err != nil {
			return httperr.New(http.StatusBadRequest, msgInvalidCredentials, err)
		}

		token, err := tokens.Issue(service.Identity{
			Username: user.Username,
			Email:    user.Email,
			ID:       user.ID,
		})
		if err != nil {
			return httperr.Server(err)
		}
		return c.JSON(http.StatusOK, api.LoginResponse{AccessToken: token})
	}
}

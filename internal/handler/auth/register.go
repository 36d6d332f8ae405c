// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"

	"contacts-api/internal/api"
	"contacts-api/internal/database"
	"contacts-api/internal/httperr"
	"contacts-api/internal/logger"
	"contacts-api/internal/model"
	"contacts-api/internal/service"
	"contacts-api/internal/store"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	msgMissingFields = "Please add all fields"
	msgUserExists    = "User already exists"
	msgInvalidBody   = "Invalid request body"
)

var (
	getUserByEmail = store.GetUserByEmail
	createUser     = store.CreateUser
	hashPassword   = service.HashPassword
)

// RegisterHandler creates a user account.
// @Summary     Register a user
// @Description Creates a user with a bcrypt-hashed password. Emails are unique.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.RegisterRequest true "New user"
// @Success     201  {object} api.RegisterResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return httperr.New(http.StatusBadRequest, msgInvalidBody, err)
		}
		if err := c.Validate(&req); err != nil {
			return httperr.New(http.StatusBadRequest, msgMissingFields, err)
		}

		ctx := c.Request().Context()
		if _, err := getUserByEmail(ctx, db, req.Email); err == nil {
			return httperr.Validation(msgUserExists)
		} else if !errors.Is(err, store.ErrNotFound) {
			return httperr.Server(err)
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return httperr.Server(err)
		}

		user, err := createUser(ctx, db, &model.User{
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: hash,
		})
		if errors.Is(err, store.ErrDuplicateEmail) {
			return httperr.New(http.StatusBadRequest, msgUserExists, err)
		}
		if err != nil {
			return httperr.Server(err)
		}

		logger.Info("user registered", zap.String("user_id", user.ID))
		return c.JSON(http.StatusCreated, api.RegisterResponse{ID: user.ID, Email: user.Email})
	}
}

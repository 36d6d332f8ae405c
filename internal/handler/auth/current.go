package auth

import (
	"net/http"

	"contacts-api/internal/service"

	"github.com/labstack/echo/v4"
)

// CurrentHandler returns the identity carried by the caller's token.
// @Summary     Current user
// @Tags        auth
// @Produce     json
// @Success     200 {object} service.Identity
// @Failure     401 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /current [get]
func CurrentHandler(c echo.Context, user service.Identity) error {
	return c.JSON(http.StatusOK, user)
}

package contacts

import (
	"errors"
	"net/http"

	"contacts-api/internal/api"
	"contacts-api/internal/database"
	"contacts-api/internal/httperr"
	"contacts-api/internal/middleware"
	"contacts-api/internal/service"
	"contacts-api/internal/store"

	"github.com/labstack/echo/v4"
)

// DeleteHandler removes a contact.
// @Summary     Delete a contact
// @Tags        contacts
// @Produce     json
// @Param       id  path     string true "Contact ID"
// @Success     200 {object} api.MessageResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /contacts/{id} [delete]
func DeleteHandler(db database.DB) middleware.AuthedHandlerFunc {
	return func(c echo.Context, _ service.Identity) error {
		id, err := contactID(c)
		if err != nil {
			return err
		}
		err = deleteContact(c.Request().Context(), db, id)
		if errors.Is(err, store.ErrNotFound) {
			return httperr.New(http.StatusNotFound, msgNotFound, err)
		}
		if err != nil {
			return httperr.Server(err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: msgRemoved})
	}
}

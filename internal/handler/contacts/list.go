package contacts

import (
	"net/http"

	"contacts-api/internal/database"
	"contacts-api/internal/httperr"
	"contacts-api/internal/middleware"
	"contacts-api/internal/service"

	"github.com/labstack/echo/v4"
)

// ListHandler returns every contact.
// @Summary     List contacts
// @Tags        contacts
// @Produce     json
// @Success     200 {array}  model.Contact
// @Failure     401 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /contacts [get]
func ListHandler(db database.DB) middleware.AuthedHandlerFunc {
	return func(c echo.Context, _ service.Identity) error {
		list, err := listContacts(c.Request().Context(), db)
		if err != nil {
			return httperr.Server(err)
		}
		return c.JSON(http.StatusOK, list)
	}
}

// GetHandler returns one contact.
// @Summary     Get a contact
// @Tags        contacts
// @Produce     json
// @Param       id  path     string true "Contact ID"
// @Success     200 {object} model.Contact
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /contacts/{id} [get]
func GetHandler(db database.DB) middleware.AuthedHandlerFunc {
	return func(c echo.Context, _ service.Identity) error {
		id, err := contactID(c)
		if err != nil {
			return err
		}
		contact, err := loadContact(c, db, id)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, contact)
	}
}

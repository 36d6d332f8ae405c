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

// UpdateHandler merges the fields present in the body into the stored contact.
// @Summary     Update a contact
// @Tags        contacts
// @Accept      json
// @Produce     json
// @Param       id   path     string                   true "Contact ID"
// @Param       body body     api.UpdateContactRequest true "Fields to change"
// @Success     200  {object} model.Contact
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /contacts/{id} [put]
func UpdateHandler(db database.DB) middleware.AuthedHandlerFunc {
	return func(c echo.Context, _ service.Identity) error {
		id, err := contactID(c)
		if err != nil {
			return err
		}
		contact, err := loadContact(c, db, id)
		if err != nil {
			return err
		}

		var req api.UpdateContactRequest
		if err := c.Bind(&req); err != nil {
			return httperr.New(http.StatusBadRequest, msgInvalidBody, err)
		}
		if req.Name != nil {
			contact.Name = *req.Name
		}
		if req.Email != nil {
			contact.Email = *req.Email
		}
		if req.Phone != nil {
			contact.Phone = *req.Phone
		}

		updated, err := updateContact(c.Request().Context(), db, contact)
		if errors.Is(err, store.ErrNotFound) {
			// removed between the read and the write
			return httperr.New(http.StatusNotFound, msgNotFound, err)
		}
		if err != nil {
			return httperr.Server(err)
		}
		return c.JSON(http.StatusOK, updated)
	}
}

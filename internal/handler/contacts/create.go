package contacts

import (
	"net/http"

	"contacts-api/internal/api"
	"contacts-api/internal/database"
	"contacts-api/internal/httperr"
	"contacts-api/internal/logger"
	"contacts-api/internal/middleware"
	"contacts-api/internal/model"
	"contacts-api/internal/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CreateHandler stores a new contact. name, email and phone are all required.
// @Summary     Create a contact
// @Tags        contacts
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateContactRequest true "Contact"
// @Success     200  {object} model.Contact
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /contacts [post]
func CreateHandler(db database.DB) middleware.AuthedHandlerFunc {
	return func(c echo.Context, user service.Identity) error {
		var req api.CreateContactRequest
		if err := c.Bind(&req); err != nil {
			return httperr.New(http.StatusBadRequest, msgInvalidBody, err)
		}
		if err := c.Validate(&req); err != nil {
			return httperr.New(http.StatusBadRequest, msgMissingFields, err)
		}

		contact, err := createContact(c.Request().Context(), db, &model.Contact{
			Name:  req.Name,
			Email: req.Email,
			Phone: req.Phone,
		})
		if err != nil {
			return httperr.Server(err)
		}
		logger.Debug("contact created", zap.String("contact_id", contact.ID), zap.String("user_id", user.ID))
		return c.JSON(http.StatusOK, contact)
	}
}

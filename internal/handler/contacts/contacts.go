// Package contacts serves the /api/contacts resource. Every handler runs
// behind middleware.RequireAuth.
package contacts

import (
	"errors"
	"net/http"

	"contacts-api/internal/database"
	"contacts-api/internal/httperr"
	"contacts-api/internal/model"
	"contacts-api/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	msgNotFound      = "Contact not found"
	msgMissingFields = "Please add all fields"
	msgInvalidBody   = "Invalid request body"
	msgRemoved       = "Contact removed"
)

var (
	listContacts   = store.ListContacts
	getContactByID = store.GetContactByID
	createContact  = store.CreateContact
	updateContact  = store.UpdateContact
	deleteContact  = store.DeleteContact
)

// contactID returns the path id, or 404 when it cannot name any record.
func contactID(c echo.Context) (string, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return "", httperr.New(http.StatusNotFound, msgNotFound, err)
	}
	return id.String(), nil
}

func loadContact(c echo.Context, db database.DB, id string) (*model.Contact, error) {
	contact, err := getContactByID(c.Request().Context(), db, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, httperr.New(http.StatusNotFound, msgNotFound, err)
	}
	if err != nil {
		return nil, httperr.Server(err)
	}
	return contact, nil
}

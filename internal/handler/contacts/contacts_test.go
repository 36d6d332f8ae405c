package contacts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"contacts-api/internal/api"
	"contacts-api/internal/database"
	"contacts-api/internal/httperr"
	"contacts-api/internal/model"
	"contacts-api/internal/service"
	"contacts-api/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var caller = service.Identity{Username: "alice", Email: "a@x.io", ID: uuid.NewString()}

type structValidator struct{ v *validator.Validate }

func (s structValidator) Validate(i any) error { return s.v.Struct(i) }

// memContacts stands in for the contacts table.
type memContacts struct {
	rows map[string]model.Contact
	seq  int
}

func installMem(t *testing.T) *memContacts {
	t.Helper()
	m := &memContacts{rows: map[string]model.Contact{}}

	prevList, prevGet, prevCreate, prevUpdate, prevDelete := listContacts, getContactByID, createContact, updateContact, deleteContact
	t.Cleanup(func() {
		listContacts, getContactByID, createContact, updateContact, deleteContact = prevList, prevGet, prevCreate, prevUpdate, prevDelete
	})

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	listContacts = func(context.Context, database.DB) ([]model.Contact, error) {
		out := []model.Contact{}
		for _, c := range m.rows {
			out = append(out, c)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
		return out, nil
	}
	getContactByID = func(_ context.Context, _ database.DB, id string) (*model.Contact, error) {
		c, ok := m.rows[id]
		if !ok {
			return nil, fmt.Errorf("GetContactByID: %w", store.ErrNotFound)
		}
		return &c, nil
	}
	createContact = func(_ context.Context, _ database.DB, c *model.Contact) (*model.Contact, error) {
		m.seq++
		c.ID = uuid.NewString()
		c.CreatedAt = base.Add(time.Duration(m.seq) * time.Second)
		c.UpdatedAt = c.CreatedAt
		m.rows[c.ID] = *c
		return c, nil
	}
	updateContact = func(_ context.Context, _ database.DB, c *model.Contact) (*model.Contact, error) {
		old, ok := m.rows[c.ID]
		if !ok {
			return nil, fmt.Errorf("UpdateContact: %w", store.ErrNotFound)
		}
		c.CreatedAt = old.CreatedAt
		c.UpdatedAt = old.UpdatedAt.Add(time.Minute)
		m.rows[c.ID] = *c
		return c, nil
	}
	deleteContact = func(_ context.Context, _ database.DB, id string) error {
		if _, ok := m.rows[id]; !ok {
			return fmt.Errorf("DeleteContact: %w", store.ErrNotFound)
		}
		delete(m.rows, id)
		return nil
	}
	return m
}

func newCtx(method, id, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = structValidator{v: validator.New()}
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return c, rec
}

func requireAppErr(t *testing.T, err error, status int, msg string) {
	t.Helper()
	var appErr *httperr.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, status, appErr.Status)
	require.Equal(t, msg, appErr.Message)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestListEmptyIsArray(t *testing.T) {
	installMem(t)
	c, rec := newCtx(http.MethodGet, "", "")
	require.NoError(t, ListHandler(nil)(c, caller))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreateRequiresAllFields(t *testing.T) {
	m := installMem(t)
	for _, body := range []string{
		`{"name":"A","email":"a@x"}`,
		`{"name":"A","phone":"1"}`,
		`{"email":"a@x","phone":"1"}`,
		`{}`,
	} {
		c, _ := newCtx(http.MethodPost, "", body)
		requireAppErr(t, CreateHandler(nil)(c, caller), http.StatusBadRequest, msgMissingFields)
	}
	require.Empty(t, m.rows)
}

func TestCreateBindError(t *testing.T) {
	installMem(t)
	c, _ := newCtx(http.MethodPost, "", `{"name":`)
	requireAppErr(t, CreateHandler(nil)(c, caller), http.StatusBadRequest, msgInvalidBody)
}

func TestContactRoundTrip(t *testing.T) {
	m := installMem(t)

	c, rec := newCtx(http.MethodPost, "", `{"name":"A","email":"a@x","phone":"1"}`)
	require.NoError(t, CreateHandler(nil)(c, caller))
	require.Equal(t, http.StatusOK, rec.Code)
	created := decode[model.Contact](t, rec)
	require.NotEmpty(t, created.ID)
	require.Len(t, m.rows, 1)

	c, rec = newCtx(http.MethodGet, created.ID, "")
	require.NoError(t, GetHandler(nil)(c, caller))
	got := decode[model.Contact](t, rec)
	require.Equal(t, "A", got.Name)
	require.Equal(t, "a@x", got.Email)
	require.Equal(t, "1", got.Phone)

	c, rec = newCtx(http.MethodPut, created.ID, `{"phone":"2"}`)
	require.NoError(t, UpdateHandler(nil)(c, caller))
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[model.Contact](t, rec)
	require.Equal(t, "2", updated.Phone)
	require.Equal(t, "A", updated.Name, "absent fields are kept")
	require.Equal(t, "a@x", updated.Email)

	c, rec = newCtx(http.MethodGet, created.ID, "")
	require.NoError(t, GetHandler(nil)(c, caller))
	require.Equal(t, "2", decode[model.Contact](t, rec).Phone)

	c, rec = newCtx(http.MethodGet, "", "")
	require.NoError(t, ListHandler(nil)(c, caller))
	require.Len(t, decode[[]model.Contact](t, rec), 1)

	c, rec = newCtx(http.MethodDelete, created.ID, "")
	require.NoError(t, DeleteHandler(nil)(c, caller))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, api.MessageResponse{Message: "Contact removed"}, decode[api.MessageResponse](t, rec))
	require.Empty(t, m.rows)

	c, _ = newCtx(http.MethodGet, created.ID, "")
	requireAppErr(t, GetHandler(nil)(c, caller), http.StatusNotFound, msgNotFound)
}

func TestNotFound(t *testing.T) {
	installMem(t)
	missing := uuid.NewString()

	for name, h := range map[string]func(echo.Context, service.Identity) error{
		"get":    GetHandler(nil),
		"update": UpdateHandler(nil),
		"delete": DeleteHandler(nil),
	} {
		t.Run(name+" absent", func(t *testing.T) {
			c, _ := newCtx(http.MethodGet, missing, `{"phone":"2"}`)
			requireAppErr(t, h(c, caller), http.StatusNotFound, msgNotFound)
		})
		t.Run(name+" malformed id", func(t *testing.T) {
			c, _ := newCtx(http.MethodGet, "not-a-uuid", `{"phone":"2"}`)
			requireAppErr(t, h(c, caller), http.StatusNotFound, msgNotFound)
		})
	}
}

func TestUpdateRaceWithDelete(t *testing.T) {
	m := installMem(t)
	c, rec := newCtx(http.MethodPost, "", `{"name":"A","email":"a@x","phone":"1"}`)
	require.NoError(t, CreateHandler(nil)(c, caller))
	id := decode[model.Contact](t, rec).ID

	updateContact = func(context.Context, database.DB, *model.Contact) (*model.Contact, error) {
		delete(m.rows, id)
		return nil, store.ErrNotFound
	}
	c, _ = newCtx(http.MethodPut, id, `{"name":"B"}`)
	requireAppErr(t, UpdateHandler(nil)(c, caller), http.StatusNotFound, msgNotFound)
}

func TestStoreFailures(t *testing.T) {
	installMem(t)
	boom := errors.New("conn reset")
	listContacts = func(context.Context, database.DB) ([]model.Contact, error) { return nil, boom }
	getContactByID = func(context.Context, database.DB, string) (*model.Contact, error) { return nil, boom }
	createContact = func(context.Context, database.DB, *model.Contact) (*model.Contact, error) { return nil, boom }
	deleteContact = func(context.Context, database.DB, string) error { return boom }

	id := uuid.NewString()
	c, _ := newCtx(http.MethodGet, "", "")
	requireAppErr(t, ListHandler(nil)(c, caller), http.StatusInternalServerError, "Internal server error")
	c, _ = newCtx(http.MethodGet, id, "")
	requireAppErr(t, GetHandler(nil)(c, caller), http.StatusInternalServerError, "Internal server error")
	c, _ = newCtx(http.MethodPost, "", `{"name":"A","email":"a@x","phone":"1"}`)
	requireAppErr(t, CreateHandler(nil)(c, caller), http.StatusInternalServerError, "Internal server error")
	c, _ = newCtx(http.MethodDelete, id, "")
	requireAppErr(t, DeleteHandler(nil)(c, caller), http.StatusInternalServerError, "Internal server error")
}

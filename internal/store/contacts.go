package store

import (
	"context"
	"fmt"

	"contacts-api/internal/database"
	"contacts-api/internal/model"

	"github.com/google/uuid"
)

func ListContacts(ctx context.Context, db database.DB) ([]model.Contact, error) {
	rows, err := db.Query(ctx,
		`SELECT id::text, name, email, phone, created_at, updated_at
		 FROM contacts ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListContacts: %w", err)
	}
	defer rows.Close()

	contacts := []model.Contact{}
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("ListContacts scan: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListContacts rows: %w", err)
	}
	return contacts, nil
}

func GetContactByID(ctx context.Context, db database.DB, id string) (*model.Contact, error) {
	row := db.QueryRow(ctx,
		`SELECT id::text, name, email, phone, created_at, updated_at
		 FROM contacts WHERE id = $1`,
		id,
	)
	c := &model.Contact{}
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, fmt.Errorf("GetContactByID: %w", notFound(err))
	}
	return c, nil
}

func CreateContact(ctx context.Context, db database.DB, c *model.Contact) (*model.Contact, error) {
	c.ID = uuid.NewString()
	row := db.QueryRow(ctx,
		`INSERT INTO contacts (id, name, email, phone)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		c.ID,
		c.Name,
		c.Email,
		c.Phone,
	)
	if err := row.Scan(&c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateContact: %w", err)
	}
	return c, nil
}

// UpdateContact overwrites name, email and phone of the stored record and
// returns it as persisted.
func UpdateContact(ctx context.Context, db database.DB, c *model.Contact) (*model.Contact, error) {
	row := db.QueryRow(ctx,
		`UPDATE contacts SET name = $1, email = $2, phone = $3, updated_at = now()
		 WHERE id = $4
		 RETURNING created_at, updated_at`,
		c.Name,
		c.Email,
		c.Phone,
		c.ID,
	)
	if err := row.Scan(&c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, fmt.Errorf("UpdateContact: %w", notFound(err))
	}
	return c, nil
}

func DeleteContact(ctx context.Context, db database.DB, id string) error {
	tag, err := db.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteContact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteContact: %w", ErrNotFound)
	}
	return nil
}

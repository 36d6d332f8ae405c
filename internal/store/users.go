package store

import (
	"context"
	"fmt"

	"contacts-api/internal/database"
	"contacts-api/internal/model"

	"github.com/google/uuid"
)

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id::text, username, email, password_hash, created_at, updated_at
		 FROM users WHERE email = $1`,
		email,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", notFound(err))
	}
	return u, nil
}

// CreateUser assigns a fresh id and persists u. A concurrent registration
// with the same email surfaces as ErrDuplicateEmail.
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	u.ID = uuid.NewString()
	row := db.QueryRow(ctx,
		`INSERT INTO users (id, username, email, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		u.ID,
		u.Username,
		u.Email,
		u.PasswordHash,
	)
	if err := row.Scan(&u.CreatedAt, &u.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("CreateUser: %w", ErrDuplicateEmail)
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

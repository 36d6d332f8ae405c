// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"
	"sync"

	"contacts-api/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any failed password check.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthenticateUser checks password against the user's stored hash.
func AuthenticateUser(_ context.Context, user model.User, password string) error {
	if user.PasswordHash == "" {
		return RejectUnknownUser(context.Background(), password)
	}
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// dummyHash is compared against when there is no stored hash. It is built
// with bcrypt directly so test seams on HashPassword cannot replace it.
var dummyHash = sync.OnceValue(func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("no account"), PasswordCost)
	if err != nil {
		panic(err)
	}
	return h
})

// RejectUnknownUser performs the same bcrypt work as a real password check
// and always fails, so a missing account costs as much time as a wrong password.
func RejectUnknownUser(_ context.Context, password string) error {
	_ = bcryptCompareHashAndPassword(dummyHash(), []byte(password))
	return ErrInvalidCredentials
}

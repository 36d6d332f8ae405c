package service

import (
	"context"
	"errors"
	"testing"

	"contacts-api/internal/model"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
}

func TestHashPassword(t *testing.T) {
	t.Cleanup(restoreGlobals)
	pwd := "secret"
	hash, err := HashPassword(pwd)
	require.NoError(t, err)
	require.NotEqual(t, pwd, hash)
	require.NoError(t, ComparePassword(hash, pwd))
	require.Error(t, ComparePassword(hash, "Secret"))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, 10, cost)

	again, err := HashPassword(pwd)
	require.NoError(t, err)
	require.NotEqual(t, hash, again, "salt must differ per call")

	bcryptGenerateFromPassword = func(_ []byte, _ int) ([]byte, error) {
		return nil, errors.New("gen")
	}
	_, err = HashPassword(pwd)
	require.Error(t, err)
}

func TestAuthenticateUser(t *testing.T) {
	t.Cleanup(restoreGlobals)
	hash, err := HashPassword("pw")
	require.NoError(t, err)
	u := model.User{PasswordHash: hash}
	require.NoError(t, AuthenticateUser(context.Background(), u, "pw"))
	require.ErrorIs(t, AuthenticateUser(context.Background(), u, "bad"), ErrInvalidCredentials)
	require.ErrorIs(t, AuthenticateUser(context.Background(), model.User{}, ""), ErrInvalidCredentials)
}

func TestRejectUnknownUserPaysFullCost(t *testing.T) {
	t.Cleanup(restoreGlobals)
	var compared []byte
	bcryptCompareHashAndPassword = func(hash, password []byte) error {
		compared = hash
		return bcrypt.CompareHashAndPassword(hash, password)
	}

	require.ErrorIs(t, RejectUnknownUser(context.Background(), "pw"), ErrInvalidCredentials)
	require.NotEmpty(t, compared)
	cost, err := bcrypt.Cost(compared)
	require.NoError(t, err)
	require.Equal(t, PasswordCost, cost)

	compared = nil
	require.ErrorIs(t, AuthenticateUser(context.Background(), model.User{}, "pw"), ErrInvalidCredentials)
	require.NotEmpty(t, compared, "a user without a hash still runs a compare")
}

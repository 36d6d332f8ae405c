package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var alice = Identity{Username: "alice", Email: "alice@example.com", ID: "0b6f5c2e-3a51-4d7c-9f1e-2d8a4f6b7c90"}

func TestIssueAndVerify(t *testing.T) {
	svc := NewTokenService([]byte("s"))
	tok, err := svc.Issue(alice)
	require.NoError(t, err)

	got, err := svc.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, alice, *got)
}

func TestIssuedClaimsLayout(t *testing.T) {
	issued := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc := NewTokenService([]byte("s"), WithClock(func() time.Time { return issued }))
	tok, err := svc.Issue(alice)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)

	user, ok := claims["user"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "alice", user["username"])
	require.Equal(t, "alice@example.com", user["email"])
	require.Equal(t, alice.ID, user["id"])
	require.Equal(t, alice.ID, claims["sub"])
	require.EqualValues(t, issued.Unix(), claims["iat"])
	require.EqualValues(t, issued.Add(15*time.Minute).Unix(), claims["exp"])
}

func TestVerifyExpired(t *testing.T) {
	past := NewTokenService([]byte("s"), WithClock(func() time.Time { return time.Now().Add(-16 * time.Minute) }))
	tok, err := past.Issue(alice)
	require.NoError(t, err)

	_, err = NewTokenService([]byte("s")).Verify(tok)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerifyStillValidJustBeforeExpiry(t *testing.T) {
	past := NewTokenService([]byte("s"), WithClock(func() time.Time { return time.Now().Add(-14 * time.Minute) }))
	tok, err := past.Issue(alice)
	require.NoError(t, err)

	_, err = NewTokenService([]byte("s")).Verify(tok)
	require.NoError(t, err)
}

func TestVerifyRejects(t *testing.T) {
	svc := NewTokenService([]byte("s"))

	t.Run("wrong secret", func(t *testing.T) {
		tok, err := NewTokenService([]byte("other")).Issue(alice)
		require.NoError(t, err)
		_, err = svc.Verify(tok)
		require.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("alg none", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user": map[string]string{"id": "x"}}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = svc.Verify(tok)
		require.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Verify("not-a-token")
		require.ErrorIs(t, err, ErrMalformedToken)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := svc.Verify("")
		require.ErrorIs(t, err, ErrMalformedToken)
	})

	t.Run("no expiry", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user": map[string]string{"id": "x"}}).
			SignedString([]byte("s"))
		require.NoError(t, err)
		_, err = svc.Verify(tok)
		require.ErrorIs(t, err, ErrMalformedToken)
	})
}

func TestMissingSecret(t *testing.T) {
	svc := NewTokenService(nil)
	_, err := svc.Issue(alice)
	require.Error(t, err)
	_, err = svc.Verify("x.y.z")
	require.Error(t, err)
}

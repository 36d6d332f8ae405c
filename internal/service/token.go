// File: internal/service/token.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenTTL is how long an issued access token stays valid.
const AccessTokenTTL = 15 * time.Minute

var (
	ErrInvalidSignature = errors.New("token signature is invalid")
	ErrExpired          = errors.New("token has expired")
	ErrMalformedToken   = errors.New("token is malformed")
)

// Identity is the user data carried inside an access token.
type Identity struct {
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
	ID       string `json:"id" example:"5b0c3d55-7a8e-4a38-9a3e-1f4a2f0b9f11"`
}

// Claims nests the identity under "user" next to the registered claims.
type Claims struct {
	User Identity `json:"user"`
	jwt.RegisteredClaims
}

type TokenService struct {
	secret []byte
	now    func() time.Time
}

type TokenOption func(*TokenService)

// WithClock replaces time.Now for both issuing and verifying.
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) { s.now = now }
}

func NewTokenService(secret []byte, opts ...TokenOption) *TokenService {
	s := &TokenService{secret: secret, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue signs an HS256 token for id that expires AccessTokenTTL from now.
func (s *TokenService) Issue(id Identity) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("token secret not set")
	}
	now := s.now()
	claims := Claims{
		User: id,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded identity.
func (s *TokenService) Verify(tokenString string) (*Identity, error) {
	if len(s.secret) == 0 {
		return nil, errors.New("token secret not set")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, ErrInvalidSignature
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	case !token.Valid:
		return nil, ErrMalformedToken
	}
	return &claims.User, nil
}

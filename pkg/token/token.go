// Package token issues and verifies the HS256-signed auth tokens that
// carry a user's email between login and the borrow/return endpoints.
package token

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrExpired means the token carried an exp claim that has passed.
	ErrExpired = errors.New("token has expired")
	// ErrInvalid covers malformed tokens, bad signatures and unexpected
	// signing algorithms.
	ErrInvalid = errors.New("invalid token")
)

type Service struct {
	secret []byte
}

func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Issue signs a token whose only claim is the user's email. No expiry
// claim is set; tokens stay valid until the secret rotates.
func (s *Service) Issue(email string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": email})
	return t.SignedString(s.secret)
}

// Verify checks the signature and, when present, the exp claim, and
// returns the embedded email.
func (s *Service) Verify(tok string) (string, error) {
	parsed, err := jwt.Parse(tok, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpired
		}
		return "", ErrInvalid
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalid
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", ErrInvalid
	}
	return email, nil
}

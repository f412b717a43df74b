package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/vlasenka/pausebot/internal/models"
)

const tokenDuration = 24 * time.Hour

// AuthToken creates and verifies admin session tokens
type AuthToken struct {
	key []byte
}

// NewAuthToken creates new AuthToken with signing key
func NewAuthToken(key []byte) *AuthToken {
	return &AuthToken{key: key}
}

type claims struct {
	Login string `json:"login"`
	jwt.RegisteredClaims
}

// CreateToken issues a signed token for the login
func (at *AuthToken) CreateToken(login string) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Login: login,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		},
	})

	return token.SignedString(at.key)
}

// VerifyToken parses and validates the token string
func (at *AuthToken) VerifyToken(tokenString string) (*models.TokenPayload, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return at.key, nil
	})
	if err != nil {
		return nil, models.ErrInvalidCredentials
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return nil, models.ErrInvalidCredentials
	}

	return &models.TokenPayload{Login: c.Login}, nil
}

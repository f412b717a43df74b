package service

import (
	"github.com/vlasenka/pausebot/config"
	"github.com/vlasenka/pausebot/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer creates admin session tokens
type TokenIssuer interface {
	CreateToken(login string) (string, error)
}

// AuthService checks admin credentials and issues tokens
type AuthService struct {
	token TokenIssuer
	cfg   *config.Config
}

// NewAuthService creates new AuthService instance
func NewAuthService(token TokenIssuer, cfg *config.Config) *AuthService {
	return &AuthService{
		token: token,
		cfg:   cfg,
	}
}

// Login verifies the admin login and password against the configured
// bcrypt hash and returns a session token
func (as *AuthService) Login(login, password string) (string, error) {
	if login != as.cfg.AdminLogin {
		return "", models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(as.cfg.AdminPassHash), []byte(password)); err != nil {
		return "", models.ErrInvalidCredentials
	}

	return as.token.CreateToken(login)
}

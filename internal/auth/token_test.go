package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vlasenka/pausebot/internal/models"
)

func TestAuthToken_RoundTrip(t *testing.T) {
	at := NewAuthToken([]byte("0123456789abcdef"))

	token, err := at.CreateToken("admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	payload, err := at.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", payload.Login)
}

func TestAuthToken_VerifyToken_Garbage(t *testing.T) {
	at := NewAuthToken([]byte("0123456789abcdef"))

	_, err := at.VerifyToken("not.a.token")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestAuthToken_VerifyToken_WrongKey(t *testing.T) {
	issuer := NewAuthToken([]byte("0123456789abcdef"))
	verifier := NewAuthToken([]byte("fedcba9876543210"))

	token, err := issuer.CreateToken("admin")
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

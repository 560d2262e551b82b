package utils

import (
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"financas-api/models"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "test-secret")

	usuario := &models.Usuario{
		ID:        "507f1f77bcf86cd799439011",
		Email:     "ana@example.com",
		Nome:      "Ana",
		Sobrenome: "Silva",
	}

	token, err := GenerateToken(usuario)
	assert.NoError(t, err)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, usuario.ID, claims.ID)
	assert.Equal(t, usuario.Email, claims.Email)
	assert.Equal(t, usuario.Nome, claims.Nome)
	assert.Equal(t, usuario.Sobrenome, claims.Sobrenome)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "test-secret")

	claims := &Claims{
		ID: "507f1f77bcf86cd799439011",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(os.Getenv("TOKEN_SECRET")))
	assert.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "test-secret")
	token, err := GenerateToken(&models.Usuario{ID: "507f1f77bcf86cd799439011"})
	assert.NoError(t, err)

	t.Setenv("TOKEN_SECRET", "outro")
	_, err = ParseToken(token)
	assert.Error(t, err)
}

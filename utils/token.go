package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"financas-api/models"
)

const tokenDuration = 30 * time.Minute

// Claims is the bearer token payload. Everything a handler needs about the
// caller travels in the token; there is no session lookup per request.
type Claims struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
	jwt.RegisteredClaims
}

func GenerateToken(usuario *models.Usuario) (string, error) {
	claims := &Claims{
		ID:        usuario.ID,
		Email:     usuario.Email,
		Nome:      usuario.Nome,
		Sobrenome: usuario.Sobrenome,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("TOKEN_SECRET")))
}

func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("TOKEN_SECRET")), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

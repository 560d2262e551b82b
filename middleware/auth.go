package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"financas-api/utils"
)

const usuarioKey = "usuario"

// AuthMiddleware gates a route group behind a bearer token. A missing token
// is a 401, a token that fails verification (bad signature, expired) is a
// 403; both answer with the message the clients branch on.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := ""
		if parts := strings.SplitN(header, " ", 2); len(parts) == 2 {
			token = parts[1]
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token não informado."})
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Token expirado."})
			return
		}

		c.Set(usuarioKey, claims)
		c.Next()
	}
}

// CurrentUsuario returns the claims stored by AuthMiddleware. Only valid on
// routes behind it.
func CurrentUsuario(c *gin.Context) *utils.Claims {
	return c.MustGet(usuarioKey).(*utils.Claims)
}

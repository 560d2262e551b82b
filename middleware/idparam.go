package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"financas-api/utils"
)

// ValidateIDParam rejects requests whose :id path parameter is not a
// 24-character hex identifier, before any store is touched.
func ValidateIDParam() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !utils.IsValidObjectID(c.Param("id")) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Identificador inválido."})
			return
		}
		c.Next()
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"financas-api/services"
)

// respondError converts a service failure into the wire contract: business
// failures are 400 with their message, anything else is a 500. Nothing
// escapes unconverted.
func respondError(c *gin.Context, err error) {
	if services.IsBusinessError(err) {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
}

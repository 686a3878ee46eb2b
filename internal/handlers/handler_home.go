package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHealth reports service liveness.
func GetHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

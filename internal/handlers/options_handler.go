package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetOptions handles GET /api/options
// Returns the dropdown choices for task forms.
func (h *Handler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, h.options.All())
}

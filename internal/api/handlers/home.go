package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": "Team Todo API running",
	})
}

// Health godoc
// @Summary Liveness probe
// @Produce json
// @Success 200 {object} object{ok=boolean}
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) DBTest(c *gin.Context) {
	var result int
	if err := h.db.QueryRow("SELECT 1 AS result").Scan(&result); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "db": result})
}

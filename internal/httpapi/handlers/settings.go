package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/motiondesk/server/internal/chat"
)

// GetSettings returns the caller's last-used business settings, or null when
// none were remembered.
func (h *Handler) GetSettings(c *gin.Context) {
	uid, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	settings, err := h.Settings.GetSettings(c.Request.Context(), uid)
	if err != nil {
		log.Printf("[GetSettings] uid=%s err=%v", uid, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

func (h *Handler) PutSettings(c *gin.Context) {
	uid, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var settings chat.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed request"})
		return
	}

	if err := h.Settings.SaveSettings(c.Request.Context(), uid, &settings); err != nil {
		log.Printf("[PutSettings] uid=%s err=%v", uid, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

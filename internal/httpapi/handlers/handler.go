package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/motiondesk/server/internal/chat"
	"github.com/motiondesk/server/internal/events"
	"github.com/motiondesk/server/internal/httpapi/middleware"
	"github.com/motiondesk/server/internal/store/redisstore"
)

type Handler struct {
	ChatSvc  *chat.Service
	Settings *redisstore.Store
	Events   *events.Publisher // nil when eventing is disabled
}

func NewHandler(svc *chat.Service, settings *redisstore.Store, pub *events.Publisher) *Handler {
	return &Handler{ChatSvc: svc, Settings: settings, Events: pub}
}

func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func userIDFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(middleware.UserIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

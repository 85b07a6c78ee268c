package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/motiondesk/server/internal/auth"
	"github.com/motiondesk/server/internal/config"
	"github.com/motiondesk/server/internal/httpapi/handlers"
	"github.com/motiondesk/server/internal/httpapi/middleware"
)

func NewRouter(cfg config.Config, h *handlers.Handler, resolver auth.Resolver) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	r.GET("/ping", h.Ping)

	api := r.Group("/api")

	// The exchange itself carries no identity; the caller attaches settings
	// and history to every request.
	api.POST("/chat", h.Converse)

	// Listing degrades to an empty result without a valid credential.
	api.GET("/chats", middleware.AuthOptional(resolver), h.ListChats)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(resolver))
	authed.POST("/chats", h.SaveChat)
	authed.GET("/chats/:id", h.GetChat)
	authed.GET("/settings", h.GetSettings)
	authed.PUT("/settings", h.PutSettings)

	return r
}

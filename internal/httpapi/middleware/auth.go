package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/motiondesk/server/internal/auth"
)

// UserIDKey is where the resolved user id lives in the gin context.
const UserIDKey = "current_user_id"

// AuthRequired resolves the bearer token and aborts with a uniform 401 when
// it cannot. The body is identical for every failure mode so callers learn
// nothing about why a credential was rejected.
func AuthRequired(resolver auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.TokenFromHeader(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		uid, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(UserIDKey, uid)
		c.Next()
	}
}

// AuthOptional resolves the identity when it can but never aborts. Listing
// uses this so it can degrade to an empty result instead of failing.
func AuthOptional(resolver auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := auth.TokenFromHeader(c.GetHeader("Authorization")); err == nil {
			if uid, err := resolver.Resolve(c.Request.Context(), token); err == nil {
				c.Set(UserIDKey, uid)
			}
		}
		c.Next()
	}
}

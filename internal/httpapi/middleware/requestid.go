package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/motiondesk/server/internal/common"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags every response with a ULID, keeping an inbound id if the
// caller already set one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			if id, err := common.NewULID(); err == nil {
				rid = id
			}
		}
		if rid != "" {
			c.Header(RequestIDHeader, rid)
		}
		c.Next()
	}
}

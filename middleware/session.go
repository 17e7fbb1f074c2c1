package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

const (
	sessionHeader = "X-Session-ID"
	sessionCtxKey = "sessionId"
)

// SessionMiddleware tags the request with a session key for filter memory:
// the X-Session-ID header when sent, the client IP otherwise
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(sessionHeader)
		if sessionID != "" {
			c.Writer.Header().Set(sessionHeader, sessionID)
			sessionID = "session:" + sessionID
		} else {
			sessionID = "ip:" + c.ClientIP()
		}

		c.Set(sessionCtxKey, sessionID)
		c.Next()
	}
}

// SessionKey prefers the signed-in user over the anonymous session
func SessionKey(c *gin.Context) string {
	if userID, ok := UserID(c); ok {
		return fmt.Sprintf("user:%d", userID)
	}
	if key := c.GetString(sessionCtxKey); key != "" {
		return key
	}
	return "ip:" + c.ClientIP()
}

package middleware

import (
	"strings"

	"unistay/errors"
	"unistay/response"
	"unistay/services"
	"unistay/services/logger"

	"github.com/gin-gonic/gin"
)

const (
	userIDCtxKey   = "userID"
	userRoleCtxKey = "userRole"
	tokenCookie    = "access_token"
)

// TokenParser verifies access tokens
type TokenParser interface {
	ParseToken(token string) (services.UserInfo, error)
}

func bearerToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	if cookie, err := c.Cookie(tokenCookie); err == nil {
		return cookie
	}
	return ""
}

// AuthMiddleware requires a valid token, and one of roles when given
func AuthMiddleware(tokens TokenParser, roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		info, err := tokens.ParseToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == info.Role {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		c.Set(userIDCtxKey, info.UserId)
		c.Set(userRoleCtxKey, info.Role)
		c.Next()
	}
}

// OptionalAuth attaches the user when a valid token is present and never rejects
func OptionalAuth(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := bearerToken(c); tokenString != "" {
			if info, err := tokens.ParseToken(tokenString); err == nil {
				c.Set(userIDCtxKey, info.UserId)
				c.Set(userRoleCtxKey, info.Role)
			}
		}
		c.Next()
	}
}

// UserID returns the authenticated user id
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(userIDCtxKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}

// ErrorHandler renders errors attached with c.Error when the handler wrote nothing
func ErrorHandler(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		if !errors.IsAppError(err) {
			log.Error("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		}
		if !c.Writer.Written() {
			response.Fail(c, err)
		}
	}
}

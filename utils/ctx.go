package utils

import "github.com/gin-gonic/gin"

// CurrentUserID returns the account id the auth middleware stored on
// the context, or 0 on an unauthenticated request. The middleware
// always stores a uint, so anything else means no valid token ran.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get("userId"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// CurrentRole returns the role claim the auth middleware stored, or
// "" when no token was presented.
func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

package handlers

import "github.com/gin-gonic/gin"

// RequestIDKey is the gin context key the router's request-ID middleware
// populates for every request.
const RequestIDKey = "request_id"

// RequestID returns the request correlation id, or "" outside the router.
func RequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

package middleware

import "github.com/gin-gonic/gin"

// JSONContentType sets a bare application/json Content-Type up front.
// Renderers that set their own type, like the metrics handler, still override it.
func JSONContentType() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.Next()
	}
}

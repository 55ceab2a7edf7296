package handler

import "github.com/gin-gonic/gin"

// NoStore returns a Gin middleware that disables response caching.
// Consumers poll the index endpoint; a cached envelope would hide the
// next scheduled update.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store, max-age=0")
		c.Header("Pragma", "no-cache")
		c.Next()
	}
}

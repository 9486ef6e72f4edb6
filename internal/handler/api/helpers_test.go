//go:build unit

package api_test

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const testUserID int64 = 1001

// fakeAuth stands in for the JWT middleware: any bearer header
// authenticates as testUserID.
func fakeAuth(c *gin.Context) {
	if c.GetHeader("Authorization") == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	c.Set("user_id", testUserID)
	c.Next()
}

package middleware

import (
	"net/http"
	"strings"

	"movebook/utils"

	"github.com/gin-gonic/gin"
)

// CompanyAuthMiddleware guards the dashboard routes. Tokens are issued by the
// external auth service; this only validates the signature and pulls the
// tenant scope into the request context.
func CompanyAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		companyID, err := utils.ExtractCompanyIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("companyID", companyID)
		c.Next()
	}
}

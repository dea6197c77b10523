package middleware

import "github.com/gin-gonic/gin"

func RequireUserType(allowedTypes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userType, exists := c.Get("userType")
		if !exists {
			c.AbortWithStatusJSON(403, gin.H{"error": "user type missing"})
			return
		}

		for _, allowed := range allowedTypes {
			if userType == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(403, gin.H{"error": "forbidden"})
	}
}

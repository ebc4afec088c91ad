package middlewares

import (
	"net/http"
	"strings"

	"github.com/UpekaFernando/tour-blog-info-final/config"
	"github.com/UpekaFernando/tour-blog-info-final/models"
	"github.com/UpekaFernando/tour-blog-info-final/services"

	"github.com/gin-gonic/gin"
)

// Protect verifies the bearer token and loads the caller from the
// database. The token only proves identity; isAdmin is always read fresh
// from the users table.
func Protect() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"code": 0, "mess": "Authorization header is missing"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := services.ParseToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"code": 0, "mess": "Invalid token"})
			c.Abort()
			return
		}

		var user models.User
		if err := config.DB.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"code": 0, "mess": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("currentUser", user)
		c.Next()
	}
}

// RequireAdmin must run after Protect.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"code": 0, "mess": "Not authorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user set by Protect.
func CurrentUser(c *gin.Context) models.User {
	value, _ := c.Get("currentUser")
	user, _ := value.(models.User)
	return user
}

package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/miikeyanderson/AMED-Referrals-sub000/models"
	"github.com/miikeyanderson/AMED-Referrals-sub000/utils"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"code": "not_authenticated", "error": "Authorization header is missing"})
			c.Abort()
			return
		}

		userID, err := utils.ExtractUserIDFromToken(authHeader)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"code": "not_authenticated", "error": "Invalid token"})
			c.Abort()
			return
		}

		// Fetch the user from the database
		var user models.User
		if err := utils.ReferralsDB.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"code": "not_authenticated", "error": "User not found"})
			c.Abort()
			return
		}

		// Set the user in the context
		c.Set("user", user)
		c.Set("user_id", user.ID)

		c.Next()
	}
}

// RequireRole gates a route group to the given role set. The rejection
// names the roles that would have been accepted.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"code": "not_authenticated", "error": "User not found in context"})
			c.Abort()
			return
		}

		if !allowed[user.Role] {
			c.JSON(http.StatusForbidden, gin.H{
				"code":          "access_denied",
				"error":         "You do not have permission to perform this action",
				"required_role": strings.Join(roles, "|"),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by AuthMiddleware.
func CurrentUser(c *gin.Context) (models.User, bool) {
	userInterface, exists := c.Get("user")
	if !exists {
		return models.User{}, false
	}
	user, ok := userInterface.(models.User)
	return user, ok
}

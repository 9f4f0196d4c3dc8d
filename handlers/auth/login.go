package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/miikeyanderson/AMED-Referrals-sub000/models"
	"github.com/miikeyanderson/AMED-Referrals-sub000/utils"
)

func Login(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation_error", "error": "Invalid input data. Please provide a valid username and password."})
		return
	}

	var user models.User
	if err := utils.ReferralsDB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "not_authenticated", "error": "Invalid username or password."})
		return
	}

	// Check password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "not_authenticated", "error": "Invalid username or password."})
		return
	}

	accessToken, err := utils.GenerateAccessToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "internal_error", "error": "Could not generate token"})
		return
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "internal_error", "error": "Could not generate refresh token"})
		return
	}

	now := time.Now()
	user.RefreshToken = utils.HashToken(refreshToken)
	user.RefreshIssuedAt = &now
	if err := utils.ReferralsDB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "internal_error", "error": "Failed to save refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Login successful.",
		"token":         accessToken,
		"refresh_token": refreshToken,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"name":     user.Name,
			"role":     user.Role,
		},
	})
}

// Logout clears the stored refresh token and records the logout time.
func Logout(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "not_authenticated", "error": "User not found in context"})
		return
	}

	now := time.Now()
	user.RefreshToken = ""
	user.RefreshIssuedAt = nil
	user.LastLogoutAt = &now
	if err := utils.ReferralsDB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "internal_error", "error": "Failed to log out"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logout successful.",
	})
}

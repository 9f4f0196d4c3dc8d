package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/miikeyanderson/AMED-Referrals-sub000/models"
	"github.com/miikeyanderson/AMED-Referrals-sub000/utils"
)

func RefreshToken(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation_error", "error": "Invalid input data. Please provide a refresh token."})
		return
	}

	// Extract user ID from the expired access token in the Authorization header
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "not_authenticated", "error": "Authorization header is missing"})
		return
	}

	userID, err := utils.ExtractUserIDFromToken(authHeader)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "not_authenticated", "error": "Invalid access token"})
		return
	}

	// Fetch the user from the database
	var user models.User
	if err := utils.ReferralsDB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "not_authenticated", "error": "User not found"})
		return
	}

	// Verify the refresh token matches the one in the database
	if user.RefreshToken == "" || utils.HashToken(input.RefreshToken) != user.RefreshToken {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "not_authenticated", "error": "Invalid refresh token"})
		return
	}

	if utils.RefreshTokenExpired(user.RefreshIssuedAt, time.Now()) {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "not_authenticated", "error": "Refresh token has expired. Please log in again."})
		return
	}

	// Generate new access and refresh tokens
	newAccessToken, err := utils.GenerateAccessToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "internal_error", "error": "Could not generate access token"})
		return
	}

	newRefreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "internal_error", "error": "Could not generate refresh token"})
		return
	}

	// Hash and save the new refresh token
	now := time.Now()
	user.RefreshToken = utils.HashToken(newRefreshToken)
	user.RefreshIssuedAt = &now
	if err := utils.ReferralsDB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "internal_error", "error": "Failed to save refresh token"})
		return
	}

	// Return the new tokens
	c.JSON(http.StatusOK, gin.H{
		"access_token":  newAccessToken,
		"refresh_token": newRefreshToken,
	})
}

package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/miikeyanderson/AMED-Referrals-sub000/models"
	"github.com/miikeyanderson/AMED-Referrals-sub000/utils"
)

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Register creates a new account. Role is fixed at registration and
// cannot be changed afterwards.
func Register(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		Name     string `json:"name" binding:"required"`
		Role     string `json:"role" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation_error", "error": "Invalid input data. Please fill in all required fields."})
		return
	}

	if !models.ValidRole(input.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation_error", "error": "Role must be clinician, recruiter or leadership."})
		return
	}

	var existing models.User
	if err := utils.ReferralsDB.Where("username = ? OR email = ?", input.Username, input.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation_error", "error": "Username or email is already registered."})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "internal_error", "error": "Failed to create account"})
		return
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Name:     input.Name,
		Role:     input.Role,
		Password: string(hashed),
	}

	if err := utils.ReferralsDB.Create(&user).Error; err != nil {
		// A concurrent registration can slip past the existence check and
		// land on the unique constraint instead.
		if isDuplicateKey(err) {
			c.JSON(http.StatusBadRequest, gin.H{"code": "validation_error", "error": "Username or email is already registered."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": "internal_error", "error": "Failed to create account"})
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

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Registration successful.",
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

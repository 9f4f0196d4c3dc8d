package notifications

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/miikeyanderson/AMED-Referrals-sub000/handlers/auth"
	"github.com/miikeyanderson/AMED-Referrals-sub000/logging"
	"github.com/miikeyanderson/AMED-Referrals-sub000/models"
	"github.com/miikeyanderson/AMED-Referrals-sub000/utils"
)

// Create records an in-app notification for a user. Failures are logged
// and swallowed so a notification never fails the triggering request.
func Create(userID uint, title, body, data string) {
	notification := models.Notification{
		UserID: userID,
		Title:  title,
		Body:   body,
		Data:   data,
	}

	if err := utils.ReferralsDB.Create(&notification).Error; err != nil {
		logging.Logger.Warn("failed to create notification",
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
	}
}

func GetNotifications(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "not_authenticated", "error": "User not found in context"})
		return
	}

	var notifications []models.Notification
	if err := utils.ReferralsDB.Where("user_id = ?", user.ID).Order("created_at desc").Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "internal_error", "error": "Failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func MarkNotificationRead(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "not_authenticated", "error": "User not found in context"})
		return
	}

	var notification models.Notification
	if err := utils.ReferralsDB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&notification).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": "not_found", "error": "Notification not found"})
		return
	}

	if err := utils.ReferralsDB.Model(&notification).Update("read", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "internal_error", "error": "Failed to update notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "Notification marked as read"})
}

package rewards

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/miikeyanderson/AMED-Referrals-sub000/handlers/auth"
	"github.com/miikeyanderson/AMED-Referrals-sub000/models"
	"github.com/miikeyanderson/AMED-Referrals-sub000/utils"
)

// GetUserRewards lists the caller's referral rewards. Rewards are
// created outside this service when a referral converts; they are
// read-only here.
func GetUserRewards(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "not_authenticated", "error": "User not found in context"})
		return
	}

	var userRewards []models.Reward
	if err := utils.ReferralsDB.Where("user_id = ?", user.ID).Order("created_at desc").Find(&userRewards).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "internal_error", "error": "Failed to fetch rewards"})
		return
	}

	total := 0
	pending := 0
	for _, r := range userRewards {
		total += r.Amount
		if r.Status == models.RewardPending {
			pending += r.Amount
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"rewards":        userRewards,
		"total_earned":   total,
		"pending_amount": pending,
	})
}

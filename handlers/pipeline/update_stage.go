package pipeline

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/miikeyanderson/AMED-Referrals-sub000/handlers/auth"
	"github.com/miikeyanderson/AMED-Referrals-sub000/handlers/notifications"
	"github.com/miikeyanderson/AMED-Referrals-sub000/logging"
	"github.com/miikeyanderson/AMED-Referrals-sub000/models"
	"github.com/miikeyanderson/AMED-Referrals-sub000/monitoring"
	"github.com/miikeyanderson/AMED-Referrals-sub000/utils"
)

// UpdateStage moves one referral to a new pipeline stage. Concurrent
// moves of the same referral are last-write-wins.
func UpdateStage(c *gin.Context) {
	var input struct {
		CandidateID uint   `json:"candidateId" binding:"required"`
		NewStage    string `json:"newStage" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation_error", "error": "candidateId and newStage are required"})
		return
	}

	if !models.ValidStatus(input.NewStage) {
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation_error", "error": "newStage must be one of: pending, contacted, interviewing, hired, rejected"})
		return
	}

	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "not_authenticated", "error": "User not found in context"})
		return
	}

	var referral models.Referral
	if err := utils.ReferralsDB.First(&referral, input.CandidateID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": "not_found", "error": "Referral not found"})
		return
	}

	previousStage := referral.Status
	referral.Status = input.NewStage
	referral.ActionHistory = referral.ActionHistory.Append(
		"stage_changed",
		fmt.Sprintf("%s -> %s", previousStage, input.NewStage),
	)

	if err := utils.ReferralsDB.Save(&referral).Error; err != nil {
		logging.Logger.Error("failed to update referral stage",
			zap.Uint("user_id", user.ID),
			zap.String("role", user.Role),
			zap.Uint("referral_id", input.CandidateID),
			zap.String("new_stage", input.NewStage),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"code": "internal_error", "error": "Failed to update referral stage"})
		return
	}

	monitoring.StageTransitionsTotal.WithLabelValues(input.NewStage).Inc()
	notifyReferrer(referral, previousStage)

	c.JSON(http.StatusOK, gin.H{"referral": referral})
}

// notifyReferrer records an in-app notification for the referring
// clinician, plus a best-effort email when the move is terminal.
func notifyReferrer(referral models.Referral, previousStage string) {
	data, _ := json.Marshal(gin.H{
		"referral_id": referral.ID,
		"from":        previousStage,
		"to":          referral.Status,
	})

	notifications.Create(referral.ReferrerID,
		"Referral update",
		fmt.Sprintf("%s moved to %s", referral.CandidateName, referral.Status),
		string(data),
	)

	if referral.Status != models.StatusHired && referral.Status != models.StatusRejected {
		return
	}

	var referrer models.User
	if err := utils.ReferralsDB.First(&referrer, referral.ReferrerID).Error; err != nil {
		return
	}
	utils.SendStatusEmail(referrer.Email, referral.CandidateName, referral.Status)
}

package referrals

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/miikeyanderson/AMED-Referrals-sub000/handlers/auth"
	"github.com/miikeyanderson/AMED-Referrals-sub000/logging"
	"github.com/miikeyanderson/AMED-Referrals-sub000/models"
	"github.com/miikeyanderson/AMED-Referrals-sub000/utils"
)

// SubmitReferral creates a referral owned by the calling clinician.
// Status always starts at pending regardless of the submitted payload.
func SubmitReferral(c *gin.Context) {
	var input struct {
		CandidateName  string            `json:"candidate_name" binding:"required"`
		CandidateEmail string            `json:"candidate_email" binding:"required,email"`
		CandidatePhone string            `json:"candidate_phone"`
		Position       string            `json:"position" binding:"required"`
		Department     string            `json:"department"`
		Experience     string            `json:"experience"`
		Notes          string            `json:"notes"`
		ResumeURL      string            `json:"resume_url"`
		SkillTags      []string          `json:"skill_tags"`
		SocialLinks    map[string]string `json:"social_links"`
		Source         string            `json:"source"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation_error", "error": "Candidate name, email and position are required."})
		return
	}

	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "not_authenticated", "error": "User not found in context"})
		return
	}

	referral := models.Referral{
		ReferrerID:     user.ID,
		CandidateName:  input.CandidateName,
		CandidateEmail: input.CandidateEmail,
		CandidatePhone: input.CandidatePhone,
		Position:       input.Position,
		Department:     input.Department,
		Experience:     input.Experience,
		Notes:          input.Notes,
		ResumeURL:      input.ResumeURL,
		SkillTags:      input.SkillTags,
		SocialLinks:    input.SocialLinks,
		Source:         input.Source,
		Status:         models.StatusPending,
	}
	referral.ActionHistory = referral.ActionHistory.Append("created", "")

	if err := utils.ReferralsDB.Create(&referral).Error; err != nil {
		logging.Logger.Error("failed to submit referral",
			zap.Uint("user_id", user.ID),
			zap.String("role", user.Role),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"code": "internal_error", "error": "Failed to submit referral"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Referral submitted successfully", "referral": referral})
}

// GetUserReferrals lists the caller's own submissions.
func GetUserReferrals(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "not_authenticated", "error": "User not found in context"})
		return
	}

	var referrals []models.Referral
	if err := utils.ReferralsDB.Where("referrer_id = ?", user.ID).Order("updated_at desc").Find(&referrals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "internal_error", "error": "Failed to fetch referrals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"referrals": referrals})
}

// GetReferral returns one referral. Clinicians can only read their own;
// recruiters and leadership can read any.
func GetReferral(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "not_authenticated", "error": "User not found in context"})
		return
	}

	var referral models.Referral
	if err := utils.ReferralsDB.First(&referral, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": "not_found", "error": "Referral not found"})
		return
	}

	if user.Role == models.RoleClinician && referral.ReferrerID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{
			"code":          "access_denied",
			"error":         "You do not have permission to view this referral",
			"required_role": models.RoleRecruiter + "|" + models.RoleLeadership,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"referral": referral})
}

// UpdateReferral edits a referral's descriptive fields. The owning
// clinician may change non-sensitive fields; recruiterNotes and
// nextSteps are reserved for recruiter and leadership callers.
func UpdateReferral(c *gin.Context) {
	var input struct {
		CandidatePhone *string           `json:"candidate_phone"`
		Experience     *string           `json:"experience"`
		Notes          *string           `json:"notes"`
		ResumeURL      *string           `json:"resume_url"`
		SkillTags      []string          `json:"skill_tags"`
		SocialLinks    map[string]string `json:"social_links"`
		RecruiterNotes *string           `json:"recruiter_notes"`
		NextSteps      *string           `json:"next_steps"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation_error", "error": "Invalid request payload"})
		return
	}

	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "not_authenticated", "error": "User not found in context"})
		return
	}

	var referral models.Referral
	if err := utils.ReferralsDB.First(&referral, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": "not_found", "error": "Referral not found"})
		return
	}

	isStaff := user.Role == models.RoleRecruiter || user.Role == models.RoleLeadership
	isOwner := referral.ReferrerID == user.ID

	if !isStaff && !isOwner {
		c.JSON(http.StatusForbidden, gin.H{
			"code":          "access_denied",
			"error":         "You do not have permission to edit this referral",
			"required_role": models.RoleRecruiter + "|" + models.RoleLeadership,
		})
		return
	}

	if (input.RecruiterNotes != nil || input.NextSteps != nil) && !isStaff {
		c.JSON(http.StatusForbidden, gin.H{
			"code":          "access_denied",
			"error":         "Recruiter notes can only be edited by recruiters or leadership",
			"required_role": models.RoleRecruiter + "|" + models.RoleLeadership,
		})
		return
	}

	if input.CandidatePhone != nil {
		referral.CandidatePhone = *input.CandidatePhone
	}
	if input.Experience != nil {
		referral.Experience = *input.Experience
	}
	if input.Notes != nil {
		referral.Notes = *input.Notes
	}
	if input.ResumeURL != nil {
		referral.ResumeURL = *input.ResumeURL
	}
	if input.SkillTags != nil {
		referral.SkillTags = input.SkillTags
	}
	if input.SocialLinks != nil {
		referral.SocialLinks = input.SocialLinks
	}
	if input.RecruiterNotes != nil {
		referral.RecruiterNotes = *input.RecruiterNotes
	}
	if input.NextSteps != nil {
		referral.NextSteps = *input.NextSteps
	}
	referral.ActionHistory = referral.ActionHistory.Append("notes_updated", "")

	if err := utils.ReferralsDB.Save(&referral).Error; err != nil {
		logging.Logger.Error("failed to update referral",
			zap.Uint("user_id", user.ID),
			zap.String("role", user.Role),
			zap.Uint("referral_id", referral.ID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"code": "internal_error", "error": "Failed to update referral"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"referral": referral})
}

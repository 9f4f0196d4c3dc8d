package stats

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/miikeyanderson/AMED-Referrals-sub000/handlers/auth"
	"github.com/miikeyanderson/AMED-Referrals-sub000/logging"
	"github.com/miikeyanderson/AMED-Referrals-sub000/models"
	"github.com/miikeyanderson/AMED-Referrals-sub000/utils"
)

// Statistics summarizes referral counts for a window. InProgress is a
// derived bucket covering contacted and interviewing.
type Statistics struct {
	TotalReferrals      int64 `json:"totalReferrals"`
	PendingReferrals    int64 `json:"pendingReferrals"`
	InProgressReferrals int64 `json:"inProgressReferrals"`
	CompletedReferrals  int64 `json:"completedReferrals"`
	RejectedReferrals   int64 `json:"rejectedReferrals"`
}

// BuildStatistics folds per-status counts into the reported buckets.
func BuildStatistics(counts map[string]int64) Statistics {
	var s Statistics
	for status, n := range counts {
		s.TotalReferrals += n
		switch status {
		case models.StatusPending:
			s.PendingReferrals += n
		case models.StatusContacted, models.StatusInterviewing:
			s.InProgressReferrals += n
		case models.StatusHired:
			s.CompletedReferrals += n
		case models.StatusRejected:
			s.RejectedReferrals += n
		default:
			// Unknown stored status counts as pending, matching the
			// pipeline board's defensive bucketing.
			s.PendingReferrals += n
		}
	}
	return s
}

// GetReferralStats returns windowed counts scoped to the caller's own
// submissions.
func GetReferralStats(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "not_authenticated", "error": "User not found in context"})
		return
	}

	window, err := ResolveWindow(c.Query("range"), c.Query("fromDate"), c.Query("toDate"), time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation_error", "error": err.Error()})
		return
	}

	counts, err := statusCounts(user.ID, window)
	if err != nil {
		logging.Logger.Error("failed to compute referral stats",
			zap.Uint("user_id", user.ID),
			zap.String("role", user.Role),
			zap.String("range", window.Range),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"code": "internal_error", "error": "Failed to compute referral statistics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"timeframe": gin.H{
			"start": window.Start.Format(dateLayout),
			"end":   window.End.AddDate(0, 0, -1).Format(dateLayout),
			"range": window.Range,
		},
		"statistics": BuildStatistics(counts),
	})
}

// statusCounts groups the user's referrals created inside the window by
// status. A zero referrerID leaves the query unscoped (team-wide).
func statusCounts(referrerID uint, window Window) (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}

	query := utils.ReferralsDB.Model(&models.Referral{}).
		Select("status, COUNT(*) as count").
		Where("created_at >= ? AND created_at < ?", window.Start, window.End).
		Group("status")
	if referrerID != 0 {
		query = query.Where("referrer_id = ?", referrerID)
	}

	var rows []row
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

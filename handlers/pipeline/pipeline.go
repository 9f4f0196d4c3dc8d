package pipeline

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/miikeyanderson/AMED-Referrals-sub000/handlers/auth"
	"github.com/miikeyanderson/AMED-Referrals-sub000/logging"
	"github.com/miikeyanderson/AMED-Referrals-sub000/models"
	"github.com/miikeyanderson/AMED-Referrals-sub000/utils"
)

const dateLayout = "2006-01-02"

// ParseFilterDate parses an optional date filter. Unparseable values are
// dropped rather than rejected, so a bad filter widens the result set
// instead of failing the request.
func ParseFilterDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// GetPipeline returns every referral matching the filters, partitioned
// into the five stage buckets with per-stage counts and a grand total.
func GetPipeline(c *gin.Context) {
	query := utils.ReferralsDB.Model(&models.Referral{})

	if role := c.Query("role"); role != "" && role != "all" {
		query = query.Where("position = ?", role)
	}
	if department := c.Query("department"); department != "" && department != "all" {
		query = query.Where("department = ?", department)
	}
	if source := c.Query("source"); source != "" {
		query = query.Where("source LIKE ?", "%"+source+"%")
	}
	if from, ok := ParseFilterDate(c.Query("fromDate")); ok {
		query = query.Where("created_at >= ?", from)
	}
	if to, ok := ParseFilterDate(c.Query("toDate")); ok {
		// Inclusive upper bound: the whole toDate day counts.
		query = query.Where("created_at < ?", to.AddDate(0, 0, 1))
	}

	order := fmt.Sprintf("%s %s", SortColumn(c.Query("sortBy")), SortDirection(c.Query("sortDirection")))

	var referrals []models.Referral
	if err := query.Order(order).Find(&referrals).Error; err != nil {
		user, _ := auth.CurrentUser(c)
		logging.Logger.Error("failed to fetch pipeline",
			zap.Uint("user_id", user.ID),
			zap.String("role", user.Role),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"code": "internal_error", "error": "Failed to fetch pipeline"})
		return
	}

	buckets, total := PartitionByStage(referrals)

	c.JSON(http.StatusOK, gin.H{
		"total":    total,
		"pipeline": buckets,
	})
}

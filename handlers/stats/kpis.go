package stats

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/miikeyanderson/AMED-Referrals-sub000/handlers/auth"
	"github.com/miikeyanderson/AMED-Referrals-sub000/logging"
	"github.com/miikeyanderson/AMED-Referrals-sub000/models"
	"github.com/miikeyanderson/AMED-Referrals-sub000/utils"
)

const (
	conversionRateTarget = 30.0
	timeToHireTargetDays = 21.0
	trendMonths          = 6
)

// GetKPIs returns team-wide leadership metrics: conversion rate and
// time-to-hire for the current month with six-month trends, plus active
// requisitions and all-time placements.
func GetKPIs(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	now := time.Now()

	var conversionTrend []float64
	var timeToHireTrend []float64

	for i := trendMonths - 1; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		window := Window{Start: monthStart, End: monthStart.AddDate(0, 1, 0)}

		counts, err := statusCounts(0, window)
		if err != nil {
			logKPIError(c, user, err)
			return
		}
		stats := BuildStatistics(counts)
		conversionTrend = append(conversionTrend, ConversionRate(stats.CompletedReferrals, stats.TotalReferrals))

		hired, err := hiredInWindow(window)
		if err != nil {
			logKPIError(c, user, err)
			return
		}
		timeToHireTrend = append(timeToHireTrend, AverageTimeToHireDays(hired))
	}

	var activeRequisitions int64
	if err := utils.ReferralsDB.Model(&models.Referral{}).
		Where("status IN ?", []string{models.StatusContacted, models.StatusInterviewing}).
		Count(&activeRequisitions).Error; err != nil {
		logKPIError(c, user, err)
		return
	}

	var totalPlacements int64
	if err := utils.ReferralsDB.Model(&models.Referral{}).
		Where("status = ?", models.StatusHired).
		Count(&totalPlacements).Error; err != nil {
		logKPIError(c, user, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"conversionRate": gin.H{
			"current": conversionTrend[len(conversionTrend)-1],
			"target":  conversionRateTarget,
			"trend":   conversionTrend,
		},
		"timeToHire": gin.H{
			"current": timeToHireTrend[len(timeToHireTrend)-1],
			"target":  timeToHireTargetDays,
			"trend":   timeToHireTrend,
		},
		"activeRequisitions": activeRequisitions,
		"totalPlacements":    totalPlacements,
	})
}

// GetInflow returns per-month referral inflow over the requested number
// of months, with the change between the two most recent periods.
func GetInflow(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	now := time.Now()

	months := trendMonths
	if v, err := strconv.Atoi(c.Query("months")); err == nil && v > 0 && v <= 24 {
		months = v
	}

	type monthCount struct {
		Month string `json:"month"`
		Count int64  `json:"count"`
	}

	var inflow []monthCount
	for i := months - 1; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)

		var count int64
		if err := utils.ReferralsDB.Model(&models.Referral{}).
			Where("created_at >= ? AND created_at < ?", monthStart, monthStart.AddDate(0, 1, 0)).
			Count(&count).Error; err != nil {
			logKPIError(c, user, err)
			return
		}
		inflow = append(inflow, monthCount{Month: monthStart.Format("2006-01"), Count: count})
	}

	change := 0.0
	if len(inflow) >= 2 {
		change = PercentageChange(float64(inflow[len(inflow)-1].Count), float64(inflow[len(inflow)-2].Count))
	}

	c.JSON(http.StatusOK, gin.H{
		"inflow":           inflow,
		"percentageChange": change,
	})
}

func hiredInWindow(window Window) ([]models.Referral, error) {
	var hired []models.Referral
	err := utils.ReferralsDB.
		Where("status = ? AND updated_at >= ? AND updated_at < ?", models.StatusHired, window.Start, window.End).
		Find(&hired).Error
	return hired, err
}

func logKPIError(c *gin.Context, user models.User, err error) {
	logging.Logger.Error("failed to compute KPIs",
		zap.Uint("user_id", user.ID),
		zap.String("role", user.Role),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"code": "internal_error", "error": "Failed to compute KPIs"})
}

package stats

import "github.com/gin-gonic/gin"

// RegisterStatsRoutes mounts the caller-scoped statistics endpoint.
func RegisterStatsRoutes(r *gin.RouterGroup) {
	r.GET("/referrals-stats", GetReferralStats)
}

// RegisterKPIRoutes mounts the team-wide metrics endpoints.
func RegisterKPIRoutes(r *gin.RouterGroup) {
	r.GET("/kpis", GetKPIs)
	r.GET("/inflow", GetInflow)
}

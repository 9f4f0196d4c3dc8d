package referrals

import "github.com/gin-gonic/gin"

func RegisterReferralsRoutes(r *gin.RouterGroup) {
	r.POST("/referrals", SubmitReferral)
	r.GET("/referrals", GetUserReferrals)
	r.GET("/referrals/:id", GetReferral)
	r.PATCH("/referrals/:id", UpdateReferral)
}

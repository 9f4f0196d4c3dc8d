package rewards

import "github.com/gin-gonic/gin"

func RegisterRewardsRoutes(r *gin.RouterGroup) {
	r.GET("/rewards", GetUserRewards)
}

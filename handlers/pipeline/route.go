package pipeline

import (
	"github.com/gin-gonic/gin"
)

func RegisterPipelineRoutes(r *gin.RouterGroup) {
	r.GET("/pipeline", GetPipeline)
	r.POST("/pipeline/update-stage", UpdateStage)
}

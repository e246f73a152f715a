package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterParticipationRoutes 注册组队申请相关路由（需要认证）
// 帖子收到的申请列表挂在 /post/:id/participations 下
func (rt *Router) RegisterParticipationRoutes(rg *gin.RouterGroup) {
	participationGroup := rg.Group("/participation")
	{
		participationGroup.POST("", rt.handlers.Participation.CreateParticipation)
		participationGroup.PUT("/:id", rt.handlers.Participation.UpdateParticipation)
		participationGroup.DELETE("/:id", rt.handlers.Participation.DeleteParticipation)
		participationGroup.GET("/mine", rt.handlers.Participation.ListMine)
	}
}

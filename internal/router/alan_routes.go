package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterAlanRoutes 注册 AI 助手相关路由（需要认证）
func (rt *Router) RegisterAlanRoutes(rg *gin.RouterGroup) {
	alanGroup := rg.Group("/alan")
	{
		alanGroup.POST("/question", rt.handlers.Alan.Question)
		alanGroup.GET("/quota", rt.handlers.Alan.GetQuota)
	}
}

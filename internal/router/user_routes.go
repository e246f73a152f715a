package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes 注册用户资料相关路由（需要认证）
func (rt *Router) RegisterUserRoutes(rg *gin.RouterGroup) {
	userGroup := rg.Group("/user")
	{
		userGroup.GET("/profile", rt.handlers.User.GetMyProfile)
		userGroup.GET("/profile/:id", rt.handlers.User.GetProfile)
		userGroup.PUT("/profile", rt.handlers.User.UpdateProfile)
		userGroup.POST("/profile/image", rt.handlers.User.UploadProfileImage)
		userGroup.PUT("/password", rt.handlers.User.ChangePassword)
		userGroup.GET("/following", rt.handlers.User.GetFollowedUsers)
		userGroup.DELETE("", rt.handlers.User.DeleteAccount)
	}
}

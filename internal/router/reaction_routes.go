package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterReactionRoutes 注册用户行为相关路由（需要认证）
func (rt *Router) RegisterReactionRoutes(rg *gin.RouterGroup) {
	reactionGroup := rg.Group("/reaction")
	{
		reactionGroup.POST("", rt.handlers.Reaction.AddReaction)
		reactionGroup.DELETE("", rt.handlers.Reaction.DeleteReaction)
		reactionGroup.GET("", rt.handlers.Reaction.GetReactionStatus)
		reactionGroup.GET("/bookmarks", rt.handlers.Reaction.GetBookmarkedPosts)
		reactionGroup.GET("/likes", rt.handlers.Reaction.GetLikedPosts)
	}
}

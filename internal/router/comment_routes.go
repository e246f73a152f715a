package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterCommentRoutes 注册评论相关路由（需要认证）
// 帖子的评论树查询挂在 /post/:id/comments 下
func (rt *Router) RegisterCommentRoutes(rg *gin.RouterGroup) {
	commentGroup := rg.Group("/comment")
	{
		commentGroup.POST("", rt.handlers.Comment.CreateComment)
		commentGroup.PUT("/:id", rt.handlers.Comment.UpdateComment)
		commentGroup.DELETE("/:id", rt.handlers.Comment.DeleteComment)
	}
}

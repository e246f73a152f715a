package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterPostRoutes 注册帖子相关路由（需要认证）
// 用户自己的帖子列表挂在 /user/posts 下，避免与 /post/:id 冲突
func (rt *Router) RegisterPostRoutes(rg *gin.RouterGroup) {
	rg.GET("/user/posts", rt.handlers.Post.ListMyPosts)

	postGroup := rg.Group("/post")
	{
		postGroup.POST("", rt.handlers.Post.CreatePost)
		postGroup.GET("", rt.handlers.Post.ListPosts)
		postGroup.GET("/:id", rt.handlers.Post.GetPost)
		postGroup.PUT("/:id", rt.handlers.Post.UpdatePost)
		postGroup.DELETE("/:id", rt.handlers.Post.DeletePost)
		postGroup.PUT("/:id/answer-complete", rt.handlers.Post.ToggleAnswerComplete)
		postGroup.GET("/:id/comments", rt.handlers.Comment.ListComments)
		postGroup.GET("/:id/participations", rt.handlers.Participation.ListByPost)
	}
}

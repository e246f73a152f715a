// 本文件处理点赞、收藏、关注、举报等用户行为的 API 请求
package handler

import (
	"github.com/gin-gonic/gin"

	"outspecs_server/internal/dto/request"
	"outspecs_server/internal/service"
)

// ReactionHandler 用户行为请求处理器
type ReactionHandler struct {
	reactionSvc service.ReactionService
}

// NewReactionHandler 创建用户行为处理器实例
func NewReactionHandler(reactionSvc service.ReactionService) *ReactionHandler {
	return &ReactionHandler{reactionSvc: reactionSvc}
}

// AddReaction 添加行为（点赞 / 收藏 / 关注 / 举报）
// POST /reaction
// 请求体: request.ReactionRequest
func (h *ReactionHandler) AddReaction(c *gin.Context) {
	var req request.ReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.reactionSvc.AddReaction(currentUserID(c), req.TargetType, req.TargetID, req.Type); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DeleteReaction 取消行为
// DELETE /reaction
// 请求体: request.ReactionRequest
func (h *ReactionHandler) DeleteReaction(c *gin.Context) {
	var req request.ReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.reactionSvc.DeleteReaction(currentUserID(c), req.TargetType, req.TargetID, req.Type); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetReactionStatus 查询行为是否存在及目标累计数量
// GET /reaction?target_type=POST&target_id=1&type=LIKE
// 响应: { exists: bool, count: int64 }
func (h *ReactionHandler) GetReactionStatus(c *gin.Context) {
	var req request.ReactionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	exists, err := h.reactionSvc.IsReactionExists(currentUserID(c), req.TargetType, req.TargetID, req.Type)
	if err != nil {
		HandleError(c, err)
		return
	}
	count, err := h.reactionSvc.CountReactions(req.TargetType, req.TargetID, req.Type)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"exists": exists, "count": count})
}

// GetBookmarkedPosts 查看自己收藏的帖子
// GET /reaction/bookmarks
func (h *ReactionHandler) GetBookmarkedPosts(c *gin.Context) {
	data, err := h.reactionSvc.GetBookmarkedPosts(currentUserID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetLikedPosts 查看自己点赞的帖子
// GET /reaction/likes
func (h *ReactionHandler) GetLikedPosts(c *gin.Context) {
	data, err := h.reactionSvc.GetLikedPosts(currentUserID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// 本文件处理评论相关的 API 请求
package handler

import (
	"github.com/gin-gonic/gin"

	"outspecs_server/internal/dto/request"
	"outspecs_server/internal/service"
)

// CommentHandler 评论请求处理器
type CommentHandler struct {
	commentSvc service.CommentService
}

// NewCommentHandler 创建评论处理器实例
func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{commentSvc: commentSvc}
}

// CreateComment 发表回答、评论或回复
// POST /comment
// 请求体: request.CreateCommentRequest
// 响应: { comment_id: uint }
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req request.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	commentID, err := h.commentSvc.CreateComment(currentUserID(c), req.Type, req.ParentID, req.Content)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"comment_id": commentID})
}

// UpdateComment 修改评论内容，仅作者可操作
// PUT /comment/:id
// 请求体: request.UpdateCommentRequest
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	commentID, err := parseUintParam(c, "id")
	if err != nil {
		HandleError(c, err)
		return
	}
	var req request.UpdateCommentRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err = h.commentSvc.UpdateComment(currentUserID(c), commentID, req.Content); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DeleteComment 删除评论及其回复
// DELETE /comment/:id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := parseUintParam(c, "id")
	if err != nil {
		HandleError(c, err)
		return
	}
	if err = h.commentSvc.DeleteComment(currentUserID(c), commentID); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// ListComments 查询帖子的评论树
// GET /post/:id/comments
// 响应: []respond.CommentRespond，回复嵌套在父评论下
func (h *CommentHandler) ListComments(c *gin.Context) {
	postID, err := parseUintParam(c, "id")
	if err != nil {
		HandleError(c, err)
		return
	}
	data, err := h.commentSvc.GetCommentsByPost(postID)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

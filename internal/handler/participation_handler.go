// 本文件处理组队申请相关的 API 请求
package handler

import (
	"github.com/gin-gonic/gin"

	"outspecs_server/internal/dto/request"
	"outspecs_server/internal/service"
)

// ParticipationHandler 组队申请请求处理器
type ParticipationHandler struct {
	participationSvc service.ParticipationService
}

// NewParticipationHandler 创建组队申请处理器实例
func NewParticipationHandler(participationSvc service.ParticipationService) *ParticipationHandler {
	return &ParticipationHandler{participationSvc: participationSvc}
}

// CreateParticipation 申请加入组队
// POST /participation
// 请求体: request.CreateParticipationRequest
// 响应: { participation_id: uint }
func (h *ParticipationHandler) CreateParticipation(c *gin.Context) {
	var req request.CreateParticipationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	id, err := h.participationSvc.CreateParticipation(currentUserID(c), req.PostID)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"participation_id": id})
}

// UpdateParticipation 帖主审批申请
// PUT /participation/:id
// 请求体: request.UpdateParticipationRequest (ACCEPTED / REJECTED)
func (h *ParticipationHandler) UpdateParticipation(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		HandleError(c, err)
		return
	}
	var req request.UpdateParticipationRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err = h.participationSvc.UpdateParticipation(id, currentUserID(c), req.Status); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DeleteParticipation 撤回自己的申请
// DELETE /participation/:id
func (h *ParticipationHandler) DeleteParticipation(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		HandleError(c, err)
		return
	}
	if err = h.participationSvc.DeleteParticipation(id, currentUserID(c)); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// ListByPost 帖主查看帖子收到的申请
// GET /post/:id/participations
func (h *ParticipationHandler) ListByPost(c *gin.Context) {
	postID, err := parseUintParam(c, "id")
	if err != nil {
		HandleError(c, err)
		return
	}
	data, err := h.participationSvc.GetParticipationsByPost(postID, currentUserID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ListMine 查看自己发出的申请
// GET /participation/mine
func (h *ParticipationHandler) ListMine(c *gin.Context) {
	data, err := h.participationSvc.GetParticipationsByUser(currentUserID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

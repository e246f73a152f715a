// 本文件处理 AI 助手相关的 API 请求
package handler

import (
	"github.com/gin-gonic/gin"

	"outspecs_server/internal/dto/request"
	"outspecs_server/internal/service"
)

// AlanHandler AI 助手请求处理器
type AlanHandler struct {
	alanSvc service.AlanService
}

// NewAlanHandler 创建 AI 助手处理器实例
func NewAlanHandler(alanSvc service.AlanService) *AlanHandler {
	return &AlanHandler{alanSvc: alanSvc}
}

// Question 向 AI 助手提问
// POST /alan/question
// 请求体: request.AIQuestionRequest
// 响应: respond.AIAnswerRespond，每次提问消耗一点 AI 额度
func (h *AlanHandler) Question(c *gin.Context) {
	var req request.AIQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.alanSvc.Question(c.Request.Context(), currentUserID(c), req.Type, req.Question)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetQuota 查询自己的剩余 AI 额度
// GET /alan/quota
// 响应: { remaining: int }
func (h *AlanHandler) GetQuota(c *gin.Context) {
	remaining, err := h.alanSvc.GetRemainingQuota(currentUserID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"remaining": remaining})
}

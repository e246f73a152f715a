// 本文件处理管理端的 API 请求，路由统一挂载管理员授权中间件
package handler

import (
	"github.com/gin-gonic/gin"

	"outspecs_server/internal/dto/request"
	"outspecs_server/internal/service"
)

// AdminHandler 管理端请求处理器
type AdminHandler struct {
	userSvc     service.UserService
	postSvc     service.PostService
	reactionSvc service.ReactionService
}

// NewAdminHandler 创建管理端处理器实例
func NewAdminHandler(userSvc service.UserService, postSvc service.PostService, reactionSvc service.ReactionService) *AdminHandler {
	return &AdminHandler{userSvc: userSvc, postSvc: postSvc, reactionSvc: reactionSvc}
}

// ListUsers 分页查询用户
// GET /admin/users?page=1&page_size=10
// 响应: respond.UserListRespond
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	data, err := h.userSvc.GetUserList(page, pageSize)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateUserStatus 更新账号状态（封禁 / 解封 / 注销）
// PUT /admin/users/:id/status
// 请求体: request.UpdateUserStatusRequest
func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	userID, err := parseUintParam(c, "id")
	if err != nil {
		HandleError(c, err)
		return
	}
	var req request.UpdateUserStatusRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err = h.userSvc.UpdateUserStatus(userID, req.Status); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// UpdateUserRole 更新用户角色
// PUT /admin/users/:id/role
// 请求体: request.UpdateUserRoleRequest
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	userID, err := parseUintParam(c, "id")
	if err != nil {
		HandleError(c, err)
		return
	}
	var req request.UpdateUserRoleRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err = h.userSvc.UpdateUserRole(userID, req.Role); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// ListReportedPosts 查询被举报的帖子
// GET /admin/reported-posts
func (h *AdminHandler) ListReportedPosts(c *gin.Context) {
	data, err := h.reactionSvc.GetReportedPosts()
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeletePost 删除任意帖子
// DELETE /admin/posts/:id
func (h *AdminHandler) DeletePost(c *gin.Context) {
	postID, err := parseUintParam(c, "id")
	if err != nil {
		HandleError(c, err)
		return
	}
	if err = h.postSvc.DeletePost(c.Request.Context(), postID, currentUserID(c)); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

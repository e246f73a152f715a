// 本文件处理用户资料相关的 API 请求
package handler

import (
	"github.com/gin-gonic/gin"

	"outspecs_server/internal/dto/request"
	"outspecs_server/internal/service"
	"outspecs_server/pkg/constants"
	"outspecs_server/pkg/errorx"
)

// UserHandler 用户资料请求处理器
type UserHandler struct {
	userSvc     service.UserService
	reactionSvc service.ReactionService
}

// NewUserHandler 创建用户处理器实例
func NewUserHandler(userSvc service.UserService, reactionSvc service.ReactionService) *UserHandler {
	return &UserHandler{userSvc: userSvc, reactionSvc: reactionSvc}
}

// GetMyProfile 查看自己的资料
// GET /user/profile
func (h *UserHandler) GetMyProfile(c *gin.Context) {
	data, err := h.userSvc.GetProfile(currentUserID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetProfile 查看指定用户的资料
// GET /user/profile/:id
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, err := parseUintParam(c, "id")
	if err != nil {
		HandleError(c, err)
		return
	}
	data, err := h.userSvc.GetProfile(userID)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateProfile 更新自己的资料
// PUT /user/profile
// 请求体: request.UpdateProfileRequest
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.userSvc.UpdateProfile(currentUserID(c), &req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// UploadProfileImage 上传头像
// POST /user/profile/image
// multipart 表单，字段名 image
// 响应: { image_url: string }
func (h *UserHandler) UploadProfileImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		HandleError(c, errorx.New(errorx.CodeInvalidParam, "缺少头像文件"))
		return
	}
	if fileHeader.Size > constants.IMAGE_MAX_SIZE {
		HandleError(c, errorx.New(errorx.CodeInvalidParam, "图片大小超出限制"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		HandleError(c, errorx.Wrap(err, errorx.CodeInvalidParam, "头像文件读取失败"))
		return
	}
	defer file.Close()

	url, err := h.userSvc.UploadProfileImage(c.Request.Context(), currentUserID(c), file)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"image_url": url})
}

// ChangePassword 修改密码
// PUT /user/password
// 请求体: request.ChangePasswordRequest
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req request.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.userSvc.ChangePassword(currentUserID(c), &req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DeleteAccount 注销自己的账号
// DELETE /user
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	if err := h.userSvc.DeleteUser(c.Request.Context(), currentUserID(c)); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetFollowedUsers 查看自己关注的用户
// GET /user/following
// 响应: { user_ids: []uint }
func (h *UserHandler) GetFollowedUsers(c *gin.Context) {
	ids, err := h.reactionSvc.GetFollowedUsers(currentUserID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"user_ids": ids})
}

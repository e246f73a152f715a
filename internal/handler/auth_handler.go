// Package handler 提供 HTTP 请求处理器
// 本文件处理认证相关的 API 请求
package handler

import (
	"github.com/gin-gonic/gin"

	"outspecs_server/internal/dto/request"
	"outspecs_server/internal/service"
)

// AuthHandler 认证请求处理器
type AuthHandler struct {
	userSvc service.UserService
}

// NewAuthHandler 创建认证处理器实例
func NewAuthHandler(userSvc service.UserService) *AuthHandler {
	return &AuthHandler{userSvc: userSvc}
}

// Register 用户注册
// POST /auth/register
// 请求体: request.RegisterRequest
// 响应: respond.RegisterRespond
func (h *AuthHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.userSvc.Register(&req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Login 用户名密码登录
// POST /auth/login
// 请求体: request.LoginRequest
// 响应: respond.LoginRespond (用户信息 + JWT 令牌对)
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.userSvc.Login(c.Request.Context(), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// OAuthLogin Google 授权码登录
// POST /auth/oauth/google
// 请求体: request.OAuthLoginRequest
// 响应: respond.LoginRespond，首次登录自动注册
func (h *AuthHandler) OAuthLogin(c *gin.Context) {
	var req request.OAuthLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.userSvc.OAuthLogin(c.Request.Context(), req.Code)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// RefreshToken 刷新令牌对
// POST /auth/refresh
// 请求体: request.RefreshTokenRequest
// 响应: respond.TokenRespond，旧刷新令牌同时作废
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.userSvc.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Logout 登出，作废刷新令牌
// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.userSvc.Logout(c.Request.Context(), currentUserID(c)); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

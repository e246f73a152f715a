package request

// UpdateUserStatusRequest 管理端更新账号状态请求
type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE SUSPENDED DELETED"`
}

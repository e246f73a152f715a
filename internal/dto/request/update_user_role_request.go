package request

// UpdateUserRoleRequest 管理端更新用户角色请求
type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=USER ENTUSER ADMIN"`
}

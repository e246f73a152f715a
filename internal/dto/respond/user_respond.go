package respond

// UserRespond 管理端用户列表项
type UserRespond struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	Status      string `json:"status"`
	AIRateLimit int    `json:"ai_rate_limit"`
	CreatedAt   string `json:"created_at"`
}

// UserListRespond 管理端用户分页列表响应
type UserListRespond struct {
	Users []UserRespond `json:"users"`
	Total int64         `json:"total"`
}

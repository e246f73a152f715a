package respond

// RegisterRespond 用户注册响应
type RegisterRespond struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
}

package respond

// LoginRespond 用户登录响应
// 使用位置:
//   - internal/service/user/service.go: Login, OAuthLogin
type LoginRespond struct {
	UserID       uint   `json:"user_id"`
	Username     string `json:"username"`
	Nickname     string `json:"nickname"`
	Role         string `json:"role"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

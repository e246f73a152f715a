package respond

// TokenRespond 刷新令牌响应，返回新的令牌对
type TokenRespond struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

package request

// OAuthLoginRequest OAuth 授权码登录请求
// code 为 Google 授权回调携带的授权码
type OAuthLoginRequest struct {
	Code string `json:"code" binding:"required"`
}

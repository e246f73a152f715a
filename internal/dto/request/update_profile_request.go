package request

// UpdateProfileRequest 更新用户资料请求
// 创建资料复用同一结构
type UpdateProfileRequest struct {
	Nickname           string `json:"nickname" binding:"required,max=30"`
	Stacks             string `json:"stacks" binding:"max=255"`
	Experience         int    `json:"experience" binding:"gte=0"`
	SelfIntro          string `json:"self_intro" binding:"max=500"`
	AllowCompanyAccess bool   `json:"allow_company_access"`
}

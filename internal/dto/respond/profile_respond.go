package respond

// ProfileRespond 用户资料响应
type ProfileRespond struct {
	UserID             uint   `json:"user_id"`
	Nickname           string `json:"nickname"`
	Stacks             string `json:"stacks"`
	Experience         int    `json:"experience"`
	SelfIntro          string `json:"self_intro"`
	AllowCompanyAccess bool   `json:"allow_company_access"`
	ImageURL           string `json:"image_url"`
	FollowerCount      int64  `json:"follower_count"`
}

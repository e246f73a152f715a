package request

// PostDetail 帖子类型明细载荷
// 各字段按帖子类型选用：标签（QNA/FREE）、招募人数（TEAM）、
// 技术栈与年限（RECRUIT）、活动地点（PLAY/AIPLAY）
type PostDetail struct {
	Tags        []string `json:"tags" binding:"max=10,dive,max=30"`
	Capacity    int      `json:"capacity" binding:"gte=0"`
	TechStack   string   `json:"tech_stack" binding:"max=255"`
	CareerYears int      `json:"career_years" binding:"gte=0"`
	PlaceName   string   `json:"place_name" binding:"max=100"`
}

// CreatePostRequest 创建帖子请求
// 使用位置:
//   - internal/handler/post_handler.go: CreatePost
//   - internal/service/post/service.go: CreatePost
type CreatePostRequest struct {
	Type    string     `json:"type" binding:"required"`
	Title   string     `json:"title" binding:"required,max=100"`
	Content string     `json:"content" binding:"required"`
	Detail  PostDetail `json:"detail"`
}

package respond

// PostDetailRespond 帖子类型明细，字段按帖子类型填充
type PostDetailRespond struct {
	Tags           []string `json:"tags,omitempty"`
	Status         string   `json:"status,omitempty"`
	Capacity       int      `json:"capacity,omitempty"`
	AnswerComplete bool     `json:"answer_complete,omitempty"`
	TechStack      string   `json:"tech_stack,omitempty"`
	CareerYears    int      `json:"career_years,omitempty"`
	PlaceName      string   `json:"place_name,omitempty"`
}

// PostRespond 帖子详情响应
// 使用位置:
//   - internal/service/post/service.go: GetPostByID
type PostRespond struct {
	ID            uint              `json:"id"`
	UserID        uint              `json:"user_id"`
	Nickname      string            `json:"nickname"`
	Type          string            `json:"type"`
	Title         string            `json:"title"`
	Content       string            `json:"content"`
	ViewCount     int64             `json:"view_count"`
	LikeCount     int64             `json:"like_count"`
	BookmarkCount int64             `json:"bookmark_count"`
	Images        []string          `json:"images"`
	Detail        PostDetailRespond `json:"detail"`
	CreatedAt     string            `json:"created_at"`
	UpdatedAt     string            `json:"updated_at"`
}

// PostSummaryRespond 帖子列表项
type PostSummaryRespond struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	ViewCount int64  `json:"view_count"`
	CreatedAt string `json:"created_at"`
}

// PostListRespond 帖子分页列表响应
type PostListRespond struct {
	Posts []PostSummaryRespond `json:"posts"`
	Total int64                `json:"total"`
}

package respond

// CommentRespond 评论响应
// REPLY 类型的评论嵌套在父评论的 Replies 中
type CommentRespond struct {
	ID        uint             `json:"id"`
	UserID    uint             `json:"user_id"`
	Type      string           `json:"type"`
	Content   string           `json:"content"`
	CreatedAt string           `json:"created_at"`
	Replies   []CommentRespond `json:"replies,omitempty"`
}

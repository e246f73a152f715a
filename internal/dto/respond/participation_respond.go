package respond

// ParticipationRespond 组队申请响应
type ParticipationRespond struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	PostID    uint   `json:"post_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

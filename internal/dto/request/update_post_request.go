package request

// UpdatePostRequest 更新帖子请求
// 允许修改类型，服务端会清理旧类型的明细数据
type UpdatePostRequest struct {
	Type    string     `json:"type" binding:"required"`
	Title   string     `json:"title" binding:"required,max=100"`
	Content string     `json:"content" binding:"required"`
	Detail  PostDetail `json:"detail"`
}

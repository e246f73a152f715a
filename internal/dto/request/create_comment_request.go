package request

// CreateCommentRequest 创建评论请求
// type 为 ANSWER/COMMENT 时 parent_id 为帖子 id，REPLY 时为评论 id
type CreateCommentRequest struct {
	Type     string `json:"type" binding:"required"`
	ParentID uint   `json:"parent_id" binding:"required"`
	Content  string `json:"content" binding:"required,max=1000"`
}

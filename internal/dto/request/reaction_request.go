package request

// ReactionRequest 用户行为（点赞/收藏/关注/举报）请求
// 创建、删除和状态查询共用同一结构，查询时走 query 参数绑定
type ReactionRequest struct {
	TargetType string `json:"target_type" form:"target_type" binding:"required,oneof=POST USER COMMENT"`
	TargetID   uint   `json:"target_id" form:"target_id" binding:"required"`
	Type       string `json:"type" form:"type" binding:"required,oneof=LIKE BOOKMARK FOLLOW REPORT"`
}

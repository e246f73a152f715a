package request

// CreateParticipationRequest 组队申请请求
type CreateParticipationRequest struct {
	PostID uint `json:"post_id" binding:"required"`
}

package request

// UpdateParticipationRequest 处理组队申请请求
// status 只能是 ACCEPTED 或 REJECTED
type UpdateParticipationRequest struct {
	Status string `json:"status" binding:"required,oneof=ACCEPTED REJECTED"`
}

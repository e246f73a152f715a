package request

// AIQuestionRequest AI 助手提问请求
// type 为 RECOMMEND 时根据回答生成活动帖，QUESTION 时走机器人会话
type AIQuestionRequest struct {
	Type     string `json:"type" binding:"required,oneof=RECOMMEND QUESTION"`
	Question string `json:"question" binding:"required"`
}

package respond

// AIAnswerRespond AI 助手回答响应
// RECOMMEND 流程会附带新建帖子的 id，QUESTION 流程附带会话 id
type AIAnswerRespond struct {
	Answer     string `json:"answer"`
	PostID     uint   `json:"post_id,omitempty"`
	ChatRoomID uint   `json:"chat_room_id,omitempty"`
	Remaining  int    `json:"remaining"`
}

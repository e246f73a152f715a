package respond

// NotificationRespond 通知响应
type NotificationRespond struct {
	ID        uint   `json:"id"`
	SenderID  uint   `json:"sender_id"`
	Type      string `json:"type"`
	TargetID  uint   `json:"target_id"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

package constants

const (
	CHANNEL_SIZE               = 100  // 通道大小
	IMAGE_MAX_SIZE             = 5 << 20 // 单张图片最大字节数
	DEFAULT_AI_RATE_LIMIT      = 10   // 新用户默认 AI 使用额度
	AI_QUESTION_MAX_LEN        = 2048 // AI 提问最大长度
	REFRESH_TOKEN_EXPIRY_HOURS = 168  // Refresh Token 有效期（小时），168小时 = 7天

	// CHATBOT_USERNAME 预留的聊天机器人账号名，普通注册不可占用
	CHATBOT_USERNAME = "outspecs_chatbot"
)

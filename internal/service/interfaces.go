// Package service 定义业务层接口并做依赖注入
// 接口供 Handler 层调用，遵循依赖倒置，便于测试和解耦
package service

import (
	"context"
	"io"

	"outspecs_server/internal/dto/request"
	"outspecs_server/internal/dto/respond"
	"outspecs_server/internal/model"
)

// UserService 账号与资料业务接口
type UserService interface {
	// Register 表单注册
	Register(req *request.RegisterRequest) (*respond.RegisterRespond, error)
	// Login 用户名密码登录
	Login(ctx context.Context, req *request.LoginRequest) (*respond.LoginRespond, error)
	// OAuthLogin 第三方授权码登录，首次登录自动注册
	OAuthLogin(ctx context.Context, code string) (*respond.LoginRespond, error)
	// RefreshToken 轮换刷新令牌并签发新令牌对
	RefreshToken(ctx context.Context, refreshToken string) (*respond.TokenRespond, error)
	// Logout 作废刷新令牌
	Logout(ctx context.Context, userID uint) error
	// ChangePassword 修改密码，第三方登录账号不可修改
	ChangePassword(userID uint, req *request.ChangePasswordRequest) error
	// GetProfile 获取用户资料
	GetProfile(userID uint) (*respond.ProfileRespond, error)
	// UpdateProfile 更新用户资料
	UpdateProfile(userID uint, req *request.UpdateProfileRequest) error
	// UploadProfileImage 上传头像
	UploadProfileImage(ctx context.Context, userID uint, file io.Reader) (string, error)
	// DeleteUser 注销账号
	DeleteUser(ctx context.Context, userID uint) error
	// GetOrCreateChatbotUser 获取聊天机器人账号
	GetOrCreateChatbotUser() (*model.User, error)
	// UpdateUserStatus 管理端更新账号状态
	UpdateUserStatus(userID uint, status string) error
	// UpdateUserRole 管理端更新用户角色
	UpdateUserRole(userID uint, role string) error
	// GetUserList 管理端分页查询用户
	GetUserList(page, pageSize int) (*respond.UserListRespond, error)
}

// PostService 帖子业务接口
type PostService interface {
	// CreatePost 发帖，附带类型化附加信息和图片
	CreatePost(ctx context.Context, userID uint, req request.CreatePostRequest, files []io.Reader) (uint, error)
	// UpdatePost 修改帖子，仅作者可操作
	UpdatePost(ctx context.Context, postID, userID uint, req request.UpdatePostRequest, files []io.Reader) error
	// DeletePost 删除帖子及其评论、附加信息和图片
	DeletePost(ctx context.Context, postID, userID uint) error
	// ToggleAnswerComplete 问答帖切换采纳完成状态
	ToggleAnswerComplete(postID, userID uint) error
	// GetPostByID 查看帖子详情并累计浏览量
	GetPostByID(ctx context.Context, postID uint) (*respond.PostRespond, error)
	// ListPostsByType 按类型分页查询帖子
	ListPostsByType(postType string, page, pageSize int) (*respond.PostListRespond, error)
	// ListPostsByUser 查询用户发布的帖子
	ListPostsByUser(userID uint) ([]respond.PostSummaryRespond, error)
}

// CommentService 评论业务接口
type CommentService interface {
	// CreateComment 发表回答、评论或回复
	CreateComment(userID uint, commentType string, parentID uint, content string) (uint, error)
	// UpdateComment 修改评论内容，仅作者可操作
	UpdateComment(userID, commentID uint, content string) error
	// DeleteComment 删除评论及其回复
	DeleteComment(userID, commentID uint) error
	// GetCommentsByPost 查询帖子的评论树
	GetCommentsByPost(postID uint) ([]respond.CommentRespond, error)
}

// ParticipationService 组队申请业务接口
type ParticipationService interface {
	// CreateParticipation 申请加入组队
	CreateParticipation(userID, postID uint) (uint, error)
	// UpdateParticipation 帖主审批申请
	UpdateParticipation(id, actorID uint, status string) error
	// DeleteParticipation 撤回自己的申请
	DeleteParticipation(id, userID uint) error
	// GetParticipationsByPost 帖主查看帖子收到的申请
	GetParticipationsByPost(postID, actorID uint) ([]respond.ParticipationRespond, error)
	// GetParticipationsByUser 查看用户发出的申请
	GetParticipationsByUser(userID uint) ([]respond.ParticipationRespond, error)
	// CountAccepted 统计已通过的申请数
	CountAccepted(postID uint) (int64, error)
}

// ReactionService 用户行为业务接口（点赞、收藏、关注、举报）
type ReactionService interface {
	// AddReaction 添加行为记录
	AddReaction(userID uint, targetType string, targetID uint, reactionType string) error
	// DeleteReaction 取消行为记录
	DeleteReaction(userID uint, targetType string, targetID uint, reactionType string) error
	// IsReactionExists 查询行为记录是否存在
	IsReactionExists(userID uint, targetType string, targetID uint, reactionType string) (bool, error)
	// CountReactions 统计目标收到的行为数量
	CountReactions(targetType string, targetID uint, reactionType string) (int64, error)
	// GetBookmarkedPosts 查询用户收藏的帖子
	GetBookmarkedPosts(userID uint) ([]respond.PostSummaryRespond, error)
	// GetLikedPosts 查询用户点赞的帖子
	GetLikedPosts(userID uint) ([]respond.PostSummaryRespond, error)
	// GetFollowedUsers 查询用户关注的用户 id 列表
	GetFollowedUsers(userID uint) ([]uint, error)
	// GetReportedPosts 管理端查询被举报的帖子
	GetReportedPosts() ([]respond.PostSummaryRespond, error)
}

// NotificationService 通知业务接口
type NotificationService interface {
	// Notify 异步投递通知，失败不影响主流程
	Notify(senderID, receiverID uint, notifyType model.NotificationType, targetID uint)
	// SendNotification 同步落库一条通知
	SendNotification(senderID, receiverID uint, notifyType model.NotificationType, targetID uint) error
	// GetNotificationList 查询用户收到的通知
	GetNotificationList(receiverID uint) ([]respond.NotificationRespond, error)
	// GetUnreadCount 统计未读通知数
	GetUnreadCount(receiverID uint) (int64, error)
	// MarkRead 标记单条通知已读
	MarkRead(id, receiverID uint) error
	// MarkAllRead 标记全部通知已读
	MarkAllRead(receiverID uint) error
}

// ChatService 私聊业务接口
type ChatService interface {
	// GetOrCreateRoom 获取或创建两人会话
	GetOrCreateRoom(userID, targetID uint) (*respond.ChatRoomRespond, error)
	// GetRoomList 查询用户的会话列表
	GetRoomList(userID uint) ([]respond.ChatRoomRespond, error)
	// DeleteRoom 删除会话及消息
	DeleteRoom(roomID, userID uint) error
	// SendMessage 在会话内发送消息
	SendMessage(roomID, senderID uint, content string) (*respond.ChatMessageRespond, error)
	// GetMessageList 查询会话内消息
	GetMessageList(roomID, userID uint) ([]respond.ChatMessageRespond, error)
	// MarkRead 标记对方消息已读
	MarkRead(roomID, readerID uint) error
	// GetPeerID 返回会话内对方用户 id
	GetPeerID(roomID, userID uint) (uint, error)
}

// AlanService AI 助手业务接口
type AlanService interface {
	// Question 向 AI 助手提问并按类型落库
	Question(ctx context.Context, userID uint, questionType, question string) (*respond.AIAnswerRespond, error)
	// GetRemainingQuota 查询剩余 AI 额度
	GetRemainingQuota(userID uint) (int, error)
}

package repository

import (
	"outspecs_server/internal/model"

	"gorm.io/gorm"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	// FindByID 根据 id 查找用户
	FindByID(id uint) (*model.User, error)
	// FindByUsername 根据用户名查找用户
	FindByUsername(username string) (*model.User, error)
	// FindByProviderID 根据 OAuth 提供方用户标识查找用户
	FindByProviderID(providerID string) (*model.User, error)
	// Create 创建新用户
	Create(user *model.User) error
	// Update 更新用户信息
	Update(user *model.User) error
	// UpdateStatus 更新账号状态
	UpdateStatus(id uint, status string) error
	// UpdateRole 更新用户角色
	UpdateRole(id uint, role string) error
	// DecrementAIQuota 剩余次数大于 0 时减一，返回是否减成功
	DecrementAIQuota(id uint) (bool, error)
	// SoftDelete 软删除用户
	SoftDelete(id uint) error
	// GetUserList 分页获取用户列表（管理端）
	GetUserList(page, pageSize int) ([]model.User, int64, error)
}

// ProfileRepository 用户资料数据访问接口
type ProfileRepository interface {
	// FindByUserID 根据用户 id 查找资料
	FindByUserID(userID uint) (*model.Profile, error)
	// FindByNickname 根据昵称查找资料
	FindByNickname(nickname string) (*model.Profile, error)
	// Create 创建资料
	Create(profile *model.Profile) error
	// Update 更新资料
	Update(profile *model.Profile) error
	// DeleteByUserID 删除指定用户的资料
	DeleteByUserID(userID uint) error
}

// PostRepository 帖子数据访问接口
type PostRepository interface {
	// FindByID 根据 id 查找帖子
	FindByID(id uint) (*model.Post, error)
	// FindByIDs 批量根据 id 查找帖子
	FindByIDs(ids []uint) ([]model.Post, error)
	// Create 创建帖子
	Create(post *model.Post) error
	// Update 更新帖子
	Update(post *model.Post) error
	// Delete 删除帖子
	Delete(id uint) error
	// ListByType 按类型分页查询，按创建时间倒序
	ListByType(postType model.PostType, page, pageSize int) ([]model.Post, int64, error)
	// ListByUser 查询指定用户的所有帖子
	ListByUser(userID uint) ([]model.Post, error)
	// AddViewCount 浏览量加上指定增量
	AddViewCount(id uint, delta int64) error
}

// PostDetailRepository 帖子类型明细数据访问接口
// 覆盖组队/问答/招聘/活动四张明细表和标签表
type PostDetailRepository interface {
	GetTeamInfo(postID uint) (*model.PostTeamInfo, error)
	SaveTeamInfo(info *model.PostTeamInfo) error
	// UpdateTeamStatus 更新组队帖招募状态
	UpdateTeamStatus(postID uint, status string) error
	DeleteTeamInfo(postID uint) error

	GetQnA(postID uint) (*model.PostQnA, error)
	SaveQnA(qna *model.PostQnA) error
	DeleteQnA(postID uint) error

	GetJob(postID uint) (*model.PostJob, error)
	SaveJob(job *model.PostJob) error
	DeleteJob(postID uint) error

	GetHangout(postID uint) (*model.PostHangout, error)
	SaveHangout(hangout *model.PostHangout) error
	DeleteHangout(postID uint) error

	GetTags(postID uint) ([]model.PostTag, error)
	// ReplaceTags 先清空再写入，保证标签与请求一致
	ReplaceTags(postID uint, tags []string) error
	DeleteTags(postID uint) error
}

// ImageRepository 帖子图片数据访问接口
type ImageRepository interface {
	// FindByPostID 查找帖子的所有图片
	FindByPostID(postID uint) ([]model.Image, error)
	// CreateBatch 批量创建图片记录
	CreateBatch(images []model.Image) error
	// DeleteByPostID 删除帖子的所有图片记录
	DeleteByPostID(postID uint) error
}

// CommentRepository 评论数据访问接口
type CommentRepository interface {
	// FindByID 根据 id 查找评论
	FindByID(id uint) (*model.Comment, error)
	// FindByTypeAndParent 查找指定父级下某一类型的全部评论
	FindByTypeAndParent(commentType model.CommentType, parentID uint) ([]model.Comment, error)
	// Create 创建评论
	Create(comment *model.Comment) error
	// UpdateContent 仅更新评论内容
	UpdateContent(id uint, content string) error
	// Delete 删除评论
	Delete(id uint) error
}

// ParticipationRepository 组队申请数据访问接口
type ParticipationRepository interface {
	// FindByID 根据 id 查找申请
	FindByID(id uint) (*model.Participation, error)
	// FindByUserAndPost 查找用户对帖子的申请记录
	FindByUserAndPost(userID, postID uint) (*model.Participation, error)
	// FindByPost 查找帖子收到的全部申请
	FindByPost(postID uint) ([]model.Participation, error)
	// FindByUser 查找用户发出的全部申请
	FindByUser(userID uint) ([]model.Participation, error)
	// CountByPostAndStatuses 统计帖子处于指定状态的申请数
	CountByPostAndStatuses(postID uint, statuses []string) (int64, error)
	// Create 创建申请
	Create(p *model.Participation) error
	// UpdateStatus 更新申请状态
	UpdateStatus(id uint, status string) error
	// Delete 删除申请
	Delete(id uint) error
}

// ReactionRepository 用户行为数据访问接口
type ReactionRepository interface {
	// FindByTuple 按（用户、目标类型、目标、行为类型）四元组查找记录
	FindByTuple(userID uint, targetType model.TargetType, targetID uint, reactionType model.ReactionType) (*model.Reaction, error)
	// Create 创建行为记录
	Create(reaction *model.Reaction) error
	// Delete 删除行为记录
	Delete(id uint) error
	// Count 统计目标收到的某类行为数量
	Count(targetType model.TargetType, targetID uint, reactionType model.ReactionType) (int64, error)
	// ListByUserAndType 查找用户发起的某类行为记录
	ListByUserAndType(userID uint, targetType model.TargetType, reactionType model.ReactionType) ([]model.Reaction, error)
	// ListByType 查找全站某类行为记录（管理端举报列表）
	ListByType(targetType model.TargetType, reactionType model.ReactionType) ([]model.Reaction, error)
}

// NotificationRepository 通知数据访问接口
type NotificationRepository interface {
	// Create 创建通知
	Create(n *model.Notification) error
	// ListByReceiver 查找用户收到的通知，按时间倒序
	ListByReceiver(receiverID uint) ([]model.Notification, error)
	// CountUnread 统计未读通知数
	CountUnread(receiverID uint) (int64, error)
	// MarkRead 将单条通知标记为已读（仅限接收人本人）
	MarkRead(id, receiverID uint) error
	// MarkAllRead 将用户的全部通知标记为已读
	MarkAllRead(receiverID uint) error
}

// ChatRoomRepository 私聊会话数据访问接口
type ChatRoomRepository interface {
	// FindByID 根据 id 查找会话
	FindByID(id uint) (*model.ChatRoom, error)
	// FindByPair 查找两个用户之间的会话，入参无需排序
	FindByPair(userA, userB uint) (*model.ChatRoom, error)
	// Create 创建会话
	Create(room *model.ChatRoom) error
	// UpdateLastMessage 更新会话最近消息 id
	UpdateLastMessage(roomID uint, messageID int64) error
	// ListByUser 查找用户参与的全部会话
	ListByUser(userID uint) ([]model.ChatRoom, error)
	// Delete 删除会话
	Delete(id uint) error
}

// ChatMessageRepository 聊天消息数据访问接口
type ChatMessageRepository interface {
	// FindByID 根据 id 查找消息
	FindByID(id int64) (*model.ChatMessage, error)
	// Create 创建消息
	Create(message *model.ChatMessage) error
	// ListByRoom 查找会话内消息，按 id 升序
	ListByRoom(roomID uint) ([]model.ChatMessage, error)
	// MarkRead 将会话内对方发送的消息全部标记为已读
	MarkRead(roomID, readerID uint) error
	// DeleteByRoom 删除会话内全部消息
	DeleteByRoom(roomID uint) error
}

// Repositories 聚合所有 Repository 实例
// 作为依赖注入的入口，Service 层通过此结构访问数据层
type Repositories struct {
	db *gorm.DB

	User          UserRepository
	Profile       ProfileRepository
	Post          PostRepository
	PostDetail    PostDetailRepository
	Image         ImageRepository
	Comment       CommentRepository
	Participation ParticipationRepository
	Reaction      ReactionRepository
	Notification  NotificationRepository
	ChatRoom      ChatRoomRepository
	ChatMessage   ChatMessageRepository
}

// NewRepositories 基于 GORM 数据库实例创建所有 Repository
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:            db,
		User:          NewUserRepository(db),
		Profile:       NewProfileRepository(db),
		Post:          NewPostRepository(db),
		PostDetail:    NewPostDetailRepository(db),
		Image:         NewImageRepository(db),
		Comment:       NewCommentRepository(db),
		Participation: NewParticipationRepository(db),
		Reaction:      NewReactionRepository(db),
		Notification:  NewNotificationRepository(db),
		ChatRoom:      NewChatRoomRepository(db),
		ChatMessage:   NewChatMessageRepository(db),
	}
}

// Transaction 在数据库事务中执行函数
// 事务内的所有操作要么全部成功，要么全部回滚
// db 为空时（内存实现）直接执行 fn，不提供事务语义
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

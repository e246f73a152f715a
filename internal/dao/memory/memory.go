// Package memory 提供 Repository 接口的内存实现
// 用于单元测试和本地开发，不依赖 MySQL
// 所有实现共享一个 Store，用互斥锁保证并发安全
package memory

import (
	"sync"

	"outspecs_server/internal/dao/mysql/repository"
	"outspecs_server/internal/model"
)

// Store 内存数据存储
type Store struct {
	mu sync.Mutex

	users    map[uint]model.User
	profiles map[uint]model.Profile

	posts     map[uint]model.Post
	teamInfos map[uint]model.PostTeamInfo
	qnas      map[uint]model.PostQnA
	jobs      map[uint]model.PostJob
	hangouts  map[uint]model.PostHangout
	tags      map[uint]model.PostTag
	images    map[uint]model.Image

	comments       map[uint]model.Comment
	participations map[uint]model.Participation
	reactions      map[uint]model.Reaction
	notifications  map[uint]model.Notification

	chatRooms    map[uint]model.ChatRoom
	chatMessages map[int64]model.ChatMessage

	nextUserID          uint
	nextPostID          uint
	nextTagID           uint
	nextImageID         uint
	nextCommentID       uint
	nextParticipationID uint
	nextReactionID      uint
	nextNotificationID  uint
	nextChatRoomID      uint
}

// NewStore 创建空的内存存储
func NewStore() *Store {
	return &Store{
		users:          make(map[uint]model.User),
		profiles:       make(map[uint]model.Profile),
		posts:          make(map[uint]model.Post),
		teamInfos:      make(map[uint]model.PostTeamInfo),
		qnas:           make(map[uint]model.PostQnA),
		jobs:           make(map[uint]model.PostJob),
		hangouts:       make(map[uint]model.PostHangout),
		tags:           make(map[uint]model.PostTag),
		images:         make(map[uint]model.Image),
		comments:       make(map[uint]model.Comment),
		participations: make(map[uint]model.Participation),
		reactions:      make(map[uint]model.Reaction),
		notifications:  make(map[uint]model.Notification),
		chatRooms:      make(map[uint]model.ChatRoom),
		chatMessages:   make(map[int64]model.ChatMessage),
	}
}

// NewRepositories 基于同一个内存存储创建全部 Repository
// 返回的聚合不带数据库实例，Transaction 会直接执行回调
func NewRepositories() *repository.Repositories {
	store := NewStore()
	return &repository.Repositories{
		User:          &userRepository{store: store},
		Profile:       &profileRepository{store: store},
		Post:          &postRepository{store: store},
		PostDetail:    &postDetailRepository{store: store},
		Image:         &imageRepository{store: store},
		Comment:       &commentRepository{store: store},
		Participation: &participationRepository{store: store},
		Reaction:      &reactionRepository{store: store},
		Notification:  &notificationRepository{store: store},
		ChatRoom:      &chatRoomRepository{store: store},
		ChatMessage:   &chatMessageRepository{store: store},
	}
}

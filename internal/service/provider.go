// 本文件实现 Service 层的依赖注入和聚合
package service

import (
	"outspecs_server/internal/config"
	"outspecs_server/internal/dao/mysql/repository"
	alanclient "outspecs_server/internal/infrastructure/alan"
	"outspecs_server/internal/infrastructure/storage"
	"outspecs_server/internal/service/alan"
	"outspecs_server/internal/service/chat"
	"outspecs_server/internal/service/comment"
	"outspecs_server/internal/service/notification"
	"outspecs_server/internal/service/participation"
	"outspecs_server/internal/service/post"
	"outspecs_server/internal/service/reaction"
	"outspecs_server/internal/service/user"
)

// Services 聚合所有 Service 实例
// 作为依赖注入的入口，Handler 层通过 service.Svc 访问各个 Service
type Services struct {
	User          UserService
	Post          PostService
	Comment       CommentService
	Participation ParticipationService
	Reaction      ReactionService
	Notification  NotificationService
	Chat          ChatService
	Alan          AlanService

	// Gateway WebSocket 网关，消息实时推送入口
	Gateway *chat.Gateway

	dispatcher notification.Dispatcher
}

// NewServices 创建并注入所有 Service 实例
// 通知分发器按配置选择进程内通道或 Kafka
func NewServices(cfg *config.Config, repos *repository.Repositories, store storage.ObjectStorage) *Services {
	notificationSvc := notification.NewNotificationService(repos)
	var dispatcher notification.Dispatcher
	if cfg.KafkaConfig.MessageMode == "kafka" {
		dispatcher = notification.NewKafkaDispatcher(&cfg.KafkaConfig, notificationSvc.SendNotification)
	} else {
		dispatcher = notification.NewChannelDispatcher(notificationSvc.SendNotification)
	}
	notificationSvc.SetDispatcher(dispatcher)
	dispatcher.Start()

	userSvc := user.NewUserService(repos, store,
		user.NewRedisTokenStore(),
		user.NewGoogleProvider(&cfg.OAuthConfig),
		cfg.ChatbotConfig.Password)
	postSvc := post.NewPostService(repos, store, post.NewRedisViewCounter())
	commentSvc := comment.NewCommentService(repos)
	participationSvc := participation.NewParticipationService(repos, notificationSvc)
	reactionSvc := reaction.NewReactionService(repos, notificationSvc)
	chatSvc := chat.NewChatService(repos)
	alanSvc := alan.NewAlanService(repos, alanclient.NewClient(&cfg.AlanConfig), userSvc, chatSvc)

	return &Services{
		User:          userSvc,
		Post:          postSvc,
		Comment:       commentSvc,
		Participation: participationSvc,
		Reaction:      reactionSvc,
		Notification:  notificationSvc,
		Chat:          chatSvc,
		Alan:          alanSvc,
		Gateway:       chat.NewGateway(chatSvc),
		dispatcher:    dispatcher,
	}
}

// Close 停止后台分发器，进程退出前调用
func (s *Services) Close() {
	if s.dispatcher != nil {
		s.dispatcher.Stop()
	}
}

// Svc 全局 Services 实例
// Handler 层通过 service.Svc.User.Login() 等方式调用
var Svc *Services

// InitServices 初始化全局 Services 实例
// 应在 main.go 中调用，在 Repository 初始化之后
func InitServices(cfg *config.Config, repos *repository.Repositories, store storage.ObjectStorage) {
	Svc = NewServices(cfg, repos, store)
}

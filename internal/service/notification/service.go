// Package notification 实现站内通知的业务逻辑
// 通知的触发方（组队申请、点赞、关注）通过 Dispatcher 异步投递，
// 投递失败只记录日志，不影响触发方的业务操作
package notification

import (
	"fmt"

	"outspecs_server/internal/dao/mysql/repository"
	"outspecs_server/internal/dto/respond"
	"outspecs_server/internal/model"
	"outspecs_server/pkg/errorx"

	"go.uber.org/zap"
)

// notificationService 通知业务逻辑实现
type notificationService struct {
	repos      *repository.Repositories
	dispatcher Dispatcher
}

// NewNotificationService 构造函数，注入 Repository 依赖
func NewNotificationService(repos *repository.Repositories) *notificationService {
	return &notificationService{repos: repos}
}

// SetDispatcher 注入异步投递器
// 未注入时 Notify 退化为同步投递
func (s *notificationService) SetDispatcher(d Dispatcher) {
	s.dispatcher = d
}

// buildMessage 根据通知类型和发送人昵称渲染通知文案
func buildMessage(notifyType model.NotificationType, nickname string) (string, error) {
	switch notifyType {
	case model.NotifyApply:
		return fmt.Sprintf("%s 申请加入你的队伍", nickname), nil
	case model.NotifyAccepted:
		return fmt.Sprintf("%s 通过了你的组队申请", nickname), nil
	case model.NotifyRejected:
		return fmt.Sprintf("%s 拒绝了你的组队申请", nickname), nil
	case model.NotifyFollow:
		return fmt.Sprintf("%s 关注了你", nickname), nil
	case model.NotifyLikePost:
		return fmt.Sprintf("%s 赞了你的帖子", nickname), nil
	case model.NotifyLikeComment:
		return fmt.Sprintf("%s 赞了你的评论", nickname), nil
	}
	return "", errorx.Newf(errorx.CodeInvalidParam, "未知通知类型 %s", notifyType)
}

// SendNotification 创建一条通知
// 发送人和接收人都必须存在，且发送人必须有资料（文案需要昵称），
// 任一校验失败都不落库
func (s *notificationService) SendNotification(senderID, receiverID uint, notifyType model.NotificationType, targetID uint) error {
	if _, err := s.repos.User.FindByID(senderID); err != nil {
		return err
	}
	if _, err := s.repos.User.FindByID(receiverID); err != nil {
		return err
	}
	profile, err := s.repos.Profile.FindByUserID(senderID)
	if err != nil {
		return err
	}

	message, err := buildMessage(notifyType, profile.Nickname)
	if err != nil {
		return err
	}

	return s.repos.Notification.Create(&model.Notification{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Type:       notifyType,
		TargetID:   targetID,
		Message:    message,
	})
}

// Notify 异步投递一条通知，永不返回错误
// 触发方的业务操作不因通知失败而失败
func (s *notificationService) Notify(senderID, receiverID uint, notifyType model.NotificationType, targetID uint) {
	event := Event{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Type:       notifyType,
		TargetID:   targetID,
	}
	if s.dispatcher != nil {
		s.dispatcher.Enqueue(event)
		return
	}
	if err := s.SendNotification(event.SenderID, event.ReceiverID, event.Type, event.TargetID); err != nil {
		zap.L().Warn("通知投递失败",
			zap.Uint("sender_id", senderID),
			zap.Uint("receiver_id", receiverID),
			zap.String("type", string(notifyType)),
			zap.Error(err))
	}
}

// GetNotificationList 获取用户收到的通知列表
func (s *notificationService) GetNotificationList(receiverID uint) ([]respond.NotificationRespond, error) {
	notifications, err := s.repos.Notification.ListByReceiver(receiverID)
	if err != nil {
		return nil, err
	}
	list := make([]respond.NotificationRespond, 0, len(notifications))
	for _, n := range notifications {
		list = append(list, respond.NotificationRespond{
			ID:        n.ID,
			SenderID:  n.SenderID,
			Type:      string(n.Type),
			TargetID:  n.TargetID,
			Message:   n.Message,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return list, nil
}

// GetUnreadCount 统计用户未读通知数
func (s *notificationService) GetUnreadCount(receiverID uint) (int64, error) {
	return s.repos.Notification.CountUnread(receiverID)
}

// MarkRead 将单条通知标记为已读
func (s *notificationService) MarkRead(id, receiverID uint) error {
	return s.repos.Notification.MarkRead(id, receiverID)
}

// MarkAllRead 将用户的全部通知标记为已读
func (s *notificationService) MarkAllRead(receiverID uint) error {
	return s.repos.Notification.MarkAllRead(receiverID)
}

package repository

import (
	"outspecs_server/internal/model"

	"gorm.io/gorm"
)

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository 创建通知 Repository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Create 创建通知
func (r *notificationRepository) Create(n *model.Notification) error {
	if err := r.db.Create(n).Error; err != nil {
		return wrapDBError(err, "创建通知")
	}
	return nil
}

// ListByReceiver 查找用户收到的通知，按时间倒序
func (r *notificationRepository) ListByReceiver(receiverID uint) ([]model.Notification, error) {
	var list []model.Notification
	if err := r.db.Where("receiver_id = ?", receiverID).
		Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, wrapDBError(err, "查询通知列表")
	}
	return list, nil
}

// CountUnread 统计未读通知数
func (r *notificationRepository) CountUnread(receiverID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Notification{}).
		Where("receiver_id = ? AND is_read = ?", receiverID, false).
		Count(&count).Error; err != nil {
		return 0, wrapDBError(err, "统计未读通知")
	}
	return count, nil
}

// MarkRead 将单条通知标记为已读，仅限接收人本人
func (r *notificationRepository) MarkRead(id, receiverID uint) error {
	if err := r.db.Model(&model.Notification{}).
		Where("id = ? AND receiver_id = ?", id, receiverID).
		Update("is_read", true).Error; err != nil {
		return wrapDBError(err, "标记通知已读")
	}
	return nil
}

// MarkAllRead 将用户的全部通知标记为已读
func (r *notificationRepository) MarkAllRead(receiverID uint) error {
	if err := r.db.Model(&model.Notification{}).
		Where("receiver_id = ? AND is_read = ?", receiverID, false).
		Update("is_read", true).Error; err != nil {
		return wrapDBError(err, "标记全部通知已读")
	}
	return nil
}

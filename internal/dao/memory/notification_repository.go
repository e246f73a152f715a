package memory

import (
	"sort"
	"time"

	"outspecs_server/internal/model"
)

type notificationRepository struct {
	store *Store
}

func (r *notificationRepository) Create(n *model.Notification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.nextNotificationID++
	n.ID = r.store.nextNotificationID
	n.CreatedAt = time.Now()
	n.UpdatedAt = n.CreatedAt
	r.store.notifications[n.ID] = *n
	return nil
}

func (r *notificationRepository) ListByReceiver(receiverID uint) ([]model.Notification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var list []model.Notification
	for _, n := range r.store.notifications {
		if n.ReceiverID == receiverID {
			list = append(list, n)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

func (r *notificationRepository) CountUnread(receiverID uint) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for _, n := range r.store.notifications {
		if n.ReceiverID == receiverID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *notificationRepository) MarkRead(id, receiverID uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	n, ok := r.store.notifications[id]
	if !ok || n.ReceiverID != receiverID {
		return nil
	}
	n.IsRead = true
	r.store.notifications[id] = n
	return nil
}

func (r *notificationRepository) MarkAllRead(receiverID uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, n := range r.store.notifications {
		if n.ReceiverID == receiverID && !n.IsRead {
			n.IsRead = true
			r.store.notifications[id] = n
		}
	}
	return nil
}

package repository

import (
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/domain"
	"gorm.io/gorm"
)

// feedLimit caps the notification feed
const feedLimit = 50

// NotificationRepository handles notification data operations
type NotificationRepository interface {
	Create(notification *domain.Notification) error
	FindByRecipient(recipientUID string) ([]*domain.Notification, error)
	MarkAsRead(id int, recipientUID string) (int64, error)
	CountUnread(recipientUID string) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Create inserts a new notification
func (r *notificationRepository) Create(notification *domain.Notification) error {
	return r.db.Create(notification).Error
}

// FindByRecipient returns the recipient's feed, most recent first,
// capped at 50 entries
func (r *notificationRepository) FindByRecipient(recipientUID string) ([]*domain.Notification, error) {
	var notifications []*domain.Notification
	err := r.db.
		Where("recipient_uid = ?", recipientUID).
		Order("created_at DESC, id DESC").
		Limit(feedLimit).
		Find(&notifications).Error
	return notifications, err
}

// MarkAsRead sets a notification read only when it belongs to the
// recipient. The ownership check is part of the UPDATE predicate, so
// a non-owner's call changes zero rows and leaks nothing about the
// target's existence. Returns rows affected.
func (r *notificationRepository) MarkAsRead(id int, recipientUID string) (int64, error) {
	result := r.db.Model(&domain.Notification{}).
		Where("id = ? AND recipient_uid = ? AND is_read = ?", id, recipientUID, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

// CountUnread returns the recipient's unread notification total
func (r *notificationRepository) CountUnread(recipientUID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Notification{}).
		Where("recipient_uid = ? AND is_read = ?", recipientUID, false).
		Count(&count).Error
	return count, err
}

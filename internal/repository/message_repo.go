package repository

import (
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/domain"
	"gorm.io/gorm"
)

// MessageRepository message data access interface.
// Conversation aggregation lives behind this interface so an
// incremental variant could be substituted without touching callers.
type MessageRepository interface {
	Create(msg *domain.Message) error
	CreateTx(tx *gorm.DB, msg *domain.Message) error
	FindBetween(userUID, otherUID string) ([]*domain.Message, error)
	FindLatestPerCounterpart(userUID string) ([]*domain.Message, error)
	MarkConversationRead(recipientUID, counterpartUID string) (int64, error)
	CountUnread(userUID string) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create appends a new message
func (r *messageRepository) Create(msg *domain.Message) error {
	return r.db.Create(msg).Error
}

// CreateTx appends a new message inside an existing transaction
func (r *messageRepository) CreateTx(tx *gorm.DB, msg *domain.Message) error {
	return tx.Create(msg).Error
}

// FindBetween returns every message exchanged between two users in
// either direction, oldest first. Equal timestamps break by id.
func (r *messageRepository) FindBetween(userUID, otherUID string) ([]*domain.Message, error) {
	var messages []*domain.Message
	err := r.db.
		Where("(sender_uid = ? AND recipient_uid = ?) OR (sender_uid = ? AND recipient_uid = ?)",
			userUID, otherUID, otherUID, userUID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	return messages, err
}

// FindLatestPerCounterpart returns the single most recent message per
// distinct counterpart of the given user, most recent first.
//
// All messages touching the user are scanned newest-first and the
// first one seen per counterpart wins. Done in Go rather than with a
// vendor-specific DISTINCT ON so the same code runs on MySQL and the
// sqlite test driver.
func (r *messageRepository) FindLatestPerCounterpart(userUID string) ([]*domain.Message, error) {
	var messages []*domain.Message
	err := r.db.
		Where("sender_uid = ? OR recipient_uid = ?", userUID, userUID).
		Order("created_at DESC, id DESC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	latest := make([]*domain.Message, 0, len(messages))
	for _, m := range messages {
		other := m.SenderUID
		if other == userUID {
			other = m.RecipientUID
		}
		if seen[other] {
			continue
		}
		seen[other] = true
		latest = append(latest, m)
	}
	return latest, nil
}

// MarkConversationRead flips every unread message from counterpart to
// recipient to read. A blind UPDATE predicate: idempotent, race-free,
// and it never touches the reverse direction. Returns rows affected.
func (r *messageRepository) MarkConversationRead(recipientUID, counterpartUID string) (int64, error) {
	result := r.db.Model(&domain.Message{}).
		Where("sender_uid = ? AND recipient_uid = ? AND is_read = ?", counterpartUID, recipientUID, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

// CountUnread returns the user's unread message total across all counterparts
func (r *messageRepository) CountUnread(userUID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Message{}).
		Where("recipient_uid = ? AND is_read = ?", userUID, false).
		Count(&count).Error
	return count, err
}

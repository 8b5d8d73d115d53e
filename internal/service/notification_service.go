package service

import (
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/domain"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/repository"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/pkg/logger"
)

// Notifier appends alerts as a side effect of other operations.
// Emission is best-effort: a failed append is logged, never
// propagated, so it cannot fail the caller's primary write.
type Notifier interface {
	Emit(recipientUID, text, relatedID, notificationType string)
}

// NotificationService notification feed business logic
type NotificationService interface {
	Notifier
	List(recipientUID string) ([]*domain.NotificationResponse, error)
	MarkAsRead(id int, recipientUID string) error
	CountUnread(recipientUID string) (int64, error)
}

type notificationService struct {
	repo repository.NotificationRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

// Emit appends one notification. The triggering write has already
// committed by the time this runs; a crash in between leaves a
// message without its notification, which is an accepted gap.
func (s *notificationService) Emit(recipientUID, text, relatedID, notificationType string) {
	n := &domain.Notification{
		RecipientUID: recipientUID,
		Message:      text,
		RelatedID:    relatedID,
		Type:         notificationType,
	}
	if err := s.repo.Create(n); err != nil {
		logger.GetLogger().Error().
			Err(err).
			Str("recipient_uid", recipientUID).
			Str("type", notificationType).
			Msg("notification append failed")
	}
}

// List returns the recipient's feed, most recent first, capped at 50
func (s *notificationService) List(recipientUID string) ([]*domain.NotificationResponse, error) {
	notifications, err := s.repo.FindByRecipient(recipientUID)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = n.ToResponse()
	}
	return responses, nil
}

// MarkAsRead marks one notification read. Ownership is enforced by
// the repository's UPDATE predicate; a call against someone else's
// notification (or an already-read one) changes nothing and still
// succeeds, so nothing is leaked about the target.
func (s *notificationService) MarkAsRead(id int, recipientUID string) error {
	_, err := s.repo.MarkAsRead(id, recipientUID)
	return err
}

// CountUnread returns the unread notification total, derived from
// stored rows at call time
func (s *notificationService) CountUnread(recipientUID string) (int64, error) {
	return s.repo.CountUnread(recipientUID)
}

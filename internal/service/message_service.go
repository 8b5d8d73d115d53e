package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/common"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/domain"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/repository"
)

// fallbackName is substituted when a sender's display name cannot be
// resolved; a missing name must never fail the send.
const fallbackName = "Someone"

// unknownCounterpart labels conversation rows whose counterpart no
// longer resolves
const unknownCounterpart = "Unknown User"

// MessageService business logic for direct messages
type MessageService interface {
	Send(senderUID string, req *domain.SendMessageRequest) (*domain.MessageResponse, error)
	ListBetween(userUID, otherUID string) ([]*domain.MessageResponse, error)
	ListConversations(userUID string) ([]*domain.ConversationSummary, error)
	MarkConversationRead(recipientUID, counterpartUID string) error
	CountUnread(userUID string) (int64, error)
}

type messageService struct {
	repo     repository.MessageRepository
	userRepo repository.UserRepository
	notifier Notifier
}

// NewMessageService creates a new MessageService
func NewMessageService(repo repository.MessageRepository, userRepo repository.UserRepository, notifier Notifier) MessageService {
	return &messageService{
		repo:     repo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

// Send appends a message and emits a message_received notification to
// the recipient. The notification is best-effort; only the message
// write itself can fail the operation. Sending to oneself is allowed.
func (s *messageService) Send(senderUID string, req *domain.SendMessageRequest) (*domain.MessageResponse, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, common.ErrEmptyMessage
	}

	recipient, err := s.userRepo.FindByUID(req.RecipientUID)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, common.ErrRecipientNotFound
	}

	msg := &domain.Message{
		SenderUID:    senderUID,
		RecipientUID: req.RecipientUID,
		Content:      req.Content,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.Create(msg); err != nil {
		return nil, err
	}

	senderName := s.resolveName(senderUID)
	s.notifier.Emit(
		req.RecipientUID,
		fmt.Sprintf("New message from %s", senderName),
		senderUID,
		domain.NotificationMessageReceived,
	)

	return msg.ToResponse(), nil
}

// ListBetween returns the full thread with one counterpart, oldest first
func (s *messageService) ListBetween(userUID, otherUID string) ([]*domain.MessageResponse, error) {
	messages, err := s.repo.FindBetween(userUID, otherUID)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.MessageResponse, len(messages))
	for i, m := range messages {
		responses[i] = m.ToResponse()
	}
	return responses, nil
}

// ListConversations derives one summary per counterpart, most recent
// activity first. A row is unread only when its last message was sent
// TO the user and is still unread; the user's own outgoing last
// message never shows as unread.
func (s *messageService) ListConversations(userUID string) ([]*domain.ConversationSummary, error) {
	latest, err := s.repo.FindLatestPerCounterpart(userUID)
	if err != nil {
		return nil, err
	}

	summaries := make([]*domain.ConversationSummary, 0, len(latest))
	for _, m := range latest {
		other := m.SenderUID
		if other == userUID {
			other = m.RecipientUID
		}

		name, photo := unknownCounterpart, ""
		if user, err := s.userRepo.FindByUID(other); err == nil && user != nil {
			name, photo = user.DisplayName, user.PhotoURL
		}

		summaries = append(summaries, &domain.ConversationSummary{
			OtherUID:   other,
			OtherName:  name,
			OtherPhoto: photo,
			Content:    m.Content,
			SenderUID:  m.SenderUID,
			IsUnread:   m.RecipientUID == userUID && !m.IsRead,
			CreatedAt:  m.CreatedAt.Format(time.RFC3339),
		})
	}
	return summaries, nil
}

// MarkConversationRead marks every unread message from the counterpart
// to the recipient as read. Idempotent.
func (s *messageService) MarkConversationRead(recipientUID, counterpartUID string) error {
	_, err := s.repo.MarkConversationRead(recipientUID, counterpartUID)
	return err
}

// CountUnread returns the user's unread message total
func (s *messageService) CountUnread(userUID string) (int64, error) {
	return s.repo.CountUnread(userUID)
}

// resolveName looks up a display name, degrading to the fallback on
// any miss or error
func (s *messageService) resolveName(uid string) string {
	user, err := s.userRepo.FindByUID(uid)
	if err != nil || user == nil || user.DisplayName == "" {
		return fallbackName
	}
	return user.DisplayName
}

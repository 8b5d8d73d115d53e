package service

import (
	"errors"
	"testing"
	"time"

	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockNotificationRepository is a mock implementation of NotificationRepository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(n *domain.Notification) error {
	args := m.Called(n)
	return args.Error(0)
}

func (m *MockNotificationRepository) FindByRecipient(recipientUID string) ([]*domain.Notification, error) {
	args := m.Called(recipientUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkAsRead(id int, recipientUID string) (int64, error) {
	args := m.Called(id, recipientUID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(recipientUID string) (int64, error) {
	args := m.Called(recipientUID)
	return args.Get(0).(int64), args.Error(1)
}

func TestEmit(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewNotificationService(repo)

	repo.On("Create", mock.MatchedBy(func(n *domain.Notification) bool {
		return n.RecipientUID == "bob" &&
			n.Message == "New message from Alice" &&
			n.RelatedID == "alice" &&
			n.Type == domain.NotificationMessageReceived
	})).Return(nil)

	svc.Emit("bob", "New message from Alice", "alice", domain.NotificationMessageReceived)

	repo.AssertExpectations(t)
}

func TestEmit_SwallowsRepositoryError(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewNotificationService(repo)

	repo.On("Create", mock.Anything).Return(errors.New("insert failed"))

	// must not panic or surface the error to the caller
	svc.Emit("bob", "text", "rel", domain.NotificationRequestReceived)

	repo.AssertExpectations(t)
}

func TestNotificationList(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewNotificationService(repo)

	repo.On("FindByRecipient", "alice").Return([]*domain.Notification{
		{ID: 2, RecipientUID: "alice", Message: "newer", Type: domain.NotificationMessageReceived, CreatedAt: time.Now()},
		{ID: 1, RecipientUID: "alice", Message: "older", Type: domain.NotificationRequestReceived, CreatedAt: time.Now().Add(-time.Hour)},
	}, nil)

	feed, err := svc.List("alice")

	assert.NoError(t, err)
	assert.Len(t, feed, 2)
	assert.Equal(t, "newer", feed[0].Message)
}

func TestNotificationMarkAsRead_NoopStillSucceeds(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewNotificationService(repo)

	// zero rows affected: wrong owner, missing id, or already read
	repo.On("MarkAsRead", 42, "mallory").Return(int64(0), nil)

	err := svc.MarkAsRead(42, "mallory")

	assert.NoError(t, err)
}

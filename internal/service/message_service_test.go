package service

import (
	"errors"
	"testing"
	"time"

	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/common"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockMessageRepository is a mock implementation of MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(msg *domain.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockMessageRepository) CreateTx(tx *gorm.DB, msg *domain.Message) error {
	args := m.Called(tx, msg)
	return args.Error(0)
}

func (m *MockMessageRepository) FindBetween(userUID, otherUID string) ([]*domain.Message, error) {
	args := m.Called(userUID, otherUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Message), args.Error(1)
}

func (m *MockMessageRepository) FindLatestPerCounterpart(userUID string) ([]*domain.Message, error) {
	args := m.Called(userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Message), args.Error(1)
}

func (m *MockMessageRepository) MarkConversationRead(recipientUID, counterpartUID string) (int64, error) {
	args := m.Called(recipientUID, counterpartUID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMessageRepository) CountUnread(userUID string) (int64, error) {
	args := m.Called(userUID)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUID(uid string) (*domain.User, error) {
	args := m.Called(uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByDisplayName(name string) (*domain.User, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindAll() ([]*domain.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByDisplayName(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Update(user *domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) SetSuspended(uid string, suspended bool) error {
	args := m.Called(uid, suspended)
	return args.Error(0)
}

// MockNotifier records emitted notifications
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Emit(recipientUID, text, relatedID, notificationType string) {
	m.Called(recipientUID, text, relatedID, notificationType)
}

func TestSend(t *testing.T) {
	msgRepo := new(MockMessageRepository)
	userRepo := new(MockUserRepository)
	notifier := new(MockNotifier)
	svc := NewMessageService(msgRepo, userRepo, notifier)

	userRepo.On("FindByUID", "bob").Return(&domain.User{UID: "bob", DisplayName: "Bob"}, nil)
	userRepo.On("FindByUID", "alice").Return(&domain.User{UID: "alice", DisplayName: "Alice"}, nil)
	msgRepo.On("Create", mock.AnythingOfType("*domain.Message")).Return(nil)
	notifier.On("Emit", "bob", "New message from Alice", "alice", domain.NotificationMessageReceived).Return()

	result, err := svc.Send("alice", &domain.SendMessageRequest{RecipientUID: "bob", Content: "hello"})

	assert.NoError(t, err)
	assert.Equal(t, "hello", result.Content)
	assert.Equal(t, "alice", result.SenderUID)
	assert.Equal(t, "bob", result.RecipientUID)
	notifier.AssertExpectations(t)
}

func TestSend_EmptyContent(t *testing.T) {
	msgRepo := new(MockMessageRepository)
	userRepo := new(MockUserRepository)
	notifier := new(MockNotifier)
	svc := NewMessageService(msgRepo, userRepo, notifier)

	_, err := svc.Send("alice", &domain.SendMessageRequest{RecipientUID: "bob", Content: "   \n\t "})

	assert.ErrorIs(t, err, common.ErrEmptyMessage)
	msgRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSend_RecipientNotFound(t *testing.T) {
	msgRepo := new(MockMessageRepository)
	userRepo := new(MockUserRepository)
	notifier := new(MockNotifier)
	svc := NewMessageService(msgRepo, userRepo, notifier)

	userRepo.On("FindByUID", "ghost").Return(nil, nil)

	_, err := svc.Send("alice", &domain.SendMessageRequest{RecipientUID: "ghost", Content: "hello"})

	assert.ErrorIs(t, err, common.ErrRecipientNotFound)
	msgRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSend_SenderNameFallsBack(t *testing.T) {
	msgRepo := new(MockMessageRepository)
	userRepo := new(MockUserRepository)
	notifier := new(MockNotifier)
	svc := NewMessageService(msgRepo, userRepo, notifier)

	userRepo.On("FindByUID", "bob").Return(&domain.User{UID: "bob"}, nil)
	// sender lookup fails; the send must still succeed with the fallback
	userRepo.On("FindByUID", "alice").Return(nil, errors.New("db down"))
	msgRepo.On("Create", mock.AnythingOfType("*domain.Message")).Return(nil)
	notifier.On("Emit", "bob", "New message from Someone", "alice", domain.NotificationMessageReceived).Return()

	result, err := svc.Send("alice", &domain.SendMessageRequest{RecipientUID: "bob", Content: "hi"})

	assert.NoError(t, err)
	assert.NotNil(t, result)
	notifier.AssertExpectations(t)
}

func TestSend_SelfMessagingAllowed(t *testing.T) {
	msgRepo := new(MockMessageRepository)
	userRepo := new(MockUserRepository)
	notifier := new(MockNotifier)
	svc := NewMessageService(msgRepo, userRepo, notifier)

	userRepo.On("FindByUID", "alice").Return(&domain.User{UID: "alice", DisplayName: "Alice"}, nil)
	msgRepo.On("Create", mock.AnythingOfType("*domain.Message")).Return(nil)
	notifier.On("Emit", "alice", "New message from Alice", "alice", domain.NotificationMessageReceived).Return()

	result, err := svc.Send("alice", &domain.SendMessageRequest{RecipientUID: "alice", Content: "note to self"})

	assert.NoError(t, err)
	assert.Equal(t, "alice", result.RecipientUID)
}

func TestListConversations(t *testing.T) {
	msgRepo := new(MockMessageRepository)
	userRepo := new(MockUserRepository)
	notifier := new(MockNotifier)
	svc := NewMessageService(msgRepo, userRepo, notifier)

	now := time.Now()
	msgRepo.On("FindLatestPerCounterpart", "alice").Return([]*domain.Message{
		{ID: 2, SenderUID: "bob", RecipientUID: "alice", Content: "hey", IsRead: false, CreatedAt: now},
		{ID: 1, SenderUID: "alice", RecipientUID: "carol", Content: "sent by me", IsRead: false, CreatedAt: now.Add(-time.Hour)},
	}, nil)
	userRepo.On("FindByUID", "bob").Return(&domain.User{UID: "bob", DisplayName: "Bob", PhotoURL: "bob.png"}, nil)
	userRepo.On("FindByUID", "carol").Return(&domain.User{UID: "carol", DisplayName: "Carol"}, nil)

	summaries, err := svc.ListConversations("alice")

	assert.NoError(t, err)
	assert.Len(t, summaries, 2)

	assert.Equal(t, "bob", summaries[0].OtherUID)
	assert.Equal(t, "Bob", summaries[0].OtherName)
	assert.Equal(t, "bob.png", summaries[0].OtherPhoto)
	assert.True(t, summaries[0].IsUnread)

	// the user's own unread outgoing message never shows as unread
	assert.Equal(t, "carol", summaries[1].OtherUID)
	assert.False(t, summaries[1].IsUnread)
}

func TestListConversations_UnknownCounterpart(t *testing.T) {
	msgRepo := new(MockMessageRepository)
	userRepo := new(MockUserRepository)
	notifier := new(MockNotifier)
	svc := NewMessageService(msgRepo, userRepo, notifier)

	msgRepo.On("FindLatestPerCounterpart", "alice").Return([]*domain.Message{
		{ID: 1, SenderUID: "deleted", RecipientUID: "alice", Content: "hi", CreatedAt: time.Now()},
	}, nil)
	userRepo.On("FindByUID", "deleted").Return(nil, nil)

	summaries, err := svc.ListConversations("alice")

	assert.NoError(t, err)
	assert.Len(t, summaries, 1)
	assert.Equal(t, "Unknown User", summaries[0].OtherName)
}

func TestMarkConversationRead(t *testing.T) {
	msgRepo := new(MockMessageRepository)
	userRepo := new(MockUserRepository)
	notifier := new(MockNotifier)
	svc := NewMessageService(msgRepo, userRepo, notifier)

	msgRepo.On("MarkConversationRead", "alice", "bob").Return(int64(3), nil)

	err := svc.MarkConversationRead("alice", "bob")

	assert.NoError(t, err)
	msgRepo.AssertExpectations(t)
}

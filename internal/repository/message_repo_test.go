package repository

import (
	"testing"
	"time"

	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/domain"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Message{}, &domain.Notification{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func seedMessage(t *testing.T, db *gorm.DB, sender, recipient, content string, at time.Time, read bool) *domain.Message {
	t.Helper()
	msg := &domain.Message{
		SenderUID:    sender,
		RecipientUID: recipient,
		Content:      content,
		IsRead:       read,
		CreatedAt:    at,
	}
	if err := db.Create(msg).Error; err != nil {
		t.Fatalf("failed to seed message: %v", err)
	}
	return msg
}

func TestFindBetween(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	seedMessage(t, db, "alice", "bob", "first", base, false)
	seedMessage(t, db, "bob", "alice", "second", base.Add(time.Minute), false)
	seedMessage(t, db, "alice", "bob", "third", base.Add(2*time.Minute), false)
	// unrelated conversation must not leak in
	seedMessage(t, db, "alice", "carol", "other thread", base.Add(3*time.Minute), false)

	messages, err := repo.FindBetween("alice", "bob")
	assert.NoError(t, err)
	assert.Len(t, messages, 3)
	assert.Equal(t, "first", messages[0].Content)
	assert.Equal(t, "second", messages[1].Content)
	assert.Equal(t, "third", messages[2].Content)
}

func TestFindBetween_EqualTimestampsOrderByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	m1 := seedMessage(t, db, "alice", "bob", "a", at, false)
	m2 := seedMessage(t, db, "bob", "alice", "b", at, false)

	messages, err := repo.FindBetween("alice", "bob")
	assert.NoError(t, err)
	assert.Len(t, messages, 2)
	assert.Equal(t, m1.ID, messages[0].ID)
	assert.Equal(t, m2.ID, messages[1].ID)
}

func TestFindLatestPerCounterpart(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	seedMessage(t, db, "alice", "bob", "old to bob", base, true)
	seedMessage(t, db, "bob", "alice", "latest with bob", base.Add(time.Hour), false)
	seedMessage(t, db, "carol", "alice", "old from carol", base.Add(2*time.Hour), true)
	seedMessage(t, db, "alice", "carol", "latest with carol", base.Add(3*time.Hour), false)

	latest, err := repo.FindLatestPerCounterpart("alice")
	assert.NoError(t, err)

	// one entry per counterpart, most recent conversation first
	assert.Len(t, latest, 2)
	assert.Equal(t, "latest with carol", latest[0].Content)
	assert.Equal(t, "latest with bob", latest[1].Content)
}

func TestFindLatestPerCounterpart_DirectionIrrelevant(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	// the newest message in the thread was sent BY alice, it must
	// still represent the bob conversation
	seedMessage(t, db, "bob", "alice", "from bob", base, false)
	sent := seedMessage(t, db, "alice", "bob", "reply from alice", base.Add(time.Minute), false)

	latest, err := repo.FindLatestPerCounterpart("alice")
	assert.NoError(t, err)
	assert.Len(t, latest, 1)
	assert.Equal(t, sent.ID, latest[0].ID)
}

func TestFindLatestPerCounterpart_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)

	latest, err := repo.FindLatestPerCounterpart("nobody")
	assert.NoError(t, err)
	assert.Empty(t, latest)
}

func TestMarkConversationRead(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	seedMessage(t, db, "bob", "alice", "one", base, false)
	seedMessage(t, db, "bob", "alice", "two", base.Add(time.Minute), false)
	// alice's own outbound message must stay untouched
	outbound := seedMessage(t, db, "alice", "bob", "mine", base.Add(2*time.Minute), false)
	// a different sender's message must stay untouched
	seedMessage(t, db, "carol", "alice", "from carol", base.Add(3*time.Minute), false)

	affected, err := repo.MarkConversationRead("alice", "bob")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	count, err := repo.CountUnread("alice")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count) // carol's message still unread

	var reloaded domain.Message
	assert.NoError(t, db.First(&reloaded, outbound.ID).Error)
	assert.False(t, reloaded.IsRead)
}

func TestMarkConversationRead_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)

	seedMessage(t, db, "bob", "alice", "hello", time.Now(), false)

	affected, err := repo.MarkConversationRead("alice", "bob")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	// second call finds nothing left to flip
	affected, err = repo.MarkConversationRead("alice", "bob")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestCountUnread(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	seedMessage(t, db, "bob", "alice", "unread 1", base, false)
	seedMessage(t, db, "carol", "alice", "unread 2", base, false)
	seedMessage(t, db, "bob", "alice", "already read", base, true)
	seedMessage(t, db, "alice", "bob", "sent by alice", base, false)

	count, err := repo.CountUnread("alice")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

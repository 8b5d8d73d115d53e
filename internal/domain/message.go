package domain

import "time"

// Message represents one directed message between two users.
// Immutable once created except for the read flag, which only
// ever transitions unread -> read.
type Message struct {
	ID           int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SenderUID    string    `gorm:"column:sender_uid;size:255;index" json:"sender_uid"`
	RecipientUID string    `gorm:"column:recipient_uid;size:255;index" json:"recipient_uid"`
	Content      string    `gorm:"column:content;type:text" json:"content"`
	IsRead       bool      `gorm:"column:is_read;default:false" json:"is_read"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName returns the table name
func (Message) TableName() string {
	return "messages"
}

// SendMessageRequest represents a send message request
type SendMessageRequest struct {
	RecipientUID string `json:"recipient_uid" binding:"required"`
	Content      string `json:"content" binding:"required"`
}

// MessageResponse represents a message in API responses
type MessageResponse struct {
	ID           int    `json:"id"`
	SenderUID    string `json:"sender_uid"`
	RecipientUID string `json:"recipient_uid"`
	Content      string `json:"content"`
	IsRead       bool   `json:"is_read"`
	CreatedAt    string `json:"created_at"`
}

// ToResponse converts Message to MessageResponse
func (m *Message) ToResponse() *MessageResponse {
	return &MessageResponse{
		ID:           m.ID,
		SenderUID:    m.SenderUID,
		RecipientUID: m.RecipientUID,
		Content:      m.Content,
		IsRead:       m.IsRead,
		CreatedAt:    m.CreatedAt.Format(time.RFC3339),
	}
}

// ConversationSummary is a derived row: the most recent message
// exchanged with one counterpart, plus the counterpart's identity.
// Never persisted; recomputed on every fetch.
type ConversationSummary struct {
	OtherUID    string `json:"other_uid"`
	OtherName   string `json:"other_name"`
	OtherPhoto  string `json:"other_photo"`
	Content     string `json:"content"`
	SenderUID   string `json:"sender_uid"`
	IsUnread    bool   `json:"is_unread"`
	CreatedAt   string `json:"created_at"`
}

// UnreadCountResponse scalar unread counter
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

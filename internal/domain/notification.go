package domain

import "time"

// Notification types. RelatedID is polymorphic: a sender uid for
// message_received, a request id for request_received, a listing id
// for the moderation kinds.
const (
	NotificationMessageReceived = "message_received"
	NotificationRequestReceived = "request_received"
	NotificationListingApproved = "listing_approved"
	NotificationListingRejected = "listing_rejected"
)

// Notification represents one alert delivered to a single recipient.
// Its read flag is independent of the message or request it references.
type Notification struct {
	ID           int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RecipientUID string    `gorm:"column:recipient_uid;size:255;index" json:"recipient_uid"`
	Message      string    `gorm:"column:message;type:text" json:"message"`
	RelatedID    string    `gorm:"column:related_id;size:255" json:"related_id"`
	Type         string    `gorm:"column:type;size:50" json:"type"`
	IsRead       bool      `gorm:"column:is_read;default:false" json:"is_read"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName returns the table name
func (Notification) TableName() string {
	return "notifications"
}

// NotificationResponse represents a notification in API responses
type NotificationResponse struct {
	ID        int    `json:"id"`
	Message   string `json:"message"`
	RelatedID string `json:"related_id"`
	Type      string `json:"type"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

// ToResponse converts Notification to NotificationResponse
func (n *Notification) ToResponse() *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID,
		Message:   n.Message,
		RelatedID: n.RelatedID,
		Type:      n.Type,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}

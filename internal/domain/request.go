package domain

import "time"

// Request status values
const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
	RequestStatusDeclined = "declined"
)

// Request is a service inquiry from a seeker to a provider.
// Creating one also appends a synthesized message and a
// request_received notification.
type Request struct {
	ID          int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ServiceID   int       `gorm:"column:service_id;index" json:"service_id"`
	SeekerUID   string    `gorm:"column:seeker_uid;size:255;index" json:"seeker_uid"`
	SeekerName  string    `gorm:"column:seeker_name;size:255" json:"seeker_name"`
	SeekerEmail string    `gorm:"column:seeker_email;size:255" json:"seeker_email"`
	ProviderUID string    `gorm:"column:provider_uid;size:255;index" json:"provider_uid"`
	Message     string    `gorm:"column:message;type:text" json:"message"`
	Status      string    `gorm:"column:status;size:50;default:pending" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName returns the table name
func (Request) TableName() string {
	return "requests"
}

// CreateRequestRequest service inquiry payload
type CreateRequestRequest struct {
	ServiceID   int    `json:"service_id" binding:"required"`
	ProviderUID string `json:"provider_uid" binding:"required"`
	SeekerEmail string `json:"seeker_email"`
	Message     string `json:"message"`
}

// RequestResponse represents a request in API responses
type RequestResponse struct {
	ID          int    `json:"id"`
	ServiceID   int    `json:"service_id"`
	SeekerUID   string `json:"seeker_uid"`
	SeekerName  string `json:"seeker_name"`
	SeekerEmail string `json:"seeker_email,omitempty"`
	ProviderUID string `json:"provider_uid"`
	Message     string `json:"message,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// ToResponse converts Request to RequestResponse
func (r *Request) ToResponse() *RequestResponse {
	return &RequestResponse{
		ID:          r.ID,
		ServiceID:   r.ServiceID,
		SeekerUID:   r.SeekerUID,
		SeekerName:  r.SeekerName,
		SeekerEmail: r.SeekerEmail,
		ProviderUID: r.ProviderUID,
		Message:     r.Message,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
}

package domain

import "time"

// Listing status values
const (
	ListingStatusPending  = "pending"
	ListingStatusApproved = "approved"
	ListingStatusRejected = "rejected"
)

// Listing represents a posted service offering
type Listing struct {
	ID               int        `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProviderUID      string     `gorm:"column:provider_uid;size:255;index" json:"provider_uid"`
	Title            string     `gorm:"column:title;size:255" json:"title"`
	Category         string     `gorm:"column:category;size:50;index" json:"category"`
	ShortDescription string     `gorm:"column:short_description;type:text" json:"short_description"`
	LongDescription  string     `gorm:"column:long_description;type:text" json:"long_description"`
	DeliveryMode     string     `gorm:"column:delivery_mode;size:50" json:"delivery_mode"`
	CompensationType string     `gorm:"column:compensation_type;size:50" json:"compensation_type"`
	Price            float64    `gorm:"column:price" json:"price"`
	Tags             []string   `gorm:"column:tags;serializer:json" json:"tags,omitempty"`
	TargetBatches    []string   `gorm:"column:target_batches;serializer:json" json:"target_batches,omitempty"`
	Status           string     `gorm:"column:status;size:50;default:pending;index" json:"status"`
	ModerationReason string     `gorm:"column:moderation_reason;type:text" json:"moderation_reason,omitempty"`
	ModeratedAt      *time.Time `gorm:"column:moderated_at" json:"moderated_at,omitempty"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName returns the table name
func (Listing) TableName() string {
	return "services"
}

// CreateListingRequest listing creation payload
type CreateListingRequest struct {
	Title            string   `json:"title" binding:"required,max=255"`
	Category         string   `json:"category" binding:"required"`
	ShortDescription string   `json:"short_description" binding:"required"`
	LongDescription  string   `json:"long_description"`
	DeliveryMode     string   `json:"delivery_mode"`
	CompensationType string   `json:"compensation_type"`
	Price            float64  `json:"price" binding:"gte=0"`
	Tags             []string `json:"tags"`
	TargetBatches    []string `json:"target_batches"`
}

// SetListingStatusRequest admin moderation payload
type SetListingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
	Reason string `json:"reason"`
}

// ListingResponse represents a listing in API responses,
// provider identity resolved at read time
type ListingResponse struct {
	ID               int      `json:"id"`
	ProviderUID      string   `json:"provider_uid"`
	ProviderName     string   `json:"provider_name,omitempty"`
	ProviderPhoto    string   `json:"provider_photo,omitempty"`
	Title            string   `json:"title"`
	Category         string   `json:"category"`
	ShortDescription string   `json:"short_description"`
	LongDescription  string   `json:"long_description,omitempty"`
	DeliveryMode     string   `json:"delivery_mode,omitempty"`
	CompensationType string   `json:"compensation_type,omitempty"`
	Price            float64  `json:"price"`
	Tags             []string `json:"tags,omitempty"`
	TargetBatches    []string `json:"target_batches,omitempty"`
	Status           string   `json:"status"`
	ModerationReason string   `json:"moderation_reason,omitempty"`
	CreatedAt        string   `json:"created_at"`
}

// ToResponse converts Listing to ListingResponse
func (l *Listing) ToResponse() *ListingResponse {
	return &ListingResponse{
		ID:               l.ID,
		ProviderUID:      l.ProviderUID,
		Title:            l.Title,
		Category:         l.Category,
		ShortDescription: l.ShortDescription,
		LongDescription:  l.LongDescription,
		DeliveryMode:     l.DeliveryMode,
		CompensationType: l.CompensationType,
		Price:            l.Price,
		Tags:             l.Tags,
		TargetBatches:    l.TargetBatches,
		Status:           l.Status,
		ModerationReason: l.ModerationReason,
		CreatedAt:        l.CreatedAt.Format(time.RFC3339),
	}
}

package domain

import "time"

// User roles
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// User represents a registered campus member
type User struct {
	UID            string    `gorm:"column:uid;primaryKey;size:255" json:"uid"`
	Email          string    `gorm:"column:email;size:255;uniqueIndex" json:"email"`
	DisplayName    string    `gorm:"column:display_name;size:255" json:"display_name"`
	PhotoURL       string    `gorm:"column:photo_url;type:text" json:"photo_url"`
	Role           string    `gorm:"column:role;size:50;default:student" json:"role"`
	PasswordHash   string    `gorm:"column:password_hash;type:text" json:"-"`
	Bio            string    `gorm:"column:bio;type:text" json:"bio,omitempty"`
	Expertise      []string  `gorm:"column:expertise;serializer:json" json:"expertise,omitempty"`
	LearningGoals  []string  `gorm:"column:learning_goals;serializer:json" json:"learning_goals,omitempty"`
	Qualifications []string  `gorm:"column:qualifications;serializer:json" json:"qualifications,omitempty"`
	Batch          string    `gorm:"column:batch;size:50" json:"batch,omitempty"`
	IsSuspended    bool      `gorm:"column:is_suspended;default:false" json:"is_suspended"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName returns the table name
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Identity is the resolved public identity of a user, used to
// enrich conversation rows and notification text
type Identity struct {
	UID         string `json:"uid"`
	DisplayName string `json:"display_name"`
	PhotoURL    string `json:"photo_url"`
}

// UserResponse is the public profile shape
type UserResponse struct {
	UID            string   `json:"uid"`
	Email          string   `json:"email"`
	DisplayName    string   `json:"display_name"`
	PhotoURL       string   `json:"photo_url"`
	Role           string   `json:"role"`
	Bio            string   `json:"bio,omitempty"`
	Expertise      []string `json:"expertise,omitempty"`
	LearningGoals  []string `json:"learning_goals,omitempty"`
	Qualifications []string `json:"qualifications,omitempty"`
	Batch          string   `json:"batch,omitempty"`
	IsSuspended    bool     `json:"is_suspended"`
	CreatedAt      string   `json:"created_at"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		UID:            u.UID,
		Email:          u.Email,
		DisplayName:    u.DisplayName,
		PhotoURL:       u.PhotoURL,
		Role:           u.Role,
		Bio:            u.Bio,
		Expertise:      u.Expertise,
		LearningGoals:  u.LearningGoals,
		Qualifications: u.Qualifications,
		Batch:          u.Batch,
		IsSuspended:    u.IsSuspended,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

// UpdateProfileRequest carries a partial profile edit; nil fields
// are left untouched
type UpdateProfileRequest struct {
	DisplayName    *string   `json:"display_name"`
	PhotoURL       *string   `json:"photo_url"`
	Bio            *string   `json:"bio"`
	Expertise      *[]string `json:"expertise"`
	LearningGoals  *[]string `json:"learning_goals"`
	Qualifications *[]string `json:"qualifications"`
	Batch          *string   `json:"batch"`
}

// CheckUsernameRequest username availability check
type CheckUsernameRequest struct {
	Username string `json:"username" binding:"required"`
}

// RecoverUsernameRequest username reminder request
type RecoverUsernameRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// SetSuspendedRequest admin suspension toggle
type SetSuspendedRequest struct {
	IsSuspended *bool `json:"is_suspended" binding:"required"`
}

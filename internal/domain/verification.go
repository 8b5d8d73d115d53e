package domain

import "time"

// VerificationToken is a pending email verification for signup.
// One row per email; re-initiating signup replaces the token.
type VerificationToken struct {
	Email     string    `gorm:"column:email;primaryKey;size:255" json:"email"`
	Token     string    `gorm:"column:token;size:255;not null" json:"-"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null" json:"expires_at"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName returns the table name
func (VerificationToken) TableName() string {
	return "verification_tokens"
}

// IsExpired reports whether the token is past its expiry
func (v *VerificationToken) IsExpired() bool {
	return time.Now().After(v.ExpiresAt)
}

package repository

import (
	"errors"

	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VerificationRepository pending signup verification token access
type VerificationRepository interface {
	Upsert(token *domain.VerificationToken) error
	Find(email, token string) (*domain.VerificationToken, error)
	Delete(email string) error
}

type verificationRepository struct {
	db *gorm.DB
}

// NewVerificationRepository creates a new VerificationRepository
func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

// Upsert inserts or replaces the pending token for an email
func (r *verificationRepository) Upsert(token *domain.VerificationToken) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "expires_at"}),
	}).Create(token).Error
}

// Find returns the pending token matching email and token value
func (r *verificationRepository) Find(email, token string) (*domain.VerificationToken, error) {
	var vt domain.VerificationToken
	err := r.db.Where("email = ? AND token = ?", email, token).First(&vt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vt, nil
}

// Delete removes the pending token for an email
func (r *verificationRepository) Delete(email string) error {
	return r.db.Where("email = ?", email).Delete(&domain.VerificationToken{}).Error
}

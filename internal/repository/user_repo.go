package repository

import (
	"errors"

	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/domain"
	"gorm.io/gorm"
)

// UserRepository user data access interface
type UserRepository interface {
	Create(user *domain.User) error
	FindByUID(uid string) (*domain.User, error)
	FindByEmail(email string) (*domain.User, error)
	FindByDisplayName(name string) (*domain.User, error)
	FindAll() ([]*domain.User, error)
	ExistsByEmail(email string) (bool, error)
	ExistsByDisplayName(name string) (bool, error)
	Update(user *domain.User) error
	SetSuspended(uid string, suspended bool) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user
func (r *userRepository) Create(user *domain.User) error {
	return r.db.Create(user).Error
}

// FindByUID finds a user by uid
func (r *userRepository) FindByUID(uid string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("uid = ?", uid).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *userRepository) FindByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByDisplayName finds a user by display name
func (r *userRepository) FindByDisplayName(name string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("display_name = ?", name).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindAll returns every user, newest first
func (r *userRepository) FindAll() ([]*domain.User, error) {
	var users []*domain.User
	err := r.db.Order("created_at DESC").Find(&users).Error
	return users, err
}

// ExistsByEmail checks whether an email is already registered
func (r *userRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// ExistsByDisplayName checks whether a display name is taken
func (r *userRepository) ExistsByDisplayName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.User{}).Where("display_name = ?", name).Count(&count).Error
	return count > 0, err
}

// Update saves the full user row. Serialized slice columns only go
// through the JSON serializer on struct writes, so partial edits are
// applied to the loaded struct and saved whole.
func (r *userRepository) Update(user *domain.User) error {
	return r.db.Save(user).Error
}

// SetSuspended toggles a user's suspension flag
func (r *userRepository) SetSuspended(uid string, suspended bool) error {
	return r.db.Model(&domain.User{}).Where("uid = ?", uid).
		Update("is_suspended", suspended).Error
}

package repository

import (
	"errors"

	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/domain"
	"gorm.io/gorm"
)

// ListingListParams directory browse filters
type ListingListParams struct {
	Status      string
	Category    string
	ProviderUID string
	Limit       int
}

// ListingRepository listing data access interface
type ListingRepository interface {
	Create(listing *domain.Listing) error
	FindByID(id int) (*domain.Listing, error)
	List(params *ListingListParams) ([]*domain.Listing, error)
	SetStatus(id int, status, reason string) error
	Delete(id int) error
}

type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository creates a new ListingRepository
func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

// Create inserts a new listing
func (r *listingRepository) Create(listing *domain.Listing) error {
	return r.db.Create(listing).Error
}

// FindByID finds a listing by id
func (r *listingRepository) FindByID(id int) (*domain.Listing, error) {
	var listing domain.Listing
	err := r.db.Where("id = ?", id).First(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &listing, nil
}

// List returns listings matching the given filters, newest first
func (r *listingRepository) List(params *ListingListParams) ([]*domain.Listing, error) {
	query := r.db.Model(&domain.Listing{})

	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Category != "" && params.Category != "All" {
		query = query.Where("category = ?", params.Category)
	}
	if params.ProviderUID != "" {
		query = query.Where("provider_uid = ?", params.ProviderUID)
	}

	query = query.Order("created_at DESC")
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}

	var listings []*domain.Listing
	err := query.Find(&listings).Error
	return listings, err
}

// SetStatus records a moderation decision
func (r *listingRepository) SetStatus(id int, status, reason string) error {
	return r.db.Model(&domain.Listing{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":            status,
			"moderation_reason": reason,
			"moderated_at":      gorm.Expr("CURRENT_TIMESTAMP"),
		}).Error
}

// Delete removes a listing and its requests (FK order)
func (r *listingRepository) Delete(id int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", id).Delete(&domain.Request{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&domain.Listing{}).Error
	})
}

package repository

import (
	"errors"

	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/domain"
	"gorm.io/gorm"
)

// RequestRepository service request data access interface
type RequestRepository interface {
	CreateTx(tx *gorm.DB, request *domain.Request) error
	FindByID(id int) (*domain.Request, error)
}

type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates a new RequestRepository
func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

// CreateTx inserts a new request inside an existing transaction
func (r *requestRepository) CreateTx(tx *gorm.DB, request *domain.Request) error {
	return tx.Create(request).Error
}

// FindByID finds a request by id
func (r *requestRepository) FindByID(id int) (*domain.Request, error) {
	var request domain.Request
	err := r.db.Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

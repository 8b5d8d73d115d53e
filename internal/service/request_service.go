package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/common"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/domain"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/repository"
	"gorm.io/gorm"
)

// RequestService business logic for service inquiries
type RequestService interface {
	Create(seekerUID string, req *domain.CreateRequestRequest) (*domain.RequestResponse, error)
	Get(id int, userUID string) (*domain.RequestResponse, error)
}

type requestService struct {
	db          *gorm.DB
	repo        repository.RequestRepository
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	notifier    Notifier
}

// NewRequestService creates a new RequestService
func NewRequestService(db *gorm.DB, repo repository.RequestRepository, messageRepo repository.MessageRepository, userRepo repository.UserRepository, notifier Notifier) RequestService {
	return &requestService{
		db:          db,
		repo:        repo,
		messageRepo: messageRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

// Create records a service inquiry. The request row and the
// synthesized chat message share one transaction; the provider's
// request_received notification is appended afterwards, best-effort.
func (s *requestService) Create(seekerUID string, req *domain.CreateRequestRequest) (*domain.RequestResponse, error) {
	seekerName := fallbackName
	if seeker, err := s.userRepo.FindByUID(seekerUID); err == nil && seeker != nil && seeker.DisplayName != "" {
		seekerName = seeker.DisplayName
	}

	request := &domain.Request{
		ServiceID:   req.ServiceID,
		SeekerUID:   seekerUID,
		SeekerName:  seekerName,
		SeekerEmail: req.SeekerEmail,
		ProviderUID: req.ProviderUID,
		Message:     req.Message,
		Status:      domain.RequestStatusPending,
		CreatedAt:   time.Now(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, request); err != nil {
			return err
		}

		if strings.TrimSpace(req.Message) != "" {
			msg := &domain.Message{
				SenderUID:    seekerUID,
				RecipientUID: req.ProviderUID,
				Content:      fmt.Sprintf("Request: %s", req.Message),
				CreatedAt:    time.Now(),
			}
			return s.messageRepo.CreateTx(tx, msg)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Emit(
		req.ProviderUID,
		fmt.Sprintf("New request from %s", seekerName),
		fmt.Sprintf("%d", request.ID),
		domain.NotificationRequestReceived,
	)

	return request.ToResponse(), nil
}

// Get returns one request. Used by clients to dereference a
// request_received notification's related id back to the seeker.
func (s *requestService) Get(id int, userUID string) (*domain.RequestResponse, error) {
	request, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, common.ErrRequestNotFound
	}
	// Only the two parties may inspect a request
	if request.SeekerUID != userUID && request.ProviderUID != userUID {
		return nil, common.ErrForbidden
	}
	return request.ToResponse(), nil
}

package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/common"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/domain"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/repository"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/pkg/cache"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/pkg/logger"
)

// ListingService business logic for service listings
type ListingService interface {
	List(params *repository.ListingListParams) ([]*domain.ListingResponse, error)
	Get(id int) (*domain.ListingResponse, error)
	Create(providerUID string, req *domain.CreateListingRequest) (*domain.ListingResponse, error)
	SetStatus(id int, req *domain.SetListingStatusRequest) error
	Delete(id int) error
}

type listingService struct {
	repo     repository.ListingRepository
	userRepo repository.UserRepository
	notifier Notifier
	cache    cache.Service
}

// NewListingService creates a new ListingService
func NewListingService(repo repository.ListingRepository, userRepo repository.UserRepository, notifier Notifier, cacheService cache.Service) ListingService {
	return &listingService{
		repo:     repo,
		userRepo: userRepo,
		notifier: notifier,
		cache:    cacheService,
	}
}

// List returns directory listings matching the filters
func (s *listingService) List(params *repository.ListingListParams) ([]*domain.ListingResponse, error) {
	listings, err := s.repo.List(params)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.ListingResponse, len(listings))
	for i, l := range listings {
		responses[i] = s.enrich(l)
	}
	return responses, nil
}

// Get returns one listing with resolved provider identity, served
// from the short-TTL cache when possible
func (s *listingService) Get(id int) (*domain.ListingResponse, error) {
	ctx := context.Background()

	var cached domain.ListingResponse
	if err := s.cache.GetListing(ctx, id, &cached); err == nil {
		return &cached, nil
	}

	listing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, common.ErrListingNotFound
	}

	resp := s.enrich(listing)
	if err := s.cache.SetListing(ctx, id, resp); err != nil {
		logger.GetLogger().Warn().Err(err).Int("listing_id", id).Msg("listing cache set failed")
	}
	return resp, nil
}

// Create posts a new listing owned by the caller, pending moderation
func (s *listingService) Create(providerUID string, req *domain.CreateListingRequest) (*domain.ListingResponse, error) {
	listing := &domain.Listing{
		ProviderUID:      providerUID,
		Title:            req.Title,
		Category:         req.Category,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		DeliveryMode:     req.DeliveryMode,
		CompensationType: req.CompensationType,
		Price:            req.Price,
		Tags:             req.Tags,
		TargetBatches:    req.TargetBatches,
		Status:           domain.ListingStatusPending,
		CreatedAt:        time.Now(),
	}
	if err := s.repo.Create(listing); err != nil {
		return nil, err
	}
	return s.enrich(listing), nil
}

// SetStatus records a moderation decision and notifies the provider.
// The notification is the only part of the moderation workflow this
// system carries; it is best-effort like every other emission.
func (s *listingService) SetStatus(id int, req *domain.SetListingStatusRequest) error {
	listing, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if listing == nil {
		return common.ErrListingNotFound
	}

	if err := s.repo.SetStatus(id, req.Status, req.Reason); err != nil {
		return err
	}
	if err := s.cache.InvalidateListing(context.Background(), id); err != nil {
		logger.GetLogger().Warn().Err(err).Int("listing_id", id).Msg("listing cache invalidation failed")
	}

	switch req.Status {
	case domain.ListingStatusApproved:
		s.notifier.Emit(
			listing.ProviderUID,
			fmt.Sprintf("Your listing %q has been approved", listing.Title),
			strconv.Itoa(id),
			domain.NotificationListingApproved,
		)
	case domain.ListingStatusRejected:
		s.notifier.Emit(
			listing.ProviderUID,
			fmt.Sprintf("Your listing %q has been rejected", listing.Title),
			strconv.Itoa(id),
			domain.NotificationListingRejected,
		)
	}
	return nil
}

// Delete removes a listing and its requests
func (s *listingService) Delete(id int) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	if err := s.cache.InvalidateListing(context.Background(), id); err != nil {
		logger.GetLogger().Warn().Err(err).Int("listing_id", id).Msg("listing cache invalidation failed")
	}
	return nil
}

// enrich resolves the provider's current identity into the response
func (s *listingService) enrich(l *domain.Listing) *domain.ListingResponse {
	resp := l.ToResponse()
	if provider, err := s.userRepo.FindByUID(l.ProviderUID); err == nil && provider != nil {
		resp.ProviderName = provider.DisplayName
		resp.ProviderPhoto = provider.PhotoURL
	}
	return resp
}

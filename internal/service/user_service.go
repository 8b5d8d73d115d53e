package service

import (
	"context"

	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/common"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/domain"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/repository"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/pkg/cache"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/pkg/logger"
)

// UserService user profile business logic
type UserService interface {
	GetProfile(uid string) (*domain.UserResponse, error)
	UpdateProfile(uid string, req *domain.UpdateProfileRequest) (*domain.UserResponse, error)
	CheckUsername(username string) (bool, error)
	RecoverUsername(email string)
	ListAll() ([]*domain.UserResponse, error)
	SetSuspended(uid string, suspended bool) error
}

type userService struct {
	repo  repository.UserRepository
	cache cache.Service
}

// NewUserService creates a new UserService
func NewUserService(repo repository.UserRepository, cacheService cache.Service) UserService {
	return &userService{repo: repo, cache: cacheService}
}

// GetProfile returns a user's public profile, served from the
// short-TTL cache when possible
func (s *userService) GetProfile(uid string) (*domain.UserResponse, error) {
	ctx := context.Background()

	var cached domain.UserResponse
	if err := s.cache.GetProfile(ctx, uid, &cached); err == nil {
		return &cached, nil
	}

	user, err := s.repo.FindByUID(uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.ErrUserNotFound
	}

	resp := user.ToResponse()
	if err := s.cache.SetProfile(ctx, uid, resp); err != nil {
		logger.GetLogger().Warn().Err(err).Str("uid", uid).Msg("profile cache set failed")
	}
	return resp, nil
}

// UpdateProfile applies a partial profile edit; only fields present
// in the request change
func (s *userService) UpdateProfile(uid string, req *domain.UpdateProfileRequest) (*domain.UserResponse, error) {
	user, err := s.repo.FindByUID(uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.ErrUserNotFound
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.PhotoURL != nil {
		user.PhotoURL = *req.PhotoURL
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Expertise != nil {
		user.Expertise = *req.Expertise
	}
	if req.LearningGoals != nil {
		user.LearningGoals = *req.LearningGoals
	}
	if req.Qualifications != nil {
		user.Qualifications = *req.Qualifications
	}
	if req.Batch != nil {
		user.Batch = *req.Batch
	}

	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	if err := s.cache.InvalidateProfile(context.Background(), uid); err != nil {
		logger.GetLogger().Warn().Err(err).Str("uid", uid).Msg("profile cache invalidation failed")
	}

	return user.ToResponse(), nil
}

// CheckUsername reports whether a display name is still available
func (s *userService) CheckUsername(username string) (bool, error) {
	taken, err := s.repo.ExistsByDisplayName(username)
	if err != nil {
		return false, err
	}
	return !taken, nil
}

// RecoverUsername logs a username reminder for the given email.
// Always succeeds from the caller's perspective to prevent email
// enumeration; delivery itself is out of scope.
func (s *userService) RecoverUsername(email string) {
	user, err := s.repo.FindByEmail(email)
	if err != nil || user == nil {
		return
	}
	logger.GetLogger().Info().
		Str("email", email).
		Str("username", user.DisplayName).
		Msg("username recovery requested")
}

// ListAll returns every user, for the admin console
func (s *userService) ListAll() ([]*domain.UserResponse, error) {
	users, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.UserResponse, len(users))
	for i, u := range users {
		responses[i] = u.ToResponse()
	}
	return responses, nil
}

// SetSuspended toggles a user's suspension flag
func (s *userService) SetSuspended(uid string, suspended bool) error {
	user, err := s.repo.FindByUID(uid)
	if err != nil {
		return err
	}
	if user == nil {
		return common.ErrUserNotFound
	}
	if err := s.repo.SetSuspended(uid, suspended); err != nil {
		return err
	}
	if err := s.cache.InvalidateProfile(context.Background(), uid); err != nil {
		logger.GetLogger().Warn().Err(err).Str("uid", uid).Msg("profile cache invalidation failed")
	}
	return nil
}

package service

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/common"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/domain"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/repository"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/pkg/jwt"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var emailValidator = validator.New()

// InitiateSignupRequest starts the email verification flow
type InitiateSignupRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyTokenRequest checks a pending verification token
type VerifyTokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	Token string `json:"token" binding:"required"`
}

// CompleteSignupRequest finishes registration
type CompleteSignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Token    string `json:"token" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse login/signup result
type LoginResponse struct {
	User  *domain.UserResponse `json:"user"`
	Token string               `json:"token"`
}

// AuthService authentication business logic
type AuthService interface {
	InitiateSignup(email string) error
	VerifyToken(email, token string) error
	CompleteSignup(req *CompleteSignupRequest) (*LoginResponse, error)
	Login(email, password string) (*LoginResponse, error)
	Me(uid string) (*domain.UserResponse, error)
}

type authService struct {
	userRepo         repository.UserRepository
	verificationRepo repository.VerificationRepository
	jwtManager       *jwt.Manager
	emailDomain      string
	verificationTTL  time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, verificationRepo repository.VerificationRepository, jwtManager *jwt.Manager, emailDomain string, verificationTTLMinutes int) AuthService {
	return &authService{
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
		jwtManager:       jwtManager,
		emailDomain:      emailDomain,
		verificationTTL:  time.Duration(verificationTTLMinutes) * time.Minute,
	}
}

// InitiateSignup issues a verification token for a campus email.
// Email delivery is out of scope; the verification link is written to
// the log for the operator (or a future mail integration) to relay.
func (s *authService) InitiateSignup(email string) error {
	if err := emailValidator.Var(email, "required,email"); err != nil {
		return common.ErrInvalidEmailDomain
	}
	if !strings.HasSuffix(email, "@"+s.emailDomain) {
		return common.ErrInvalidEmailDomain
	}

	exists, err := s.userRepo.ExistsByEmail(email)
	if err != nil {
		return err
	}
	if exists {
		return common.ErrUserAlreadyExists
	}

	token := uuid.New().String()
	vt := &domain.VerificationToken{
		Email:     email,
		Token:     token,
		ExpiresAt: time.Now().Add(s.verificationTTL),
	}
	if err := s.verificationRepo.Upsert(vt); err != nil {
		return err
	}

	logger.GetLogger().Info().
		Str("email", email).
		Str("verify_link", fmt.Sprintf("/verify-email?email=%s&token=%s", url.QueryEscape(email), token)).
		Msg("signup verification issued")
	return nil
}

// VerifyToken checks that a pending token matches and is not expired
func (s *authService) VerifyToken(email, token string) error {
	vt, err := s.verificationRepo.Find(email, token)
	if err != nil {
		return err
	}
	if vt == nil || vt.IsExpired() {
		return common.ErrInvalidToken
	}
	return nil
}

// CompleteSignup creates the account and issues a bearer token
func (s *authService) CompleteSignup(req *CompleteSignupRequest) (*LoginResponse, error) {
	if err := s.VerifyToken(req.Email, req.Token); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrUserAlreadyExists
	}

	taken, err := s.userRepo.ExistsByDisplayName(req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, common.ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		UID:          uuid.New().String(),
		Email:        req.Email,
		DisplayName:  req.Username,
		PhotoURL:     fmt.Sprintf("https://ui-avatars.com/api/?name=%s", url.QueryEscape(req.Username)),
		Role:         domain.RoleStudent,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	if err := s.verificationRepo.Delete(req.Email); err != nil {
		logger.GetLogger().Warn().Err(err).Str("email", req.Email).Msg("verification token cleanup failed")
	}

	token, err := s.jwtManager.GenerateToken(user.UID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{User: user.ToResponse(), Token: token}, nil
}

// Login authenticates a user and issues a bearer token. Suspended
// accounts are rejected here; this is the single suspension check
// point, so a suspension takes effect at the next login.
func (s *authService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == "" {
		return nil, common.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if user.IsSuspended {
		return nil, common.ErrAccountSuspended
	}

	token, err := s.jwtManager.GenerateToken(user.UID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{User: user.ToResponse(), Token: token}, nil
}

// Me returns the authenticated user's own profile
func (s *authService) Me(uid string) (*domain.UserResponse, error) {
	user, err := s.userRepo.FindByUID(uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.ErrUserNotFound
	}
	return user.ToResponse(), nil
}

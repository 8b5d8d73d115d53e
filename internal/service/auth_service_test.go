package service

import (
	"testing"
	"time"

	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/common"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/domain"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockVerificationRepository is a mock implementation of VerificationRepository
type MockVerificationRepository struct {
	mock.Mock
}

func (m *MockVerificationRepository) Upsert(vt *domain.VerificationToken) error {
	args := m.Called(vt)
	return args.Error(0)
}

func (m *MockVerificationRepository) Find(email, token string) (*domain.VerificationToken, error) {
	args := m.Called(email, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VerificationToken), args.Error(1)
}

func (m *MockVerificationRepository) Delete(email string) error {
	args := m.Called(email)
	return args.Error(0)
}

func newTestAuthService(userRepo *MockUserRepository, verificationRepo *MockVerificationRepository) AuthService {
	return NewAuthService(userRepo, verificationRepo, jwt.NewManager("test-secret", 24), "iimidr.ac.in", 10)
}

func TestInitiateSignup(t *testing.T) {
	userRepo := new(MockUserRepository)
	verificationRepo := new(MockVerificationRepository)
	svc := newTestAuthService(userRepo, verificationRepo)

	userRepo.On("ExistsByEmail", "priya@iimidr.ac.in").Return(false, nil)
	verificationRepo.On("Upsert", mock.MatchedBy(func(vt *domain.VerificationToken) bool {
		return vt.Email == "priya@iimidr.ac.in" && vt.Token != "" && vt.ExpiresAt.After(time.Now())
	})).Return(nil)

	err := svc.InitiateSignup("priya@iimidr.ac.in")

	assert.NoError(t, err)
	verificationRepo.AssertExpectations(t)
}

func TestInitiateSignup_RejectsOutsideDomain(t *testing.T) {
	userRepo := new(MockUserRepository)
	verificationRepo := new(MockVerificationRepository)
	svc := newTestAuthService(userRepo, verificationRepo)

	err := svc.InitiateSignup("someone@gmail.com")

	assert.ErrorIs(t, err, common.ErrInvalidEmailDomain)
	userRepo.AssertNotCalled(t, "ExistsByEmail", mock.Anything)
}

func TestInitiateSignup_RejectsSpoofedSuffix(t *testing.T) {
	userRepo := new(MockUserRepository)
	verificationRepo := new(MockVerificationRepository)
	svc := newTestAuthService(userRepo, verificationRepo)

	// "eviliimidr.ac.in" must not pass as a campus domain
	err := svc.InitiateSignup("someone@eviliimidr.ac.in")

	assert.ErrorIs(t, err, common.ErrInvalidEmailDomain)
}

func TestInitiateSignup_ExistingAccount(t *testing.T) {
	userRepo := new(MockUserRepository)
	verificationRepo := new(MockVerificationRepository)
	svc := newTestAuthService(userRepo, verificationRepo)

	userRepo.On("ExistsByEmail", "priya@iimidr.ac.in").Return(true, nil)

	err := svc.InitiateSignup("priya@iimidr.ac.in")

	assert.ErrorIs(t, err, common.ErrUserAlreadyExists)
}

func TestVerifyToken_Expired(t *testing.T) {
	userRepo := new(MockUserRepository)
	verificationRepo := new(MockVerificationRepository)
	svc := newTestAuthService(userRepo, verificationRepo)

	verificationRepo.On("Find", "priya@iimidr.ac.in", "tok").Return(&domain.VerificationToken{
		Email:     "priya@iimidr.ac.in",
		Token:     "tok",
		ExpiresAt: time.Now().Add(-time.Minute),
	}, nil)

	err := svc.VerifyToken("priya@iimidr.ac.in", "tok")

	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerifyToken_Unknown(t *testing.T) {
	userRepo := new(MockUserRepository)
	verificationRepo := new(MockVerificationRepository)
	svc := newTestAuthService(userRepo, verificationRepo)

	verificationRepo.On("Find", "priya@iimidr.ac.in", "wrong").Return(nil, nil)

	err := svc.VerifyToken("priya@iimidr.ac.in", "wrong")

	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestCompleteSignup(t *testing.T) {
	userRepo := new(MockUserRepository)
	verificationRepo := new(MockVerificationRepository)
	svc := newTestAuthService(userRepo, verificationRepo)

	verificationRepo.On("Find", "priya@iimidr.ac.in", "tok").Return(&domain.VerificationToken{
		Email:     "priya@iimidr.ac.in",
		Token:     "tok",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	userRepo.On("ExistsByEmail", "priya@iimidr.ac.in").Return(false, nil)
	userRepo.On("ExistsByDisplayName", "priya").Return(false, nil)
	userRepo.On("Create", mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "priya@iimidr.ac.in" &&
			u.DisplayName == "priya" &&
			u.Role == domain.RoleStudent &&
			u.UID != "" &&
			u.PasswordHash != "" &&
			u.PasswordHash != "secret-password"
	})).Return(nil)
	verificationRepo.On("Delete", "priya@iimidr.ac.in").Return(nil)

	result, err := svc.CompleteSignup(&CompleteSignupRequest{
		Email:    "priya@iimidr.ac.in",
		Token:    "tok",
		Username: "priya",
		Password: "secret-password",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "priya", result.User.DisplayName)
	userRepo.AssertExpectations(t)
}

func TestCompleteSignup_UsernameTaken(t *testing.T) {
	userRepo := new(MockUserRepository)
	verificationRepo := new(MockVerificationRepository)
	svc := newTestAuthService(userRepo, verificationRepo)

	verificationRepo.On("Find", "priya@iimidr.ac.in", "tok").Return(&domain.VerificationToken{
		Email:     "priya@iimidr.ac.in",
		Token:     "tok",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	userRepo.On("ExistsByEmail", "priya@iimidr.ac.in").Return(false, nil)
	userRepo.On("ExistsByDisplayName", "priya").Return(true, nil)

	_, err := svc.CompleteSignup(&CompleteSignupRequest{
		Email:    "priya@iimidr.ac.in",
		Token:    "tok",
		Username: "priya",
		Password: "secret-password",
	})

	assert.ErrorIs(t, err, common.ErrUserAlreadyExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLogin(t *testing.T) {
	userRepo := new(MockUserRepository)
	verificationRepo := new(MockVerificationRepository)
	svc := newTestAuthService(userRepo, verificationRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	userRepo.On("FindByEmail", "priya@iimidr.ac.in").Return(&domain.User{
		UID:          "u1",
		Email:        "priya@iimidr.ac.in",
		DisplayName:  "priya",
		Role:         domain.RoleStudent,
		PasswordHash: string(hash),
	}, nil)

	result, err := svc.Login("priya@iimidr.ac.in", "correct-password")

	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "u1", result.User.UID)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	verificationRepo := new(MockVerificationRepository)
	svc := newTestAuthService(userRepo, verificationRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	userRepo.On("FindByEmail", "priya@iimidr.ac.in").Return(&domain.User{
		UID:          "u1",
		Email:        "priya@iimidr.ac.in",
		PasswordHash: string(hash),
	}, nil)

	_, err := svc.Login("priya@iimidr.ac.in", "wrong")

	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	verificationRepo := new(MockVerificationRepository)
	svc := newTestAuthService(userRepo, verificationRepo)

	userRepo.On("FindByEmail", "ghost@iimidr.ac.in").Return(nil, nil)

	_, err := svc.Login("ghost@iimidr.ac.in", "whatever")

	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_Suspended(t *testing.T) {
	userRepo := new(MockUserRepository)
	verificationRepo := new(MockVerificationRepository)
	svc := newTestAuthService(userRepo, verificationRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	userRepo.On("FindByEmail", "priya@iimidr.ac.in").Return(&domain.User{
		UID:          "u1",
		Email:        "priya@iimidr.ac.in",
		PasswordHash: string(hash),
		IsSuspended:  true,
	}, nil)

	_, err := svc.Login("priya@iimidr.ac.in", "correct-password")

	assert.ErrorIs(t, err, common.ErrAccountSuspended)
}

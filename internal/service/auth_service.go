package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tasktracker/internal/auth"
	apperrors "tasktracker/internal/errors"
	"tasktracker/internal/model"
	"tasktracker/internal/notify"
	"tasktracker/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, name, email, password, country string) (*model.User, string, error)
	Login(ctx context.Context, identifier, password string) (*model.User, string, error)
}

type authService struct {
	userRepo           repository.UserRepository
	verifiedRepo       repository.VerifiedEmailRepository
	jwtService         *auth.JWTService
	notifier           notify.Notifier
	verificationWindow time.Duration
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	userRepo repository.UserRepository,
	verifiedRepo repository.VerifiedEmailRepository,
	jwtService *auth.JWTService,
	notifier notify.Notifier,
	verificationWindow time.Duration,
) AuthService {
	return &authService{
		userRepo:           userRepo,
		verifiedRepo:       verifiedRepo,
		jwtService:         jwtService,
		notifier:           notifier,
		verificationWindow: verificationWindow,
	}
}

// Register creates a user for a previously verified email and returns the
// created identity with a signed token. The verified-email record is
// consumed so it cannot gate a second registration.
func (s *authService) Register(ctx context.Context, name, email, password, country string) (*model.User, string, error) {
	verified, err := s.verifiedRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, "", apperrors.ErrEmailNotVerified
		}
		return nil, "", fmt.Errorf("check verified email: %w", err)
	}

	// A stale verification no longer opens the gate.
	if time.Since(verified.VerifiedAt) > s.verificationWindow {
		return nil, "", apperrors.ErrEmailNotVerified
	}

	existing, err := s.userRepo.FindByEmailOrName(ctx, email, name)
	if err == nil && existing != nil {
		return nil, "", apperrors.ErrUserAlreadyExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, "", fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Country:      country,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	// The gate has served its purpose; a leftover record is harmless but
	// would linger forever.
	if err := s.verifiedRepo.DeleteByEmail(ctx, email); err != nil {
		log.Printf("auth: failed to consume verified email %s: %v", email, err)
	}

	s.notifier.Welcome(user)

	return user, token, nil
}

// Login authenticates a user by email or name. Unknown identifier and wrong
// password produce the same error.
func (s *authService) Login(ctx context.Context, identifier, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByIdentifier(ctx, identifier)
	if err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}

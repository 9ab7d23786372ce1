package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "tasktracker/internal/errors"
	"tasktracker/internal/model"
	"tasktracker/internal/notify"
	"tasktracker/internal/repository"
)

// OTPService handles the email verification handshake.
type OTPService interface {
	RequestOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) error
}

type otpService struct {
	userRepo     repository.UserRepository
	otpRepo      repository.OTPRepository
	verifiedRepo repository.VerifiedEmailRepository
	notifier     notify.Notifier
	expiry       time.Duration
}

// NewOTPService creates a new OTP service.
func NewOTPService(
	userRepo repository.UserRepository,
	otpRepo repository.OTPRepository,
	verifiedRepo repository.VerifiedEmailRepository,
	notifier notify.Notifier,
	expiry time.Duration,
) OTPService {
	return &otpService{
		userRepo:     userRepo,
		otpRepo:      otpRepo,
		verifiedRepo: verifiedRepo,
		notifier:     notifier,
		expiry:       expiry,
	}
}

// RequestOTP issues a fresh single-use code for the email, replacing any
// prior one. The plaintext code exists only in the outgoing email; the store
// keeps a bcrypt hash.
func (s *otpService) RequestOTP(ctx context.Context, email string) error {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return apperrors.ErrEmailAlreadyRegistered
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return fmt.Errorf("check email registration: %w", err)
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}

	codeHash, err := bcrypt.GenerateFromPassword([]byte(code), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash otp: %w", err)
	}

	otp := &model.EmailOTP{
		Email:     email,
		CodeHash:  string(codeHash),
		ExpiresAt: time.Now().Add(s.expiry),
	}
	if err := s.otpRepo.Upsert(ctx, otp); err != nil {
		return fmt.Errorf("store otp: %w", err)
	}

	// Best effort: the stored code takes effect even if delivery fails.
	s.notifier.OTPIssued(email, code, s.expiry)

	return nil
}

// VerifyOTP validates the submitted code. A wrong code and an expired code
// collapse to the same error so callers cannot tell them apart. On success
// the email joins the verified allow-list and the code is consumed.
func (s *otpService) VerifyOTP(ctx context.Context, email, code string) error {
	record, err := s.otpRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrOTPNotFound
		}
		return fmt.Errorf("load otp: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(record.CodeHash), []byte(code)); err != nil {
		return apperrors.ErrOTPInvalid
	}
	if time.Now().After(record.ExpiresAt) {
		return apperrors.ErrOTPInvalid
	}

	verified := &model.VerifiedEmail{
		Email:      email,
		VerifiedAt: time.Now(),
	}
	if err := s.verifiedRepo.Upsert(ctx, verified); err != nil {
		return fmt.Errorf("store verified email: %w", err)
	}

	if err := s.otpRepo.DeleteByEmail(ctx, email); err != nil {
		return fmt.Errorf("consume otp: %w", err)
	}

	return nil
}

// generateCode returns a 6-digit numeric code, uniform over 100000-999999.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}

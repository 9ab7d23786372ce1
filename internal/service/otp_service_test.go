package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "tasktracker/internal/errors"
	"tasktracker/internal/model"
)

func TestOTPService_RequestOTP(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		setupMock     func(*MockUserRepository, *MockOTPRepository, *MockNotifier)
		expectedError error
	}{
		{
			name:  "issues a code for an unregistered email",
			email: "new@x.com",
			setupMock: func(users *MockUserRepository, otps *MockOTPRepository, notifier *MockNotifier) {
				users.On("FindByEmail", mock.Anything, "new@x.com").Return(nil, gorm.ErrRecordNotFound)
				otps.On("Upsert", mock.Anything, mock.AnythingOfType("*model.EmailOTP")).Return(nil)
				notifier.On("OTPIssued", "new@x.com", mock.AnythingOfType("string"), 10*time.Minute).Return()
			},
			expectedError: nil,
		},
		{
			name:  "rejects a registered email",
			email: "taken@x.com",
			setupMock: func(users *MockUserRepository, otps *MockOTPRepository, notifier *MockNotifier) {
				users.On("FindByEmail", mock.Anything, "taken@x.com").Return(&model.User{Email: "taken@x.com"}, nil)
			},
			expectedError: apperrors.ErrEmailAlreadyRegistered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			mockOTPs := new(MockOTPRepository)
			mockVerified := new(MockVerifiedEmailRepository)
			mockNotifier := new(MockNotifier)
			tt.setupMock(mockUsers, mockOTPs, mockNotifier)

			svc := NewOTPService(mockUsers, mockOTPs, mockVerified, mockNotifier, 10*time.Minute)
			err := svc.RequestOTP(context.Background(), tt.email)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			mockUsers.AssertExpectations(t)
			mockOTPs.AssertExpectations(t)
			mockNotifier.AssertExpectations(t)
		})
	}
}

func TestOTPService_RequestOTP_StoresHashedSixDigitCode(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockOTPs := new(MockOTPRepository)
	mockNotifier := new(MockNotifier)

	mockUsers.On("FindByEmail", mock.Anything, "new@x.com").Return(nil, gorm.ErrRecordNotFound)

	var stored *model.EmailOTP
	mockOTPs.On("Upsert", mock.Anything, mock.AnythingOfType("*model.EmailOTP")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*model.EmailOTP)
		}).Return(nil)

	var sentCode string
	mockNotifier.On("OTPIssued", "new@x.com", mock.AnythingOfType("string"), 10*time.Minute).
		Run(func(args mock.Arguments) {
			sentCode = args.String(1)
		}).Return()

	svc := NewOTPService(mockUsers, mockOTPs, new(MockVerifiedEmailRepository), mockNotifier, 10*time.Minute)
	err := svc.RequestOTP(context.Background(), "new@x.com")

	assert.NoError(t, err)
	assert.Len(t, sentCode, 6)
	assert.Regexp(t, `^[1-9][0-9]{5}$`, sentCode)

	// The store only ever sees the hash, which matches the emailed code.
	assert.NotEqual(t, sentCode, stored.CodeHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.CodeHash), []byte(sentCode)))
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), stored.ExpiresAt, 5*time.Second)
}

func TestOTPService_VerifyOTP(t *testing.T) {
	hash := func(code string) string {
		h, _ := bcrypt.GenerateFromPassword([]byte(code), 10)
		return string(h)
	}

	tests := []struct {
		name          string
		email         string
		code          string
		setupMock     func(*MockOTPRepository, *MockVerifiedEmailRepository)
		expectedError error
	}{
		{
			name:  "valid code verifies and consumes the record",
			email: "new@x.com",
			code:  "123456",
			setupMock: func(otps *MockOTPRepository, verified *MockVerifiedEmailRepository) {
				otps.On("FindByEmail", mock.Anything, "new@x.com").Return(&model.EmailOTP{
					Email:     "new@x.com",
					CodeHash:  hash("123456"),
					ExpiresAt: time.Now().Add(5 * time.Minute),
				}, nil)
				verified.On("Upsert", mock.Anything, mock.AnythingOfType("*model.VerifiedEmail")).Return(nil)
				otps.On("DeleteByEmail", mock.Anything, "new@x.com").Return(nil)
			},
			expectedError: nil,
		},
		{
			name:  "no record",
			email: "unknown@x.com",
			code:  "123456",
			setupMock: func(otps *MockOTPRepository, verified *MockVerifiedEmailRepository) {
				otps.On("FindByEmail", mock.Anything, "unknown@x.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrOTPNotFound,
		},
		{
			name:  "wrong code",
			email: "new@x.com",
			code:  "654321",
			setupMock: func(otps *MockOTPRepository, verified *MockVerifiedEmailRepository) {
				otps.On("FindByEmail", mock.Anything, "new@x.com").Return(&model.EmailOTP{
					Email:     "new@x.com",
					CodeHash:  hash("123456"),
					ExpiresAt: time.Now().Add(5 * time.Minute),
				}, nil)
			},
			expectedError: apperrors.ErrOTPInvalid,
		},
		{
			name:  "correct code after expiry",
			email: "new@x.com",
			code:  "123456",
			setupMock: func(otps *MockOTPRepository, verified *MockVerifiedEmailRepository) {
				otps.On("FindByEmail", mock.Anything, "new@x.com").Return(&model.EmailOTP{
					Email:     "new@x.com",
					CodeHash:  hash("123456"),
					ExpiresAt: time.Now().Add(-time.Minute),
				}, nil)
			},
			expectedError: apperrors.ErrOTPInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOTPs := new(MockOTPRepository)
			mockVerified := new(MockVerifiedEmailRepository)
			tt.setupMock(mockOTPs, mockVerified)

			svc := NewOTPService(new(MockUserRepository), mockOTPs, mockVerified, new(MockNotifier), 10*time.Minute)
			err := svc.VerifyOTP(context.Background(), tt.email, tt.code)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			mockOTPs.AssertExpectations(t)
			mockVerified.AssertExpectations(t)
		})
	}
}

func TestOTPService_VerifyOTP_ReplayFailsAfterConsumption(t *testing.T) {
	mockOTPs := new(MockOTPRepository)
	mockVerified := new(MockVerifiedEmailRepository)

	codeHash, _ := bcrypt.GenerateFromPassword([]byte("123456"), 10)
	record := &model.EmailOTP{
		Email:     "new@x.com",
		CodeHash:  string(codeHash),
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}

	// First call finds the record, second finds nothing.
	mockOTPs.On("FindByEmail", mock.Anything, "new@x.com").Return(record, nil).Once()
	mockVerified.On("Upsert", mock.Anything, mock.AnythingOfType("*model.VerifiedEmail")).Return(nil).Once()
	mockOTPs.On("DeleteByEmail", mock.Anything, "new@x.com").Return(nil).Once()
	mockOTPs.On("FindByEmail", mock.Anything, "new@x.com").Return(nil, gorm.ErrRecordNotFound).Once()

	svc := NewOTPService(new(MockUserRepository), mockOTPs, mockVerified, new(MockNotifier), 10*time.Minute)

	assert.NoError(t, svc.VerifyOTP(context.Background(), "new@x.com", "123456"))
	assert.ErrorIs(t, svc.VerifyOTP(context.Background(), "new@x.com", "123456"), apperrors.ErrOTPNotFound)

	mockOTPs.AssertExpectations(t)
	mockVerified.AssertExpectations(t)
}

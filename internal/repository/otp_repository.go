package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tasktracker/internal/model"
)

// OTPRepository defines persistence operations for one-time codes.
type OTPRepository interface {
	Upsert(ctx context.Context, otp *model.EmailOTP) error
	FindByEmail(ctx context.Context, email string) (*model.EmailOTP, error)
	DeleteByEmail(ctx context.Context, email string) error
}

type otpRepository struct {
	db *gorm.DB
}

// NewOTPRepository builds a GORM-backed repository.
func NewOTPRepository(db *gorm.DB) OTPRepository {
	return &otpRepository{db: db}
}

// Upsert replaces any prior code for the email, keeping at most one active
// record per address.
func (r *otpRepository) Upsert(ctx context.Context, otp *model.EmailOTP) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"code_hash", "expires_at", "updated_at"}),
	}).Create(otp).Error
}

func (r *otpRepository) FindByEmail(ctx context.Context, email string) (*model.EmailOTP, error) {
	var otp model.EmailOTP
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&otp).Error; err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *otpRepository) DeleteByEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Where("email = ?", email).Delete(&model.EmailOTP{}).Error
}

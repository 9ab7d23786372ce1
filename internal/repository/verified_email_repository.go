package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tasktracker/internal/model"
)

// VerifiedEmailRepository defines persistence operations for the
// verified-email allow-list consumed at registration time.
type VerifiedEmailRepository interface {
	Upsert(ctx context.Context, record *model.VerifiedEmail) error
	FindByEmail(ctx context.Context, email string) (*model.VerifiedEmail, error)
	DeleteByEmail(ctx context.Context, email string) error
}

type verifiedEmailRepository struct {
	db *gorm.DB
}

// NewVerifiedEmailRepository builds a GORM-backed repository.
func NewVerifiedEmailRepository(db *gorm.DB) VerifiedEmailRepository {
	return &verifiedEmailRepository{db: db}
}

func (r *verifiedEmailRepository) Upsert(ctx context.Context, record *model.VerifiedEmail) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"verified_at"}),
	}).Create(record).Error
}

func (r *verifiedEmailRepository) FindByEmail(ctx context.Context, email string) (*model.VerifiedEmail, error) {
	var record model.VerifiedEmail
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *verifiedEmailRepository) DeleteByEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Where("email = ?", email).Delete(&model.VerifiedEmail{}).Error
}

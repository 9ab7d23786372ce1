package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tasktracker/internal/model"
)

// ActivityRepository defines append-only activity persistence. There is
// deliberately no update or delete operation.
type ActivityRepository interface {
	Create(ctx context.Context, activity *model.Activity) error
	ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository builds a GORM-backed repository.
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *model.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

// ListRecentByUser returns the user's entries newest-first, capped to limit.
func (r *activityRepository) ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.Activity, error) {
	var activities []model.Activity
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

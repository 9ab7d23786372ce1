package service

import (
	"context"

	"github.com/google/uuid"

	"tasktracker/internal/model"
	"tasktracker/internal/repository"
)

// recentActivityLimit caps the "recent activity" view.
const recentActivityLimit = 5

// ActivityService exposes the append-only activity log.
type ActivityService interface {
	RecentForUser(ctx context.Context, userID uuid.UUID) ([]model.Activity, error)
}

type activityService struct {
	activityRepo repository.ActivityRepository
}

// NewActivityService creates a new activity service.
func NewActivityService(activityRepo repository.ActivityRepository) ActivityService {
	return &activityService{activityRepo: activityRepo}
}

// RecentForUser returns the user's latest entries, newest first.
func (s *activityService) RecentForUser(ctx context.Context, userID uuid.UUID) ([]model.Activity, error) {
	return s.activityRepo.ListRecentByUser(ctx, userID, recentActivityLimit)
}

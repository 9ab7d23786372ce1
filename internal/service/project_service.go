package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "tasktracker/internal/errors"
	"tasktracker/internal/model"
	"tasktracker/internal/notify"
	"tasktracker/internal/repository"
)

// ProjectService handles the project lifecycle. Every mutating operation
// records an activity entry and hands off a best-effort notification.
type ProjectService interface {
	Create(ctx context.Context, owner *model.User, title, description string) (*model.Project, error)
	Update(ctx context.Context, owner *model.User, id uuid.UUID, title, description *string) (*model.Project, error)
	Get(ctx context.Context, owner *model.User, id uuid.UUID) (*model.Project, error)
	Delete(ctx context.Context, owner *model.User, id uuid.UUID) error
	Complete(ctx context.Context, owner *model.User, id uuid.UUID) (*model.Project, bool, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Project, error)
	Stats(ctx context.Context, ownerID uuid.UUID) (int64, string, error)
}

type projectService struct {
	projectRepo       repository.ProjectRepository
	activityRepo      repository.ActivityRepository
	notifier          notify.Notifier
	revenuePerProject int64
}

// NewProjectService creates a new project service.
func NewProjectService(
	projectRepo repository.ProjectRepository,
	activityRepo repository.ActivityRepository,
	notifier notify.Notifier,
	revenuePerProject int64,
) ProjectService {
	return &projectService{
		projectRepo:       projectRepo,
		activityRepo:      activityRepo,
		notifier:          notifier,
		revenuePerProject: revenuePerProject,
	}
}

// findOwned is the single authorization guard: every project operation goes
// through it before touching the record.
func (s *projectService) findOwned(ctx context.Context, ownerID, id uuid.UUID) (*model.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("load project: %w", err)
	}
	if project.OwnerID != ownerID {
		return nil, apperrors.ErrNotProjectOwner
	}
	return project, nil
}

func (s *projectService) record(ctx context.Context, userID uuid.UUID, action, title, description string) error {
	activity := &model.Activity{
		UserID:      userID,
		Action:      action,
		Title:       title,
		Description: description,
	}
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	return nil
}

// Create persists a pending project owned by the caller.
func (s *projectService) Create(ctx context.Context, owner *model.User, title, description string) (*model.Project, error) {
	project := &model.Project{
		Title:       title,
		Description: description,
		OwnerID:     owner.ID,
		Status:      model.ProjectStatusPending,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	if err := s.record(ctx, owner.ID, fmt.Sprintf("Created project: %s", title), title, description); err != nil {
		return nil, err
	}

	s.notifier.ProjectCreated(owner, project)

	return project, nil
}

// Update applies the provided fields to a pending project. Completed
// projects are immutable to edits.
func (s *projectService) Update(ctx context.Context, owner *model.User, id uuid.UUID, title, description *string) (*model.Project, error) {
	project, err := s.findOwned(ctx, owner.ID, id)
	if err != nil {
		return nil, err
	}

	if project.Status == model.ProjectStatusCompleted {
		return nil, apperrors.ErrProjectCompleted
	}

	if title != nil && *title != "" {
		project.Title = *title
	}
	if description != nil && *description != "" {
		project.Description = *description
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	if err := s.record(ctx, owner.ID, fmt.Sprintf("Updated project: %s", project.Title), project.Title, project.Description); err != nil {
		return nil, err
	}

	s.notifier.ProjectUpdated(owner, project)

	return project, nil
}

// Get returns an owned project. Reads are ownership-restricted too.
func (s *projectService) Get(ctx context.Context, owner *model.User, id uuid.UUID) (*model.Project, error) {
	return s.findOwned(ctx, owner.ID, id)
}

// Delete removes an owned project, logging the pre-deletion title.
func (s *projectService) Delete(ctx context.Context, owner *model.User, id uuid.UUID) error {
	project, err := s.findOwned(ctx, owner.ID, id)
	if err != nil {
		return err
	}

	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	if err := s.record(ctx, owner.ID, fmt.Sprintf("Deleted project: %s", project.Title), project.Title, project.Description); err != nil {
		return err
	}

	s.notifier.ProjectDeleted(owner, project.Title)

	return nil
}

// Complete transitions a project to completed. Completing an already
// completed project is a no-op: the second return value reports whether a
// transition happened, and no duplicate activity or email is emitted.
func (s *projectService) Complete(ctx context.Context, owner *model.User, id uuid.UUID) (*model.Project, bool, error) {
	project, err := s.findOwned(ctx, owner.ID, id)
	if err != nil {
		return nil, false, err
	}

	if project.Status == model.ProjectStatusCompleted {
		return project, false, nil
	}

	project.Status = model.ProjectStatusCompleted
	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, false, fmt.Errorf("complete project: %w", err)
	}

	if err := s.record(ctx, owner.ID, fmt.Sprintf("Marked project as completed: %s", project.Title), project.Title, project.Description); err != nil {
		return nil, false, err
	}

	s.notifier.ProjectCompleted(owner, project)

	return project, true, nil
}

// ListForOwner returns all of the caller's projects in store order.
func (s *projectService) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Project, error) {
	return s.projectRepo.ListByOwner(ctx, ownerID)
}

// Stats returns the caller's project count and the derived revenue figure.
// The multiplier is configuration, not a pricing model.
func (s *projectService) Stats(ctx context.Context, ownerID uuid.UUID) (int64, string, error) {
	count, err := s.projectRepo.CountByOwner(ctx, ownerID)
	if err != nil {
		return 0, "", fmt.Errorf("count projects: %w", err)
	}

	revenue := decimal.NewFromInt(count).Mul(decimal.NewFromInt(s.revenuePerProject))
	return count, "$" + revenue.String(), nil
}

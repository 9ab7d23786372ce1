package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "tasktracker/internal/errors"
	"tasktracker/internal/model"
)

const testRevenuePerProject = 50

func testOwner() *model.User {
	return &model.User{
		ID:    uuid.New(),
		Name:  "alice",
		Email: "alice@example.com",
	}
}

func TestProjectService_Create(t *testing.T) {
	owner := testOwner()

	mockProjects := new(MockProjectRepository)
	mockActivities := new(MockActivityRepository)
	mockNotifier := new(MockNotifier)

	mockProjects.On("Create", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil)

	var activity *model.Activity
	mockActivities.On("Create", mock.Anything, mock.AnythingOfType("*model.Activity")).
		Run(func(args mock.Arguments) {
			activity = args.Get(1).(*model.Activity)
		}).Return(nil)
	mockNotifier.On("ProjectCreated", owner, mock.AnythingOfType("*model.Project")).Return()

	svc := NewProjectService(mockProjects, mockActivities, mockNotifier, testRevenuePerProject)
	project, err := svc.Create(context.Background(), owner, "Launch", "Q1 launch")

	assert.NoError(t, err)
	assert.Equal(t, "Launch", project.Title)
	assert.Equal(t, "Q1 launch", project.Description)
	assert.Equal(t, owner.ID, project.OwnerID)
	assert.Equal(t, model.ProjectStatusPending, project.Status)

	assert.Equal(t, owner.ID, activity.UserID)
	assert.Equal(t, "Created project: Launch", activity.Action)

	mockProjects.AssertExpectations(t)
	mockActivities.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestProjectService_Update(t *testing.T) {
	owner := testOwner()
	stranger := testOwner()
	projectID := uuid.New()

	newTitle := "Renamed"
	newDescription := "Updated description"

	tests := []struct {
		name          string
		caller        *model.User
		title         *string
		description   *string
		setupMock     func(*MockProjectRepository, *MockActivityRepository, *MockNotifier)
		expectedError error
		check         func(*testing.T, *model.Project)
	}{
		{
			name:        "partial update keeps absent fields",
			caller:      owner,
			title:       &newTitle,
			description: nil,
			setupMock: func(projects *MockProjectRepository, activities *MockActivityRepository, notifier *MockNotifier) {
				projects.On("FindByID", mock.Anything, projectID).Return(&model.Project{
					ID:          projectID,
					Title:       "Launch",
					Description: "Q1 launch",
					OwnerID:     owner.ID,
					Status:      model.ProjectStatusPending,
				}, nil)
				projects.On("Update", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil)
				activities.On("Create", mock.Anything, mock.AnythingOfType("*model.Activity")).Return(nil)
				notifier.On("ProjectUpdated", owner, mock.AnythingOfType("*model.Project")).Return()
			},
			check: func(t *testing.T, project *model.Project) {
				assert.Equal(t, "Renamed", project.Title)
				assert.Equal(t, "Q1 launch", project.Description)
			},
		},
		{
			name:        "non-owner is rejected",
			caller:      stranger,
			title:       &newTitle,
			description: &newDescription,
			setupMock: func(projects *MockProjectRepository, activities *MockActivityRepository, notifier *MockNotifier) {
				projects.On("FindByID", mock.Anything, projectID).Return(&model.Project{
					ID:      projectID,
					OwnerID: owner.ID,
					Status:  model.ProjectStatusPending,
				}, nil)
			},
			expectedError: apperrors.ErrNotProjectOwner,
		},
		{
			name:        "completed project is immutable",
			caller:      owner,
			title:       &newTitle,
			description: &newDescription,
			setupMock: func(projects *MockProjectRepository, activities *MockActivityRepository, notifier *MockNotifier) {
				projects.On("FindByID", mock.Anything, projectID).Return(&model.Project{
					ID:      projectID,
					OwnerID: owner.ID,
					Status:  model.ProjectStatusCompleted,
				}, nil)
			},
			expectedError: apperrors.ErrProjectCompleted,
		},
		{
			name:        "missing project",
			caller:      owner,
			title:       &newTitle,
			description: nil,
			setupMock: func(projects *MockProjectRepository, activities *MockActivityRepository, notifier *MockNotifier) {
				projects.On("FindByID", mock.Anything, projectID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrProjectNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProjects := new(MockProjectRepository)
			mockActivities := new(MockActivityRepository)
			mockNotifier := new(MockNotifier)
			tt.setupMock(mockProjects, mockActivities, mockNotifier)

			svc := NewProjectService(mockProjects, mockActivities, mockNotifier, testRevenuePerProject)
			project, err := svc.Update(context.Background(), tt.caller, projectID, tt.title, tt.description)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, project)
				mockProjects.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
				mockActivities.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				tt.check(t, project)
			}

			mockProjects.AssertExpectations(t)
			mockActivities.AssertExpectations(t)
			mockNotifier.AssertExpectations(t)
		})
	}
}

func TestProjectService_Get_OwnershipRestricted(t *testing.T) {
	owner := testOwner()
	stranger := testOwner()
	projectID := uuid.New()

	mockProjects := new(MockProjectRepository)
	mockProjects.On("FindByID", mock.Anything, projectID).Return(&model.Project{
		ID:      projectID,
		OwnerID: owner.ID,
	}, nil)

	svc := NewProjectService(mockProjects, new(MockActivityRepository), new(MockNotifier), testRevenuePerProject)

	project, err := svc.Get(context.Background(), owner, projectID)
	assert.NoError(t, err)
	assert.Equal(t, projectID, project.ID)

	project, err = svc.Get(context.Background(), stranger, projectID)
	assert.ErrorIs(t, err, apperrors.ErrNotProjectOwner)
	assert.Nil(t, project)
}

func TestProjectService_Delete(t *testing.T) {
	owner := testOwner()
	stranger := testOwner()
	projectID := uuid.New()

	existing := &model.Project{
		ID:          projectID,
		Title:       "Launch",
		Description: "Q1 launch",
		OwnerID:     owner.ID,
		Status:      model.ProjectStatusPending,
	}

	t.Run("owner deletes and the pre-deletion title is logged", func(t *testing.T) {
		mockProjects := new(MockProjectRepository)
		mockActivities := new(MockActivityRepository)
		mockNotifier := new(MockNotifier)

		mockProjects.On("FindByID", mock.Anything, projectID).Return(existing, nil)
		mockProjects.On("Delete", mock.Anything, projectID).Return(nil)

		var activity *model.Activity
		mockActivities.On("Create", mock.Anything, mock.AnythingOfType("*model.Activity")).
			Run(func(args mock.Arguments) {
				activity = args.Get(1).(*model.Activity)
			}).Return(nil)
		mockNotifier.On("ProjectDeleted", owner, "Launch").Return()

		svc := NewProjectService(mockProjects, mockActivities, mockNotifier, testRevenuePerProject)
		err := svc.Delete(context.Background(), owner, projectID)

		assert.NoError(t, err)
		assert.Equal(t, "Deleted project: Launch", activity.Action)
		assert.Equal(t, "Launch", activity.Title)
		assert.Equal(t, "Q1 launch", activity.Description)

		mockProjects.AssertExpectations(t)
		mockActivities.AssertExpectations(t)
		mockNotifier.AssertExpectations(t)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		mockProjects := new(MockProjectRepository)
		mockProjects.On("FindByID", mock.Anything, projectID).Return(existing, nil)

		svc := NewProjectService(mockProjects, new(MockActivityRepository), new(MockNotifier), testRevenuePerProject)
		err := svc.Delete(context.Background(), stranger, projectID)

		assert.ErrorIs(t, err, apperrors.ErrNotProjectOwner)
		mockProjects.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestProjectService_Complete_Idempotent(t *testing.T) {
	owner := testOwner()
	projectID := uuid.New()

	mockProjects := new(MockProjectRepository)
	mockActivities := new(MockActivityRepository)
	mockNotifier := new(MockNotifier)

	pending := &model.Project{
		ID:      projectID,
		Title:   "Launch",
		OwnerID: owner.ID,
		Status:  model.ProjectStatusPending,
	}

	mockProjects.On("FindByID", mock.Anything, projectID).Return(pending, nil)
	mockProjects.On("Update", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil).Once()
	mockActivities.On("Create", mock.Anything, mock.AnythingOfType("*model.Activity")).Return(nil).Once()
	mockNotifier.On("ProjectCompleted", owner, mock.AnythingOfType("*model.Project")).Return().Once()

	svc := NewProjectService(mockProjects, mockActivities, mockNotifier, testRevenuePerProject)

	// First call transitions.
	project, transitioned, err := svc.Complete(context.Background(), owner, projectID)
	assert.NoError(t, err)
	assert.True(t, transitioned)
	assert.Equal(t, model.ProjectStatusCompleted, project.Status)

	// Second call is a no-op: no extra update, activity, or email.
	project, transitioned, err = svc.Complete(context.Background(), owner, projectID)
	assert.NoError(t, err)
	assert.False(t, transitioned)
	assert.Equal(t, model.ProjectStatusCompleted, project.Status)

	mockProjects.AssertExpectations(t)
	mockActivities.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
	mockActivities.AssertNumberOfCalls(t, "Create", 1)
}

func TestProjectService_Stats(t *testing.T) {
	owner := testOwner()

	mockProjects := new(MockProjectRepository)
	mockProjects.On("CountByOwner", mock.Anything, owner.ID).Return(int64(3), nil)

	svc := NewProjectService(mockProjects, new(MockActivityRepository), new(MockNotifier), testRevenuePerProject)
	count, revenue, err := svc.Stats(context.Background(), owner.ID)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Equal(t, "$150", revenue)
}

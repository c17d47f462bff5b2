package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Edriczzzz/task-api/internal/model"
	"github.com/Edriczzzz/task-api/internal/repo"
)

// MockTaskRepository - мок репозитория
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, t model.Task) (model.Task, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *MockTaskRepository) Get(ctx context.Context, id int64) (model.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *MockTaskRepository) List(ctx context.Context) ([]model.Task, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, t model.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestTaskService_Create(t *testing.T) {
	tests := []struct {
		name      string
		task      model.Task
		setupMock func(*MockTaskRepository)
		wantErr   error
	}{
		{
			name: "successful creation",
			task: model.Task{
				Name:     "Buy milk",
				Deadline: "2024-05-01",
			},
			setupMock: func(m *MockTaskRepository) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(t model.Task) bool {
					return t.Name == "Buy milk" && t.Deadline == "2024-05-01" && !t.Status
				})).Return(model.Task{
					ID:       1,
					Name:     "Buy milk",
					Deadline: "2024-05-01",
				}, nil)
			},
			wantErr: nil,
		},
		{
			name: "display format deadline is normalized",
			task: model.Task{
				Name:     "Buy milk",
				Deadline: "01/05/2024",
			},
			setupMock: func(m *MockTaskRepository) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(t model.Task) bool {
					return t.Deadline == "2024-05-01"
				})).Return(model.Task{
					ID:       2,
					Name:     "Buy milk",
					Deadline: "2024-05-01",
				}, nil)
			},
			wantErr: nil,
		},
		{
			name: "validation error - empty name",
			task: model.Task{
				Name:     "",
				Deadline: "2024-05-01",
			},
			setupMock: func(m *MockTaskRepository) {},
			wantErr:   ErrValidation,
		},
		{
			name: "validation error - empty deadline",
			task: model.Task{
				Name: "Buy milk",
			},
			setupMock: func(m *MockTaskRepository) {},
			wantErr:   ErrValidation,
		},
		{
			name: "validation error - impossible date",
			task: model.Task{
				Name:     "Buy milk",
				Deadline: "31/02/2024",
			},
			setupMock: func(m *MockTaskRepository) {},
			wantErr:   ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTaskRepository)
			tt.setupMock(mockRepo)

			service := NewTaskService(mockRepo)
			result, err := service.Create(context.Background(), tt.task)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.NotZero(t, result.ID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTaskService_Update(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(t model.Task) bool {
		return t.ID == 1 && t.Name == "Updated" && t.Status && t.Deadline == "2024-05-01"
	})).Return(nil)

	service := NewTaskService(mockRepo)
	err := service.Update(context.Background(), model.Task{
		ID:       1,
		Name:     "Updated",
		Status:   true,
		Deadline: "2024-05-01",
	})

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestTaskService_UpdateNotFound(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	mockRepo.On("Update", mock.Anything, mock.Anything).Return(repo.ErrorNotFound)

	service := NewTaskService(mockRepo)
	err := service.Update(context.Background(), model.Task{
		ID:       99999,
		Name:     "Ghost",
		Deadline: "2024-05-01",
	})

	assert.ErrorIs(t, err, repo.ErrorNotFound)
}

func TestTaskService_UpdateStatus(t *testing.T) {
	t.Run("resends name and deadline unchanged", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("Get", mock.Anything, int64(7)).Return(model.Task{
			ID:       7,
			Name:     "Buy milk",
			Status:   false,
			Deadline: "2024-05-01",
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(t model.Task) bool {
			return t.ID == 7 && t.Name == "Buy milk" && t.Deadline == "2024-05-01" && t.Status
		})).Return(nil)

		service := NewTaskService(mockRepo)
		err := service.UpdateStatus(context.Background(), 7, true)

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown id", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("Get", mock.Anything, int64(404)).Return(model.Task{}, repo.ErrorNotFound)

		service := NewTaskService(mockRepo)
		err := service.UpdateStatus(context.Background(), 404, true)

		assert.ErrorIs(t, err, repo.ErrorNotFound)
		mockRepo.AssertNotCalled(t, "Update")
	})
}

func TestTaskService_Validate(t *testing.T) {
	service := &TaskService{}

	tests := []struct {
		name         string
		task         model.Task
		wantDeadline string
		wantErr      bool
	}{
		{
			name:         "valid task",
			task:         model.Task{Name: "Valid", Deadline: "2024-05-01"},
			wantDeadline: "2024-05-01",
		},
		{
			name:         "display layout",
			task:         model.Task{Name: "Valid", Deadline: "01/05/2024"},
			wantDeadline: "2024-05-01",
		},
		{
			name:    "empty name",
			task:    model.Task{Name: "", Deadline: "2024-05-01"},
			wantErr: true,
		},
		{
			name:    "whitespace name",
			task:    model.Task{Name: "   ", Deadline: "2024-05-01"},
			wantErr: true,
		},
		{
			name:    "empty deadline",
			task:    model.Task{Name: "Task"},
			wantErr: true,
		},
		{
			name:    "garbage deadline",
			task:    model.Task{Name: "Task", Deadline: "tomorrow"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.validate(tt.task)
			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantDeadline, got.Deadline)
			}
		})
	}
}

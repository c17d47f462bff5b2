package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Edriczzzz/task-api/internal/model"
	"github.com/Edriczzzz/task-api/internal/repo"
	"github.com/Edriczzzz/task-api/pkg/dateconv"
)

var (
	ErrValidation = errors.New("validation error")
)

type TaskService struct {
	repo repo.TaskRepository
}

func NewTaskService(repo repo.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) Create(ctx context.Context, t model.Task) (model.Task, error) {
	normalized, err := s.validate(t)
	if err != nil {
		return t, err
	}
	return s.repo.Create(ctx, normalized)
}

func (s *TaskService) Get(ctx context.Context, id int64) (model.Task, error) {
	return s.repo.Get(ctx, id)
}

func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}

func (s *TaskService) Update(ctx context.Context, t model.Task) error {
	normalized, err := s.validate(t)
	if err != nil {
		return err
	}
	return s.repo.Update(ctx, normalized)
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// UpdateStatus меняет только флаг выполнения. Контракт Update требует полную
// запись, поэтому сначала читаем задачу и пересылаем name/deadline как есть.
func (s *TaskService) UpdateStatus(ctx context.Context, id int64, status bool) error {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	t.Status = status
	return s.repo.Update(ctx, t)
}

// validate проверяет обязательные поля и нормализует дедлайн к yyyy-mm-dd.
// Мобильный клиент шлет даты как dd/mm/yyyy.
func (s *TaskService) validate(t model.Task) (model.Task, error) {
	if strings.TrimSpace(t.Name) == "" {
		return t, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(t.Deadline) == "" {
		return t, fmt.Errorf("%w: deadline is required", ErrValidation)
	}

	deadline, err := dateconv.Normalize(t.Deadline)
	if err != nil {
		return t, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	t.Deadline = deadline
	return t, nil
}

package repo

import (
	"context"

	"github.com/Edriczzzz/task-api/internal/model"
)

// TaskRepository определяет интерфейс для работы с задачами
type TaskRepository interface {
	Create(ctx context.Context, t model.Task) (model.Task, error)
	Get(ctx context.Context, id int64) (model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	Update(ctx context.Context, t model.Task) error
	Delete(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}

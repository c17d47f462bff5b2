package repo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Edriczzzz/task-api/internal/model"
	"github.com/Edriczzzz/task-api/pkg/dateconv"
)

var (
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("conflict")
)

type TaskRepo struct { // Репозиторий для работы непосредственно с БД
	pool *pgxpool.Pool
}

func NewTaskRepo(pool *pgxpool.Pool) *TaskRepo { // Конструктор
	return &TaskRepo{
		pool: pool,
	}
}

// Кодек между bool в модели и smallint 0/1 в таблице.
func statusToCode(status bool) int16 {
	if status {
		return 1
	}
	return 0
}

func statusFromCode(code int16) bool {
	return code == 1
}

func (r *TaskRepo) Create(ctx context.Context, t model.Task) (model.Task, error) {
	var (
		code     int16
		deadline time.Time
	)
	err := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (name, status, deadline)
		VALUES ($1, $2, $3::date)
		RETURNING id, name, status, deadline, created_at, updated_at
	`, t.Name, statusToCode(t.Status), t.Deadline).Scan(
		&t.ID, &t.Name, &code, &deadline, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return t, mapError(err)
	}
	t.Status = statusFromCode(code)
	t.Deadline = deadline.Format(dateconv.APILayout)
	return t, nil
}

func (r *TaskRepo) Get(ctx context.Context, id int64) (model.Task, error) {
	var (
		t        model.Task
		code     int16
		deadline time.Time
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, status, deadline, created_at, updated_at
		FROM tasks
		WHERE id = $1
	`, id).Scan(
		&t.ID, &t.Name, &code, &deadline, &t.CreatedAt, &t.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return t, ErrorNotFound
	}
	if err != nil {
		return t, err
	}
	t.Status = statusFromCode(code)
	t.Deadline = deadline.Format(dateconv.APILayout)
	return t, nil
}

func (r *TaskRepo) List(ctx context.Context) ([]model.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, status, deadline, created_at, updated_at
		FROM tasks
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		var (
			t        model.Task
			code     int16
			deadline time.Time
		)
		if err := rows.Scan(&t.ID, &t.Name, &code, &deadline, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		t.Status = statusFromCode(code)
		t.Deadline = deadline.Format(dateconv.APILayout)
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Update перезаписывает name, status и deadline целиком.
// Ноль затронутых строк считается ошибкой, а не тихим успехом.
func (r *TaskRepo) Update(ctx context.Context, t model.Task) error {
	cmd, err := r.pool.Exec(ctx, `
		UPDATE tasks
		SET name = $2, status = $3, deadline = $4::date, updated_at = now()
		WHERE id = $1
	`, t.ID, t.Name, statusToCode(t.Status), t.Deadline)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrorNotFound
	}
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrorNotFound
	}
	return nil
}

// Ping гоняет тривиальный запрос как проверку связи с БД.
func (r *TaskRepo) Ping(ctx context.Context) error {
	var result int
	return r.pool.QueryRow(ctx, "SELECT 1 + 1").Scan(&result)
}

func mapError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return ErrorConflict
		}
	}
	return err
}

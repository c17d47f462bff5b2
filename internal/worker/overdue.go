package worker

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Edriczzzz/task-api/internal/metrics"
)

// OverdueScanner периодически пересчитывает просроченные невыполненные
// задачи. Только чтение, задачи он не трогает.
type OverdueScanner struct {
	pool     *pgxpool.Pool
	logger   *zap.Logger
	interval time.Duration
	wg       sync.WaitGroup
	stop     chan struct{}
}

func NewOverdueScanner(pool *pgxpool.Pool, logger *zap.Logger, interval time.Duration) *OverdueScanner {
	return &OverdueScanner{
		pool:     pool,
		logger:   logger,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (s *OverdueScanner) Start(ctx context.Context) {
	s.logger.Info("Starting overdue scanner", zap.Duration("interval", s.interval))

	s.wg.Add(1)
	go s.run(ctx)
}

func (s *OverdueScanner) Stop() {
	s.logger.Info("Stopping overdue scanner...")
	close(s.stop)
	s.wg.Wait()
	s.logger.Info("Overdue scanner stopped")
}

func (s *OverdueScanner) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.scan(ctx); err != nil {
				s.logger.Error("overdue scan failed", zap.Error(err))
			}
		}
	}
}

func (s *OverdueScanner) scan(ctx context.Context) error {
	var count int64
	err := s.pool.QueryRow(ctx, `
		SELECT count(*)
		FROM tasks
		WHERE status = 0 AND deadline < CURRENT_DATE
	`).Scan(&count)
	if err != nil {
		return err
	}

	metrics.TasksOverdue.Set(float64(count))
	if count > 0 {
		s.logger.Info("Found overdue tasks", zap.Int64("count", count))
	}
	return nil
}

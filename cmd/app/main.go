package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Edriczzzz/task-api/internal/auth"
	"github.com/Edriczzzz/task-api/internal/config"
	"github.com/Edriczzzz/task-api/internal/handler"
	"github.com/Edriczzzz/task-api/internal/metrics"
	"github.com/Edriczzzz/task-api/internal/repo"
	"github.com/Edriczzzz/task-api/internal/service"
	"github.com/Edriczzzz/task-api/internal/worker"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "task-api",
		Short: "REST API for managing tasks",
	}
	rootCmd.AddCommand(serveCmd(), migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			serve()
		},
	}
}

func serve() {
	// Подключаем логгер
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Загрузка конфигурации
	cfg := config.Load()

	// Подключаем БД
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to Database.") // Fatal потому что дальнейшая работа теряет смысл
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Failed to ping the Database.")
	}
	logger.Info("Successfully connected to the Database!")

	taskRepo := repo.NewTaskRepo(pool)
	taskService := service.NewTaskService(taskRepo)
	taskHandler := handler.NewTaskHandler(taskService, logger)
	healthHandler := handler.NewHealthHandler(taskRepo, logger)

	verifier, err := auth.NewStaticVerifier(cfg.AuthUsername, cfg.AuthPassword)
	if err != nil {
		log.Fatal("Failed to set up credential verifier.")
	}
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authHandler := auth.NewHandler(verifier, jwtManager, logger)

	r := chi.NewRouter() // Создаем роутер
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// Health и login доступны без токена
	r.Get("/health", healthHandler.Check)
	r.Get("/test-db", healthHandler.Check)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/api/auth/login", authHandler.Login)

	r.Route("/api/tasks", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtManager))
		r.Post("/", taskHandler.Create)
		r.Get("/", taskHandler.List)
		r.Get("/{id}", taskHandler.Get)
		r.Put("/{id}", taskHandler.Update)
		r.Patch("/{id}/status", taskHandler.UpdateStatus)
		r.Delete("/{id}", taskHandler.Delete)
	})

	scanner := worker.NewOverdueScanner(pool, logger, cfg.OverdueScanEvery)
	scanner.Start(context.Background())
	defer scanner.Stop()

	srv := http.Server{ // Создаем сервер
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() { // Запуск сервера и обработка ошибок
		logger.Info("Server started at ", zap.String("port", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed: ", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Shutdown error: ", zap.Error(err))
	}
	logger.Info("Server stopped succsessfully!")
}

func migrateCmd() *cobra.Command {
	dir := "migrations"
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply SQL migrations in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer pool.Close()

			entries, err := os.ReadDir(dir)
			if err != nil {
				return fmt.Errorf("read migrations dir: %w", err)
			}

			var files []string
			for _, e := range entries {
				if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
					files = append(files, e.Name())
				}
			}
			sort.Strings(files)

			for _, name := range files {
				sql, err := os.ReadFile(filepath.Join(dir, name))
				if err != nil {
					return fmt.Errorf("read %s: %w", name, err)
				}
				if _, err := pool.Exec(context.Background(), string(sql)); err != nil {
					return fmt.Errorf("apply %s: %w", name, err)
				}
				fmt.Println("applied", name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", dir, "directory with *.up.sql files")
	return cmd
}

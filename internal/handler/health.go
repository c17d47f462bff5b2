package handler

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/Edriczzzz/task-api/pkg/respond"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	storage Pinger
	logger  *zap.Logger
}

func NewHealthHandler(storage Pinger, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		storage: storage,
		logger:  logger,
	}
}

type healthStatus struct {
	OK               bool   `json:"ok"`
	StorageReachable bool   `json:"storage_reachable"`
	Error            string `json:"error,omitempty"`
}

// Check отвечает без авторизации; гоняет тривиальный запрос к БД.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.storage.Ping(r.Context()); err != nil {
		h.logger.Error("storage ping failed", zap.Error(err))
		respond.JSON(w, r, http.StatusInternalServerError, healthStatus{
			OK:               false,
			StorageReachable: false,
			Error:            err.Error(),
		})
		return
	}

	respond.JSON(w, r, http.StatusOK, healthStatus{
		OK:               true,
		StorageReachable: true,
	})
}

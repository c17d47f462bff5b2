package auth

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/Edriczzzz/task-api/pkg/respond"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type Handler struct {
	verifier CredentialVerifier
	jwt      *JWTManager
	logger   *zap.Logger
}

func NewHandler(verifier CredentialVerifier, jwt *JWTManager, logger *zap.Logger) *Handler {
	return &Handler{
		verifier: verifier,
		jwt:      jwt,
		logger:   logger,
	}
}

// Login выдает bearer токен за правильную пару логин/пароль.
// Logout на сервере не нужен - клиент просто выбрасывает токен.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json", err)
		return
	}

	if !h.verifier.Verify(req.Username, req.Password) {
		respond.Error(w, r, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	token, err := h.jwt.Issue(req.Username)
	if err != nil {
		h.logger.Error("failed to issue token", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "internal error", nil)
		return
	}

	respond.JSON(w, r, http.StatusOK, LoginResponse{Token: token})
}

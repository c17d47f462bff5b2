package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(ctx context.Context) error {
	return p.err
}

func TestHealthHandler_Check(t *testing.T) {
	tests := []struct {
		name     string
		pingErr  error
		wantCode int
		wantOK   bool
	}{
		{
			name:     "storage reachable",
			pingErr:  nil,
			wantCode: http.StatusOK,
			wantOK:   true,
		},
		{
			name:     "storage down",
			pingErr:  errors.New("connection refused"),
			wantCode: http.StatusInternalServerError,
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(stubPinger{err: tt.pingErr}, zap.NewNop())

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			w := httptest.NewRecorder()
			h.Check(w, req)

			assert.Equal(t, tt.wantCode, w.Code)

			var body healthStatus
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.wantOK, body.OK)
			assert.Equal(t, tt.wantOK, body.StorageReachable)
		})
	}
}

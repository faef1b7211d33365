package handler

import (
	"log/slog"
	"net/http"

	"github.com/GoArmGo/ForumApp/internal/core/ports"
)

// HealthHandler — отчёт о готовности схемы БД для оркестратора.
type HealthHandler struct {
	readiness ports.ReadinessGate
	logger    *slog.Logger
}

// NewHealthHandler создаёт новый экземпляр HealthHandler.
func NewHealthHandler(readiness ports.ReadinessGate, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{readiness: readiness, logger: logger}
}

// Health — 200 когда таблицы созданы, иначе 503.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ready := h.readiness.Ready()

	status := "initializing"
	code := http.StatusServiceUnavailable
	if ready {
		status = "healthy"
		code = http.StatusOK
	}

	respondWithJSON(w, code, map[string]interface{}{
		"status":      status,
		"tablesReady": ready,
	}, h.logger)
}

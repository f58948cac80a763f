package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"watchlog/internal/contextutil"
	"watchlog/internal/service"
)

// ResetHandler handles HTTP requests for the full-store reset.
type ResetHandler struct {
	reset service.ResetService
}

// NewResetHandler creates a new ResetHandler.
func NewResetHandler(reset service.ResetService) *ResetHandler {
	return &ResetHandler{reset: reset}
}

// ResetResponse represents the HTTP response payload for a reset.
type ResetResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ServeHTTP handles HTTP requests for the full-store reset. The response
// is written before the store is destroyed; the reset itself runs after,
// ending with a graceful shutdown that the shell answers with a restart.
func (h *ResetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	logger.InfoContext(ctx, "full reset requested")

	writeJSON(w, http.StatusOK, ResetResponse{
		Success: true,
		Message: "視聴履歴をすべて削除しました。アプリケーションを再起動してください。",
	})

	// The request context dies with this handler; the reset and the
	// shutdown it triggers must outlive it.
	go func() {
		if err := h.reset.Reset(context.Background()); err != nil {
			slog.Error("reset failed", "error", err)
		}
	}()
}

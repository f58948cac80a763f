package handlers

import (
	"net/http"

	"watchlog/internal/contextutil"
	"watchlog/internal/service"
)

// HistoryHandler handles HTTP requests for listing the viewing history.
type HistoryHandler struct {
	history service.HistoryService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(history service.HistoryService) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// HistoryResponse represents the HTTP response payload for the history list.
// History is one pre-formatted text block, newest record first.
type HistoryResponse struct {
	History string `json:"history"`
}

// ServeHTTP handles HTTP requests for listing the viewing history.
func (h *HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	text, err := h.history.ListAll(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list viewing history", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to read history")
		return
	}

	writeJSON(w, http.StatusOK, HistoryResponse{History: text})
}

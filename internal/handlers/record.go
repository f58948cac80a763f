package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"watchlog/internal/contextutil"
	"watchlog/internal/service"
)

// RecordHandler handles HTTP requests for logging a viewing record.
type RecordHandler struct {
	history service.HistoryService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(history service.HistoryService) *RecordHandler {
	return &RecordHandler{history: history}
}

// RecordRequest represents the HTTP request payload for logging a record.
type RecordRequest struct {
	MediaTitle string `json:"mediaTitle"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Rating     *int   `json:"rating,omitempty"`
	Notes      string `json:"notes,omitempty"`
	Tags       string `json:"tags,omitempty"`
}

// RecordResponse represents the HTTP response payload for logging a record.
// Validation failures arrive here with success=false and HTTP 200; only
// store failures become HTTP errors.
type RecordResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ServeHTTP handles HTTP requests for logging a viewing record.
func (h *RecordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.history.Record(ctx, service.RecordInput{
		MediaTitle: req.MediaTitle,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Rating:     req.Rating,
		Notes:      req.Notes,
		Tags:       req.Tags,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to record viewing history", "error", err)
		if errors.Is(err, service.ErrStorage) {
			writeError(w, http.StatusInternalServerError, "Failed to store record")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to process record request")
		return
	}

	writeJSON(w, http.StatusOK, RecordResponse{
		Success: result.Success,
		Message: result.Message,
	})
}

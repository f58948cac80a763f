package handlers

import (
	"encoding/json"
	"net/http"

	"watchlog/internal/contextutil"
	"watchlog/internal/service"
)

// LookupHandler handles HTTP requests for AI title enrichment.
type LookupHandler struct {
	enrichment service.EnrichmentService
}

// NewLookupHandler creates a new LookupHandler.
func NewLookupHandler(enrichment service.EnrichmentService) *LookupHandler {
	return &LookupHandler{enrichment: enrichment}
}

// LookupRequest represents the HTTP request payload for title enrichment.
type LookupRequest struct {
	Title string `json:"title"`
}

// LookupResponse represents the HTTP response payload for title enrichment.
// Result is always display-ready text; transport and parse failures are
// already rendered into it by the service.
type LookupResponse struct {
	Result string `json:"result"`
}

// ServeHTTP handles HTTP requests for AI title enrichment.
func (h *LookupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req LookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, LookupResponse{
		Result: h.enrichment.Lookup(ctx, req.Title),
	})
}

package handlers

import (
	"net/http"

	"watchlog/internal/contextutil"
	"watchlog/internal/service"
)

// RecommendHandler handles HTTP requests for viewing recommendations.
type RecommendHandler struct {
	recommender service.Recommender
}

// NewRecommendHandler creates a new RecommendHandler.
func NewRecommendHandler(recommender service.Recommender) *RecommendHandler {
	return &RecommendHandler{recommender: recommender}
}

// RecommendResponse represents the HTTP response payload for recommendations.
type RecommendResponse struct {
	Result string `json:"result"`
}

// ServeHTTP handles HTTP requests for viewing recommendations.
func (h *RecommendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, RecommendResponse{
		Result: h.recommender.Recommend(),
	})
}

package http

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"watchlog/internal/handlers"
	"watchlog/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	History     service.HistoryService
	Enrichment  service.EnrichmentService
	Recommender service.Recommender
	Reset       service.ResetService
	DB          *sql.DB
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(RequestID)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	recordHandler := handlers.NewRecordHandler(deps.History)
	historyHandler := handlers.NewHistoryHandler(deps.History)
	lookupHandler := handlers.NewLookupHandler(deps.Enrichment)
	recommendHandler := handlers.NewRecommendHandler(deps.Recommender)
	resetHandler := handlers.NewResetHandler(deps.Reset)
	healthHandler := handlers.NewHealthHandler(deps.DB)
	pageHandler := handlers.NewPageHandler(deps.History)

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/history", recordHandler)
		r.Method(http.MethodGet, "/history", historyHandler)
		r.Method(http.MethodPost, "/lookup", lookupHandler)
		r.Method(http.MethodGet, "/recommendations", recommendHandler)
		r.Method(http.MethodPost, "/reset", resetHandler)
		r.Method(http.MethodGet, "/health", healthHandler)
	})

	// Serve the history page at root
	r.Method(http.MethodGet, "/", pageHandler)

	return r
}

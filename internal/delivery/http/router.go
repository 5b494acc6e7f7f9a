package http

import (
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"acaradashboard/internal/delivery/http/controllers"
	"acaradashboard/internal/delivery/http/middleware"
	"acaradashboard/internal/domain"
)

// RouterConfig holds the dependencies of NewRouter.
type RouterConfig struct {
	Logger          *slog.Logger
	Verifier        domain.TokenVerifier
	AcaraController *controllers.AcaraController
	CORSOrigins     []string
}

// NewRouter initializes the HTTP router with all application routes and the
// middleware chain: request ID, real IP, request logging, panic recovery and CORS.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(cfg.Verifier, cfg.Logger)
	acara := cfg.AcaraController

	mux.HandleFunc("GET /health", health)

	// Acara
	mux.HandleFunc("POST /acara", auth(acara.CreateAcara))
	mux.HandleFunc("GET /acara", auth(acara.ListAcara))

	// Dashboard view models
	mux.HandleFunc("GET /dashboard/acara", auth(acara.DashboardAcara))
	mux.HandleFunc("GET /dashboard/acara/{acaraId}", auth(acara.AcaraForm))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var h http.Handler = mux
	h = middleware.CORS(cfg.CORSOrigins, h)
	h = chimw.Recoverer(h)
	h = middleware.LoggingMiddleware(cfg.Logger, h)
	h = chimw.RealIP(h)
	h = chimw.RequestID(h)
	return h
}

// health godoc
// @Summary Liveness check
// @Tags health
// @Produce plain
// @Success 200 {string} string "ok"
// @Router /health [get]
func health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

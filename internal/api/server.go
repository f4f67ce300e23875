package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/theoyjy/IntelliMap/internal/api/docs"
	"github.com/theoyjy/IntelliMap/internal/api/middleware"
	profileapi "github.com/theoyjy/IntelliMap/internal/api/profile"
	"go.uber.org/zap"
)

// RouterConfig holds the router settings taken from the application config.
type RouterConfig struct {
	AllowedOrigins []string
	// RequestTimeout should exceed the model call timeout.
	RequestTimeout time.Duration
}

// SetupRouter creates and configures the HTTP router
func SetupRouter(cfg RouterConfig, profileHandler *profileapi.Handler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 90 * time.Second
	}

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	})

	// Middleware stack
	r.Use(chimiddleware.Recoverer)                   // Recover from panics
	r.Use(chimiddleware.RequestID)                   // Add request ID
	r.Use(middleware.Logger(logger))                 // Log requests
	r.Use(corsHandler)                               // Handle CORS
	r.Use(chimiddleware.Timeout(cfg.RequestTimeout)) // Default timeout

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	})

	// Swagger documentation endpoints
	docs.RegisterRoutes(r)

	// Register routes
	profileapi.RegisterRoutes(r, profileHandler)

	return r
}

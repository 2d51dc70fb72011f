package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	httpmiddleware "github.com/nitrondigital/wholesaling-api/internal/http/middleware"
	"github.com/nitrondigital/wholesaling-api/internal/intake"
	"github.com/nitrondigital/wholesaling-api/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	IntakeHandler      *intake.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
	GeofenceEnabled    bool
	GeofenceCountry    string
	RateLimitRPS       float64
	RateLimitBurst     int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	// Operational endpoints stay reachable from anywhere.
	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	// Form endpoints sit behind the geofence and the per-IP rate limit.
	r.Route("/api", func(api chi.Router) {
		if cfg.GeofenceEnabled {
			api.Use(httpmiddleware.Geofence(cfg.GeofenceCountry))
		}
		if cfg.RateLimitRPS > 0 {
			api.Use(httpmiddleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		}
		api.Post("/leads", cfg.IntakeHandler.SubmitLead)
		api.Get("/leads", cfg.IntakeHandler.DescribeLeadForm)
		api.Post("/deal-requests", cfg.IntakeHandler.SubmitDealRequest)
	})

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

package chi

import (
	"net/http"

	chirouter "github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/kailas-cloud/legalsearch/internal/metrics"
)

// corsMaxAge is the preflight cache lifetime in seconds.
const corsMaxAge = 3600

// Options configures the router.
type Options struct {
	// BasePath prefixes every API route, e.g. "/api". Empty mounts at the root.
	BasePath       string
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
	// Debug enables go-chi/cors request logging.
	Debug bool
}

// NewRouter wires middleware and routes around si.
// /metrics is always served from the root.
func NewRouter(si ServerInterface, logger *zap.Logger, opts Options) http.Handler {
	r := chirouter.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:     opts.AllowedOrigins,
		AllowedMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials:   false,
		MaxAge:             corsMaxAge,
		OptionsPassthrough: true,
		Debug:              opts.Debug,
	}))
	r.Use(rateLimit(opts.RateLimitRPS, opts.RateLimitBurst))
	r.Use(metrics.Middleware())

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, msgNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	})

	wrapper := ServerInterfaceWrapper{
		Handler: si,
		ErrorHandlerFunc: func(w http.ResponseWriter, _ *http.Request, _ error) {
			writeError(w, http.StatusNotFound, msgNotFound)
		},
	}

	r.Get("/metrics", si.Metrics)

	api := func(r chirouter.Router) {
		r.Post("/generate", si.Generate)
		r.Options("/generate", si.Preflight)
		r.Get("/documents/{id}", wrapper.GetDocument)
		r.Options("/documents/{id}", si.Preflight)
		r.Get("/health", si.HealthCheck)
		r.Options("/health", si.Preflight)
	}
	if opts.BasePath == "" {
		r.Group(api)
	} else {
		r.Route(opts.BasePath, api)
	}

	return r
}

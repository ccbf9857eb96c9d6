// Package http provides the HTTP delivery layer of the microservices: the
// timestamp, whoami, URL shortener, exercise tracker and file metadata APIs.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/vadimbarashkov/microservices/internal/config"
	"github.com/vadimbarashkov/microservices/internal/metrics"
)

// NewRouter initializes a chi router with middleware and the routes of every API.
func NewRouter(
	logger *httplog.Logger,
	m *metrics.Metrics,
	upload config.Upload,
	timestampUseCase timestampUseCase,
	shortURLUseCase shortURLUseCase,
	exerciseUseCase exerciseUseCase,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           84600,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(m.Middleware)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/swagger.yml"),
	))

	r.Get("/docs/swagger.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./docs/swagger.yml")
	})

	r.Method(http.MethodGet, "/metrics", m.Handler())

	validate := newValidator()

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", handlePing)
		r.Get("/hello", handleHello)
		r.Get("/whoami", handleWhoami)

		r.Route("/timestamp", func(r chi.Router) {
			h := newTimestampHandler(timestampUseCase)

			r.Get("/", h.normalize)
			r.Get("/{date}", h.normalize)
		})

		r.Route("/shorturl", func(r chi.Router) {
			h := newShortURLHandler(shortURLUseCase, validate, m)

			r.Post("/", h.shortenURL)
			r.Get("/full", h.listShortURLs)
			r.Get("/{code}", h.resolveShortURL)
		})

		r.Route("/users", func(r chi.Router) {
			h := newExerciseHandler(exerciseUseCase, validate, m)

			r.Get("/", h.listUsers)
			r.Post("/", h.createUser)

			r.Route("/{id}", func(r chi.Router) {
				r.Post("/exercises", h.addExercise)
				r.Get("/logs", h.getLog)
			})
		})

		r.Post("/fileanalyse", newFileHandler(upload.MaxSize, upload.MaxMemory).analyse)
	})

	return r
}

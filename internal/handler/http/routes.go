package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	router.Use(h.withCORS())
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/logout", h.logout)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user", h.currentUser)
		r.Post("/api/user/metrics", h.updateMetrics)
		r.Get("/api/user/summary", h.summary)

		r.Post("/api/exercises", h.addExercise)
		r.Get("/api/exercises", h.getExercises)

		r.Post("/api/food-entries", h.addFoodEntry)
		r.Get("/api/food-entries", h.getFoodEntries)
		r.Delete("/api/food-entries/{id}", h.deleteFoodEntry)

		r.Post("/api/gemini", h.chat)
		r.Post("/api/gemini/calories", h.estimateCalories)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// withCORS allows the configured browser origins to call the API with the
// session cookie.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   h.server.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})
}

package handler

import (
	"net/http"

	"foodiehaven/internal/metrics"
	mw "foodiehaven/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

type Handler struct {
	router *chi.Mux
	foods  *FoodHandler
}

func NewHandler(foods *FoodHandler, logger zerolog.Logger) *Handler {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(mw.Logger(logger))
	router.Use(middleware.Recoverer)
	router.Use(mw.Compress)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	metrics.Register()

	h := &Handler{
		router: router,
		foods:  foods,
	}

	h.registerRoutes()
	return h
}

func (h *Handler) registerRoutes() {
	h.router.Get("/health", h.HealthCheck)
	h.router.Handle("/metrics", promhttp.Handler())

	h.router.Route("/api/foods", func(r chi.Router) {
		r.Get("/", h.foods.List)
		r.Post("/", h.foods.Create)
		r.Get("/search/{query}", h.foods.Search)
		r.Get("/{id}", h.foods.Get)
		r.Put("/{id}", h.foods.Update)
		r.Delete("/{id}", h.foods.Delete)
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

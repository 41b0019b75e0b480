package api

import (
	"net/http"

	"github.com/dom/champion-rotations/internal/api/handlers"
	"github.com/dom/champion-rotations/internal/api/middleware"
	"github.com/dom/champion-rotations/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(services *service.Services, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.RequestLogger(logger.Named("http")))
	r.Use(chiMiddleware.Recoverer)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	rotationHandler := handlers.NewRotationHandler(services.Rotation, logger)

	// Pages
	r.Get("/", rotationHandler.Index)
	r.Get("/history", rotationHandler.History)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/rotations", func(r chi.Router) {
			r.Get("/current", rotationHandler.GetCurrent)
			r.Get("/history", rotationHandler.GetHistory)
		})
	})

	return r
}

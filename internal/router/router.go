package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pawsome-backend/internal/config"
	"pawsome-backend/internal/handler"
	"pawsome-backend/internal/middleware"
)

type Handlers struct {
	Auth    *handler.AuthHandler
	Catalog *handler.CatalogHandler
	Contact *handler.ContactHandler
	Health  *handler.HealthHandler
}

func New(cfg *config.Config, guard *middleware.TokenGuard, h Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/", h.Health.Root)

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Get("/health", h.Health.Health)

		api.Post("/admin/login", h.Auth.Login)

		api.Get("/services", h.Catalog.List)
		api.With(guard.RequireAdmin).Post("/services", h.Catalog.Create)
		api.With(guard.RequireAdmin).Put("/services/reorder", h.Catalog.Reorder)
		api.With(guard.RequireAdmin).Put("/services/{id}", h.Catalog.Update)
		api.With(guard.RequireAdmin).Delete("/services/{id}", h.Catalog.Delete)

		api.Post("/contact", h.Contact.Submit)
		api.With(guard.RequireAdmin).Get("/contact", h.Contact.List)
	})

	return r
}

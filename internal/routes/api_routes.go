package routes

import (
	"github.com/go-chi/chi/v5"

	"bloomwatch/reforesta/internal/api"
	"bloomwatch/reforesta/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers) {

	r.Route("/api/v1", func(v1 chi.Router) {

		// Public map routes: no auth, rate limited per client IP
		v1.Route("/public", func(public chi.Router) {
			public.Use(middleware.RateLimitMiddleware)

			public.Get("/map/campaign", handlers.GetCampaignMap())
			public.Get("/map/stats", handlers.GetPlaceStats())

			public.Get("/regions/provinces", handlers.ListProvinces())
			public.Get("/regions/districts", handlers.ListDistricts())
			public.Get("/regions/localities", handlers.ListLocalities())
		})

		// Admin routes: JWT bearer auth with admin role
		v1.Route("/admin", func(admin chi.Router) {
			admin.Use(middleware.AuthMiddleware())

			// Bulk import pipeline
			admin.Post("/import/process", handlers.ProcessImport())
			admin.Post("/import/commit", handlers.CommitImport())

			// Campaign management
			admin.Get("/campaigns", handlers.ListCampaigns())
			admin.Post("/campaigns", handlers.CreateCampaign())
			admin.Get("/campaigns/{id}", handlers.GetCampaign())
			admin.Put("/campaigns/{id}", handlers.UpdateCampaign())
			admin.Delete("/campaigns/{id}", handlers.DeleteCampaign())

			// Species catalog
			admin.Get("/species", handlers.ListSpecies())
			admin.Post("/species", handlers.CreateSpecies())
			admin.Get("/species/{id}", handlers.GetSpecies())
			admin.Put("/species/{id}", handlers.UpdateSpecies())
			admin.Delete("/species/{id}", handlers.DeleteSpecies())

			// Forest stand catalog
			admin.Get("/stands", handlers.ListStands())
			admin.Post("/stands", handlers.CreateStand())
			admin.Get("/stands/{id}", handlers.GetStand())
			admin.Put("/stands/{id}", handlers.UpdateStand())
			admin.Delete("/stands/{id}", handlers.DeleteStand())
		})
	})
}

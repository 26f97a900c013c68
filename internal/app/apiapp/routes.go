package apiapp

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	authsvc "github.com/ivankudzin/roomshare/backend/internal/services/auth"
	listingssvc "github.com/ivankudzin/roomshare/backend/internal/services/listings"
	profilesvc "github.com/ivankudzin/roomshare/backend/internal/services/profiles"
	ratesvc "github.com/ivankudzin/roomshare/backend/internal/services/rate"
	"github.com/ivankudzin/roomshare/backend/internal/transport/http/handlers"
)

type Dependencies struct {
	Tokens          *authsvc.JWTManager
	ListingsService *listingssvc.Service
	ProfileService  *profilesvc.Service
	RateLimiter     *ratesvc.Limiter
	Logger          *zap.Logger
}

func RegisterRoutes(r chi.Router, deps Dependencies) {
	healthHandler := handlers.NewHealthHandler()
	accommodationsHandler := handlers.NewAccommodationsHandler(deps.ListingsService)
	adminCatalogHandler := handlers.NewAdminCatalogHandler(deps.ListingsService)
	profileHandler := handlers.NewProfileHandler(deps.ProfileService)

	r.Get("/healthz", healthHandler.Handle)

	r.Route("/v1", func(r chi.Router) {
		r.Use(AuthMiddleware(deps.Tokens, deps.Logger))

		r.Group(func(r chi.Router) {
			r.Use(RateLimitMiddleware(deps.RateLimiter, deps.Logger))
			r.Get("/accommodations", accommodationsHandler.List)
			r.Get("/accommodations/{id}/compatibility", accommodationsHandler.Compatibility)
		})

		r.Get("/profile/preferences", profileHandler.GetPreferences)
		r.Put("/profile/preferences", profileHandler.UpdatePreferences)

		r.Group(func(r chi.Router) {
			r.Use(RequireRole(authsvc.RoleAdmin))
			r.Post("/admin/catalog/refresh", adminCatalogHandler.Refresh)
			r.Put("/admin/accommodations/{id}/verify", adminCatalogHandler.SetStatus)
		})
	})
}

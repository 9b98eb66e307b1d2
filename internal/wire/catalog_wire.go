package wire

import (
	"classic-rentals/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	r.Get("/api/home", catalogHandler.GetHome)
	r.Get("/api/cars", catalogHandler.GetCars)
	r.Get("/api/cars/{slug}", catalogHandler.GetCarBySlug)
	r.Get("/api/services", catalogHandler.GetOfferings)
	r.Get("/api/services/{slug}", catalogHandler.GetOfferingBySlug)
	r.Get("/api/rate-packages", catalogHandler.GetRatePackages)
	r.Get("/api/faqs", catalogHandler.GetFAQs)
	r.Get("/api/social-links", catalogHandler.GetSocialLinks)
}

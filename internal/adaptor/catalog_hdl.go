package adaptor

import (
	"net/http"

	"classic-rentals/internal/data/repository"
	"classic-rentals/internal/usecase"
	"classic-rentals/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// GetCars handles GET /api/cars with optional search and location filters
func (h *CatalogHandler) GetCars(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repository.CarFilter{
		Search:   query.Get("search"),
		Location: query.Get("location"),
	}

	cars, err := h.service.ListCars(r.Context(), filter)
	if err != nil {
		handleServiceError(w, h.log, err, "list cars")
		return
	}

	utils.ResponseSuccess(w, "success", cars)
}

// GetCarBySlug handles GET /api/cars/{slug}
func (h *CatalogHandler) GetCarBySlug(w http.ResponseWriter, r *http.Request) {
	car, err := h.service.GetCarBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		handleServiceError(w, h.log, err, "get car by slug")
		return
	}

	utils.ResponseSuccess(w, "success", car)
}

// GetRatePackages handles GET /api/rate-packages
func (h *CatalogHandler) GetRatePackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.service.ListRatePackages(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list rate packages")
		return
	}

	utils.ResponseSuccess(w, "success", packages)
}

// GetOfferings handles GET /api/services
func (h *CatalogHandler) GetOfferings(w http.ResponseWriter, r *http.Request) {
	offerings, err := h.service.ListOfferings(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list offerings")
		return
	}

	utils.ResponseSuccess(w, "success", offerings)
}

// GetOfferingBySlug handles GET /api/services/{slug}
func (h *CatalogHandler) GetOfferingBySlug(w http.ResponseWriter, r *http.Request) {
	offering, err := h.service.GetOfferingBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		handleServiceError(w, h.log, err, "get offering by slug")
		return
	}

	utils.ResponseSuccess(w, "success", offering)
}

// GetFAQs handles GET /api/faqs
func (h *CatalogHandler) GetFAQs(w http.ResponseWriter, r *http.Request) {
	faqs, err := h.service.ListFAQs(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list faqs")
		return
	}

	utils.ResponseSuccess(w, "success", faqs)
}

// GetSocialLinks handles GET /api/social-links
func (h *CatalogHandler) GetSocialLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.service.ListSocialLinks(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list social links")
		return
	}

	utils.ResponseSuccess(w, "success", links)
}

// GetHome handles GET /api/home
func (h *CatalogHandler) GetHome(w http.ResponseWriter, r *http.Request) {
	home, err := h.service.Home(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "home aggregate")
		return
	}

	utils.ResponseSuccess(w, "success", home)
}

package adaptor

import (
	"errors"
	"net/http"

	"classic-rentals/internal/usecase"
	"classic-rentals/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Booking *BookingHandler
	Catalog *CatalogHandler
	Admin   *AdminHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Booking: NewBookingHandler(service.Booking, log),
		Catalog: NewCatalogHandler(service.Catalog, log),
		Admin:   NewAdminHandler(service.Admin, service.Booking, log),
	}
}

// handleServiceError maps service errors onto the response envelope
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *usecase.ValidationError
	if errors.As(err, &validationErr) {
		log.Warn("Validation failed",
			zap.String("operation", operation),
			zap.String("details", validationErr.Error()),
		)
		utils.ResponseBadRequest(w, "Please correct the highlighted fields.", validationErr.Fields)
		return
	}

	if errors.Is(err, usecase.ErrNotFound) {
		utils.ResponseNotFound(w, "Resource not found")
		return
	}

	if errors.Is(err, usecase.ErrUnauthorized) {
		utils.ResponseUnauthorized(w, "Incorrect password. Please try again.")
		return
	}

	log.Error("Service error",
		zap.String("operation", operation),
		zap.Error(err),
	)
	utils.ResponseInternalError(w, "Internal server error")
}

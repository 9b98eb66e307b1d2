package usecase

import (
	"classic-rentals/internal/data/repository"
	"classic-rentals/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Booking BookingService
	Catalog CatalogService
	Admin   AdminService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	booking := NewBookingService(repo, config, log)

	return &Service{
		Booking: booking,
		Catalog: NewCatalogService(repo, log),
		Admin:   NewAdminService(repo, config, booking, log),
	}
}

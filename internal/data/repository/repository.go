package repository

import (
	"classic-rentals/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Car         CarRepository
	CarImage    CarImageRepository
	RatePackage RatePackageRepository
	Offering    OfferingRepository
	FAQ         FAQRepository
	SocialLink  SocialLinkRepository
	Booking     BookingRepository
	Session     SessionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Car:         NewCarRepository(db, log),
		CarImage:    NewCarImageRepository(db, log),
		RatePackage: NewRatePackageRepository(db, log),
		Offering:    NewOfferingRepository(db, log),
		FAQ:         NewFAQRepository(db, log),
		SocialLink:  NewSocialLinkRepository(db, log),
		Booking:     NewBookingRepository(db, log),
		Session:     NewSessionRepository(db, log),
	}
}

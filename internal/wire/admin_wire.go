package wire

import (
	"classic-rentals/internal/adaptor"
	"classic-rentals/internal/data/repository"
	"classic-rentals/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(r chi.Router, adminHandler *adaptor.AdminHandler, repo *repository.Repository, log *zap.Logger) {
	r.Route("/api/admin", func(r chi.Router) {
		// Login is the only admin route outside the session gate
		r.Post("/login", adminHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminSession(repo.Session, log))

			r.Post("/logout", adminHandler.Logout)
			r.Get("/dashboard", adminHandler.Dashboard)

			r.Get("/cars", adminHandler.GetCars)
			r.Post("/cars", adminHandler.CreateCar)
			r.Put("/cars/{id}", adminHandler.UpdateCar)
			r.Delete("/cars/{id}", adminHandler.DeleteCar)

			r.Get("/bookings", adminHandler.GetBookings)
			r.Put("/bookings/{id}/status", adminHandler.UpdateBookingStatus)

			r.Get("/rate-packages", adminHandler.GetRatePackages)
			r.Post("/rate-packages", adminHandler.CreateRatePackage)
			r.Put("/rate-packages/{id}", adminHandler.UpdateRatePackage)
			r.Delete("/rate-packages/{id}", adminHandler.DeleteRatePackage)

			r.Get("/services", adminHandler.GetOfferings)
			r.Post("/services", adminHandler.CreateOffering)
			r.Put("/services/{id}", adminHandler.UpdateOffering)
			r.Delete("/services/{id}", adminHandler.DeleteOffering)
		})
	})
}

package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"classic-rentals/internal/dto/request"
	"classic-rentals/internal/usecase"
	"classic-rentals/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	booking usecase.BookingService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, booking usecase.BookingService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		booking: booking,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// Login handles POST /api/admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	session, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "admin login")
		return
	}

	utils.ResponseSuccess(w, "Welcome back, admin.", session)
}

// Logout handles POST /api/admin/logout
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		handleServiceError(w, h.log, err, "admin logout")
		return
	}

	utils.ResponseSuccess(w, "Logged out", nil)
}

// Dashboard handles GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.Dashboard(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "admin dashboard")
		return
	}

	utils.ResponseSuccess(w, "success", dashboard)
}

// GetCars handles GET /api/admin/cars
func (h *AdminHandler) GetCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.service.ListCars(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "admin list cars")
		return
	}

	utils.ResponseSuccess(w, "success", cars)
}

// CreateCar handles POST /api/admin/cars
func (h *AdminHandler) CreateCar(w http.ResponseWriter, r *http.Request) {
	var req request.CarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	car, err := h.service.CreateCar(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create car")
		return
	}

	utils.ResponseCreated(w, "Classic car added successfully.", car)
}

// UpdateCar handles PUT /api/admin/cars/{id}
func (h *AdminHandler) UpdateCar(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req request.CarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	car, err := h.service.UpdateCar(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update car")
		return
	}

	utils.ResponseSuccess(w, "Car updated successfully.", car)
}

// DeleteCar handles DELETE /api/admin/cars/{id}
func (h *AdminHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteCar(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete car")
		return
	}

	utils.ResponseSuccess(w, "Car removed.", nil)
}

// GetBookings handles GET /api/admin/bookings
func (h *AdminHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.booking.ListBookings(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "admin list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// UpdateBookingStatus handles PUT /api/admin/bookings/{id}/status
func (h *AdminHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req request.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.booking.UpdateBookingStatus(r.Context(), id, req.Status)
	if err != nil {
		handleServiceError(w, h.log, err, "update booking status")
		return
	}

	utils.ResponseSuccess(w, "Booking status updated.", booking)
}

// GetRatePackages handles GET /api/admin/rate-packages
func (h *AdminHandler) GetRatePackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.service.ListRatePackages(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "admin list rate packages")
		return
	}

	utils.ResponseSuccess(w, "success", packages)
}

// CreateRatePackage handles POST /api/admin/rate-packages
func (h *AdminHandler) CreateRatePackage(w http.ResponseWriter, r *http.Request) {
	var req request.RatePackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	pkg, err := h.service.CreateRatePackage(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create rate package")
		return
	}

	utils.ResponseCreated(w, "Rate package added.", pkg)
}

// UpdateRatePackage handles PUT /api/admin/rate-packages/{id}
func (h *AdminHandler) UpdateRatePackage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req request.RatePackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	pkg, err := h.service.UpdateRatePackage(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update rate package")
		return
	}

	utils.ResponseSuccess(w, "Rate package updated.", pkg)
}

// DeleteRatePackage handles DELETE /api/admin/rate-packages/{id}
func (h *AdminHandler) DeleteRatePackage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteRatePackage(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete rate package")
		return
	}

	utils.ResponseSuccess(w, "Rate package removed.", nil)
}

// GetOfferings handles GET /api/admin/services
func (h *AdminHandler) GetOfferings(w http.ResponseWriter, r *http.Request) {
	offerings, err := h.service.ListOfferings(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "admin list offerings")
		return
	}

	utils.ResponseSuccess(w, "success", offerings)
}

// CreateOffering handles POST /api/admin/services
func (h *AdminHandler) CreateOffering(w http.ResponseWriter, r *http.Request) {
	var req request.OfferingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	offering, err := h.service.CreateOffering(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create offering")
		return
	}

	utils.ResponseCreated(w, "Service added.", offering)
}

// UpdateOffering handles PUT /api/admin/services/{id}
func (h *AdminHandler) UpdateOffering(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req request.OfferingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	offering, err := h.service.UpdateOffering(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update offering")
		return
	}

	utils.ResponseSuccess(w, "Service updated.", offering)
}

// DeleteOffering handles DELETE /api/admin/services/{id}
func (h *AdminHandler) DeleteOffering(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteOffering(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete offering")
		return
	}

	utils.ResponseSuccess(w, "Service removed.", nil)
}

func (h *AdminHandler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		utils.ResponseBadRequest(w, "Invalid ID", nil)
		return 0, false
	}
	return id, true
}

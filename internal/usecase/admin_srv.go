package usecase

import (
	"context"
	"strings"
	"time"

	"classic-rentals/internal/data/entity"
	"classic-rentals/internal/data/repository"
	"classic-rentals/internal/dto/request"
	"classic-rentals/internal/dto/response"
	"classic-rentals/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dashboardRecentLimit = 5

type AdminService interface {
	Login(ctx context.Context, req *request.AdminLoginRequest) (*response.AdminLoginResponse, error)
	Logout(ctx context.Context, token string) error
	Dashboard(ctx context.Context) (*response.DashboardResponse, error)

	ListCars(ctx context.Context) ([]response.CarResponse, error)
	CreateCar(ctx context.Context, req *request.CarRequest) (*response.CarResponse, error)
	UpdateCar(ctx context.Context, id int64, req *request.CarRequest) (*response.CarResponse, error)
	DeleteCar(ctx context.Context, id int64) error

	ListRatePackages(ctx context.Context) ([]response.RatePackageResponse, error)
	CreateRatePackage(ctx context.Context, req *request.RatePackageRequest) (*response.RatePackageResponse, error)
	UpdateRatePackage(ctx context.Context, id int64, req *request.RatePackageRequest) (*response.RatePackageResponse, error)
	DeleteRatePackage(ctx context.Context, id int64) error

	ListOfferings(ctx context.Context) ([]response.OfferingResponse, error)
	CreateOffering(ctx context.Context, req *request.OfferingRequest) (*response.OfferingResponse, error)
	UpdateOffering(ctx context.Context, id int64, req *request.OfferingRequest) (*response.OfferingResponse, error)
	DeleteOffering(ctx context.Context, id int64) error
}

type adminService struct {
	repo    *repository.Repository
	config  *utils.Config
	booking BookingService
	log     *zap.Logger
}

func NewAdminService(repo *repository.Repository, config *utils.Config, booking BookingService, log *zap.Logger) AdminService {
	return &adminService{
		repo:    repo,
		config:  config,
		booking: booking,
		log:     log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) Login(ctx context.Context, req *request.AdminLoginRequest) (*response.AdminLoginResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, NewValidationError(fields)
	}

	if !utils.CheckPasswordHash(req.Password, s.config.Admin.PasswordHash) {
		s.log.Warn("Admin login rejected")
		return nil, ErrUnauthorized
	}

	session := &entity.AdminSession{
		Token:     uuid.New(),
		ExpiresAt: time.Now().Add(time.Duration(s.config.Admin.SessionExpiryHours) * time.Hour),
	}
	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	s.log.Info("Admin logged in", zap.Time("expires_at", session.ExpiresAt))

	return &response.AdminLoginResponse{
		Token:     session.Token.String(),
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *adminService) Logout(ctx context.Context, token string) error {
	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		return err
	}
	s.log.Info("Admin logged out")
	return nil
}

func (s *adminService) Dashboard(ctx context.Context) (*response.DashboardResponse, error) {
	totalCars, err := s.repo.Car.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalBookings, err := s.repo.Booking.Count(ctx)
	if err != nil {
		return nil, err
	}

	pendingBookings, err := s.repo.Booking.CountByStatus(ctx, entity.BookingStatusPending)
	if err != nil {
		return nil, err
	}

	totalOfferings, err := s.repo.Offering.Count(ctx)
	if err != nil {
		return nil, err
	}

	collectedDeposit, err := s.repo.Booking.SumDeposits(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.repo.Booking.FindRecent(ctx, dashboardRecentLimit)
	if err != nil {
		return nil, err
	}

	recentResponses := make([]response.BookingResponse, 0, len(recent))
	for _, booking := range recent {
		resp, err := s.booking.GetBooking(ctx, booking.ID)
		if err != nil {
			return nil, err
		}
		recentResponses = append(recentResponses, *resp)
	}

	return &response.DashboardResponse{
		TotalBookings:    totalBookings,
		PendingBookings:  pendingBookings,
		TotalCars:        totalCars,
		TotalOfferings:   totalOfferings,
		CollectedDeposit: collectedDeposit,
		RecentBookings:   recentResponses,
	}, nil
}

func (s *adminService) ListCars(ctx context.Context) ([]response.CarResponse, error) {
	cars, err := s.repo.Car.FindAll(ctx, repository.CarFilter{})
	if err != nil {
		return nil, err
	}

	responses := make([]response.CarResponse, 0, len(cars))
	for _, car := range cars {
		images, err := s.repo.CarImage.FindByCarID(ctx, car.ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, response.ToCarResponse(car, images))
	}
	return responses, nil
}

func (s *adminService) CreateCar(ctx context.Context, req *request.CarRequest) (*response.CarResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, NewValidationError(fields)
	}

	car := carFromRequest(req)
	car.Slug = utils.MakeSlug(req.Name, req.Make, req.Model)

	if err := s.repo.Car.Create(ctx, car); err != nil {
		return nil, err
	}

	images, err := s.saveCarImages(ctx, car.ID, req.ImageLines)
	if err != nil {
		return nil, err
	}

	s.log.Info("Car created", zap.Int64("car_id", car.ID), zap.String("slug", car.Slug))

	resp := response.ToCarResponse(car, images)
	return &resp, nil
}

func (s *adminService) UpdateCar(ctx context.Context, id int64, req *request.CarRequest) (*response.CarResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, NewValidationError(fields)
	}

	existing, err := s.repo.Car.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	car := carFromRequest(req)
	car.ID = id
	car.Slug = utils.MakeSlug(req.Name, req.Make, req.Model)

	if err := s.repo.Car.Update(ctx, car); err != nil {
		return nil, err
	}

	images, err := s.saveCarImages(ctx, id, req.ImageLines)
	if err != nil {
		return nil, err
	}

	s.log.Info("Car updated", zap.Int64("car_id", id))

	resp := response.ToCarResponse(car, images)
	return &resp, nil
}

func (s *adminService) DeleteCar(ctx context.Context, id int64) error {
	existing, err := s.repo.Car.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	if err := s.repo.Car.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Car deleted", zap.Int64("car_id", id))
	return nil
}

func (s *adminService) ListRatePackages(ctx context.Context) ([]response.RatePackageResponse, error) {
	packages, err := s.repo.RatePackage.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]response.RatePackageResponse, 0, len(packages))
	for _, pkg := range packages {
		responses = append(responses, response.ToRatePackageResponse(pkg))
	}
	return responses, nil
}

func (s *adminService) CreateRatePackage(ctx context.Context, req *request.RatePackageRequest) (*response.RatePackageResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, NewValidationError(fields)
	}

	pkg := ratePackageFromRequest(req)
	pkg.Slug = utils.MakeSlug(req.Label)

	if err := s.repo.RatePackage.Create(ctx, pkg); err != nil {
		return nil, err
	}

	s.log.Info("Rate package created", zap.Int64("rate_package_id", pkg.ID))

	resp := response.ToRatePackageResponse(pkg)
	return &resp, nil
}

func (s *adminService) UpdateRatePackage(ctx context.Context, id int64, req *request.RatePackageRequest) (*response.RatePackageResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, NewValidationError(fields)
	}

	existing, err := s.repo.RatePackage.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	pkg := ratePackageFromRequest(req)
	pkg.ID = id
	pkg.Slug = utils.MakeSlug(req.Label)

	if err := s.repo.RatePackage.Update(ctx, pkg); err != nil {
		return nil, err
	}

	s.log.Info("Rate package updated", zap.Int64("rate_package_id", id))

	resp := response.ToRatePackageResponse(pkg)
	return &resp, nil
}

func (s *adminService) DeleteRatePackage(ctx context.Context, id int64) error {
	existing, err := s.repo.RatePackage.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	if err := s.repo.RatePackage.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Rate package deleted", zap.Int64("rate_package_id", id))
	return nil
}

func (s *adminService) ListOfferings(ctx context.Context) ([]response.OfferingResponse, error) {
	offerings, err := s.repo.Offering.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]response.OfferingResponse, 0, len(offerings))
	for _, offering := range offerings {
		responses = append(responses, response.ToOfferingResponse(offering))
	}
	return responses, nil
}

func (s *adminService) CreateOffering(ctx context.Context, req *request.OfferingRequest) (*response.OfferingResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, NewValidationError(fields)
	}

	offering := offeringFromRequest(req)
	offering.Slug = utils.MakeSlug(req.Title)

	if err := s.repo.Offering.Create(ctx, offering); err != nil {
		return nil, err
	}

	s.log.Info("Offering created", zap.Int64("offering_id", offering.ID))

	resp := response.ToOfferingResponse(offering)
	return &resp, nil
}

func (s *adminService) UpdateOffering(ctx context.Context, id int64, req *request.OfferingRequest) (*response.OfferingResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, NewValidationError(fields)
	}

	existing, err := s.repo.Offering.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	offering := offeringFromRequest(req)
	offering.ID = id
	offering.Slug = utils.MakeSlug(req.Title)

	if err := s.repo.Offering.Update(ctx, offering); err != nil {
		return nil, err
	}

	s.log.Info("Offering updated", zap.Int64("offering_id", id))

	resp := response.ToOfferingResponse(offering)
	return &resp, nil
}

func (s *adminService) DeleteOffering(ctx context.Context, id int64) error {
	existing, err := s.repo.Offering.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	if err := s.repo.Offering.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Offering deleted", zap.Int64("offering_id", id))
	return nil
}

func (s *adminService) saveCarImages(ctx context.Context, carID int64, rawLines string) ([]*entity.CarImage, error) {
	lines := utils.ParseImageLines(rawLines)

	images := make([]*entity.CarImage, 0, len(lines))
	for _, line := range lines {
		images = append(images, &entity.CarImage{
			CarID:     carID,
			URL:       line.URL,
			AltText:   line.AltText,
			IsPrimary: line.IsPrimary,
		})
	}

	if err := s.repo.CarImage.ReplaceForCar(ctx, carID, images); err != nil {
		return nil, err
	}
	return images, nil
}

func carFromRequest(req *request.CarRequest) *entity.Car {
	return &entity.Car{
		Name:             strings.TrimSpace(req.Name),
		Make:             strings.TrimSpace(req.Make),
		Model:            strings.TrimSpace(req.Model),
		Year:             nilIfZero(req.Year),
		Engine:           nilIfEmpty(req.Engine),
		DisplacementCc:   nilIfZero(req.DisplacementCc),
		Transmission:     nilIfEmpty(req.Transmission),
		SeatingCapacity:  nilIfZero(req.SeatingCapacity),
		Location:         nilIfEmpty(req.Location),
		AvailabilityNote: nilIfEmpty(req.AvailabilityNote),
		ShortDescription: nilIfEmpty(req.ShortDescription),
		LongDescription:  nilIfEmpty(req.LongDescription),
		HourlyRate:       nilIfZero64(req.HourlyRate),
		MinimumHours:     nilIfZero(req.MinimumHours),
	}
}

func ratePackageFromRequest(req *request.RatePackageRequest) *entity.RatePackage {
	return &entity.RatePackage{
		Label:         strings.TrimSpace(req.Label),
		DurationHours: req.DurationHours,
		Price:         req.Price,
		Description:   nilIfEmpty(req.Description),
	}
}

func offeringFromRequest(req *request.OfferingRequest) *entity.Offering {
	return &entity.Offering{
		Title:       strings.TrimSpace(req.Title),
		Summary:     strings.TrimSpace(req.Summary),
		Description: strings.TrimSpace(req.Description),
		Icon:        nilIfEmpty(req.Icon),
	}
}

func nilIfZero(value int) *int {
	if value == 0 {
		return nil
	}
	return &value
}

func nilIfZero64(value int64) *int64 {
	if value == 0 {
		return nil
	}
	return &value
}

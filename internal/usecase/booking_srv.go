package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"classic-rentals/internal/data/entity"
	"classic-rentals/internal/data/repository"
	"classic-rentals/internal/dto/request"
	"classic-rentals/internal/dto/response"
	"classic-rentals/pkg/utils"

	"go.uber.org/zap"
)

const eventDateLayout = "2006-01-02"

type BookingService interface {
	SubmitBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error)
	QuoteBooking(ctx context.Context, req *request.QuoteRequest) (*response.BreakdownResponse, error)
	GetBooking(ctx context.Context, id int64) (*response.BookingResponse, error)
	ListBookings(ctx context.Context) ([]response.BookingResponse, error)
	UpdateBookingStatus(ctx context.Context, id int64, status string) (*response.BookingResponse, error)
}

type bookingService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
	now    func() time.Time
}

func NewBookingService(repo *repository.Repository, config *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "booking")),
		now:    time.Now,
	}
}

// validateBookingRequest layers the date rules on top of the struct tags.
// All checks run before anything touches the database.
func (s *bookingService) validateBookingRequest(req *request.CreateBookingRequest) (time.Time, map[string]string) {
	fields := utils.ValidateStruct(req)
	if fields == nil {
		fields = make(map[string]string)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		fields["customerName"] = "Please provide your full name."
	}
	if strings.TrimSpace(req.Phone) == "" {
		fields["phone"] = "Let us know the best number to reach you."
	}

	var eventDate time.Time
	if req.EventDate == "" {
		fields["eventDate"] = "Select the date you need the car."
	} else {
		// time.Parse tolerates unpadded months/days; the round-trip compare
		// keeps the accepted format strictly YYYY-MM-DD
		parsed, err := time.Parse(eventDateLayout, req.EventDate)
		if err != nil || parsed.Format(eventDateLayout) != req.EventDate {
			fields["eventDate"] = "Provide a valid date."
		} else {
			today := s.now()
			todayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
			if parsed.Before(todayStart) {
				fields["eventDate"] = "Booking date must be today or later."
			} else {
				eventDate = parsed
			}
		}
	}

	if len(fields) == 0 {
		return eventDate, nil
	}
	return eventDate, fields
}

// resolveSelection loads the optional car and rate package. An id that no
// longer resolves is treated as "none selected" rather than failing the
// booking.
func (s *bookingService) resolveSelection(ctx context.Context, carID, ratePackageID int64) (*entity.Car, *entity.RatePackage, error) {
	var car *entity.Car
	var pkg *entity.RatePackage

	if carID > 0 {
		found, err := s.repo.Car.FindByID(ctx, carID)
		if err != nil {
			return nil, nil, err
		}
		if found == nil {
			s.log.Warn("Booking references unknown car, pricing with defaults",
				zap.Int64("car_id", carID),
			)
		}
		car = found
	}

	if ratePackageID > 0 {
		found, err := s.repo.RatePackage.FindByID(ctx, ratePackageID)
		if err != nil {
			return nil, nil, err
		}
		if found == nil {
			s.log.Warn("Booking references unknown rate package, pricing hourly",
				zap.Int64("rate_package_id", ratePackageID),
			)
		}
		pkg = found
	}

	return car, pkg, nil
}

func (s *bookingService) SubmitBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error) {
	eventDate, fields := s.validateBookingRequest(req)
	if fields != nil {
		return nil, NewValidationError(fields)
	}

	car, pkg, err := s.resolveSelection(ctx, req.CarID, req.RatePackageID)
	if err != nil {
		return nil, err
	}

	hours := req.HoursRequested
	if hours == 0 && pkg != nil {
		hours = pkg.DurationHours
	}

	breakdown := CalculateBreakdown(s.config.Pricing, QuoteInput{
		Car:            car,
		RatePackage:    pkg,
		HoursRequested: hours,
		TowingRequired: req.TowingRequired,
	})

	booking := &entity.Booking{
		Reference:      utils.GenerateBookingRef(),
		CustomerName:   strings.TrimSpace(req.CustomerName),
		Email:          strings.TrimSpace(req.Email),
		Phone:          strings.TrimSpace(req.Phone),
		EventType:      nilIfEmpty(req.EventType),
		EventDate:      eventDate,
		Location:       nilIfEmpty(req.Location),
		TowingRequired: req.TowingRequired,
		Notes:          nilIfEmpty(req.Notes),
		HoursRequested: breakdown.EffectiveHours,
		TotalAmount:    breakdown.TotalAmount,
		DepositAmount:  breakdown.DepositAmount,
		Status:         entity.BookingStatusPending,
	}
	if car != nil {
		booking.CarID = &car.ID
	}
	if pkg != nil {
		booking.RatePackageID = &pkg.ID
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("submit booking: %w", err)
	}

	s.log.Info("Booking received",
		zap.Int64("booking_id", booking.ID),
		zap.String("reference", booking.Reference),
		zap.Int64("total_amount", breakdown.TotalAmount),
		zap.Bool("requires_manual_quote", breakdown.RequiresManualQuote),
	)

	return &response.BookingCreatedResponse{
		BookingID:           booking.ID,
		Reference:           booking.Reference,
		TotalAmount:         breakdown.TotalAmount,
		DepositAmount:       breakdown.DepositAmount,
		RequiresManualQuote: breakdown.RequiresManualQuote,
		PaymentLink:         s.config.Payment.Link,
	}, nil
}

func (s *bookingService) QuoteBooking(ctx context.Context, req *request.QuoteRequest) (*response.BreakdownResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, NewValidationError(fields)
	}

	car, pkg, err := s.resolveSelection(ctx, req.CarID, req.RatePackageID)
	if err != nil {
		return nil, err
	}

	hours := req.HoursRequested
	if hours == 0 && pkg != nil {
		hours = pkg.DurationHours
	}

	breakdown := CalculateBreakdown(s.config.Pricing, QuoteInput{
		Car:            car,
		RatePackage:    pkg,
		HoursRequested: hours,
		TowingRequired: req.TowingRequired,
	})

	return &response.BreakdownResponse{
		BaseAmount:          breakdown.BaseAmount,
		TotalAmount:         breakdown.TotalAmount,
		DepositAmount:       breakdown.DepositAmount,
		HourlyRate:          breakdown.HourlyRate,
		EffectiveHours:      breakdown.EffectiveHours,
		PackageLabel:        breakdown.PackageLabel,
		OutstationFee:       breakdown.OutstationFee,
		RequiresManualQuote: breakdown.RequiresManualQuote,
	}, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id int64) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrNotFound
	}

	resp, err := s.toBookingResponse(ctx, booking)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *bookingService) ListBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		resp, err := s.toBookingResponse(ctx, booking)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}

	return responses, nil
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, id int64, status string) (*response.BookingResponse, error) {
	newStatus := entity.BookingStatus(status)
	if !newStatus.IsValid() {
		return nil, NewValidationError(map[string]string{
			"status": "Must be one of: PENDING, CONFIRMED, PAID, COMPLETED, CANCELLED",
		})
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrNotFound
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}
	booking.Status = newStatus

	s.log.Info("Booking status updated",
		zap.Int64("booking_id", id),
		zap.String("status", status),
	)

	return s.toBookingResponse(ctx, booking)
}

func (s *bookingService) toBookingResponse(ctx context.Context, booking *entity.Booking) (*response.BookingResponse, error) {
	var car *entity.Car
	var pkg *entity.RatePackage

	if booking.CarID != nil {
		found, err := s.repo.Car.FindByID(ctx, *booking.CarID)
		if err != nil {
			return nil, err
		}
		car = found
	}
	if booking.RatePackageID != nil {
		found, err := s.repo.RatePackage.FindByID(ctx, *booking.RatePackageID)
		if err != nil {
			return nil, err
		}
		pkg = found
	}

	resp := response.ToBookingResponse(booking, car, pkg)
	return &resp, nil
}

func nilIfEmpty(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

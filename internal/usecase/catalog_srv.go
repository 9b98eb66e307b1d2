package usecase

import (
	"context"

	"classic-rentals/internal/data/entity"
	"classic-rentals/internal/data/repository"
	"classic-rentals/internal/dto/response"

	"go.uber.org/zap"
)

const (
	featuredCarLimit   = 3
	homeFAQLimit       = 6
	recentBookingLimit = 3
	relatedCarLimit    = 3
)

type CatalogService interface {
	ListCars(ctx context.Context, filter repository.CarFilter) ([]response.CarResponse, error)
	GetCarBySlug(ctx context.Context, slug string) (*response.CarDetailResponse, error)
	ListRatePackages(ctx context.Context) ([]response.RatePackageResponse, error)
	ListOfferings(ctx context.Context) ([]response.OfferingResponse, error)
	GetOfferingBySlug(ctx context.Context, slug string) (*response.OfferingResponse, error)
	ListFAQs(ctx context.Context) ([]response.FAQResponse, error)
	ListSocialLinks(ctx context.Context) ([]response.SocialLinkResponse, error)
	Home(ctx context.Context) (*response.HomeResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListCars(ctx context.Context, filter repository.CarFilter) ([]response.CarResponse, error) {
	cars, err := s.repo.Car.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.toCarResponses(ctx, cars)
}

func (s *catalogService) GetCarBySlug(ctx context.Context, slug string) (*response.CarDetailResponse, error) {
	car, err := s.repo.Car.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, ErrNotFound
	}

	images, err := s.repo.CarImage.FindByCarID(ctx, car.ID)
	if err != nil {
		return nil, err
	}

	related, err := s.repo.Car.FindRelated(ctx, car.ID, relatedCarLimit)
	if err != nil {
		return nil, err
	}
	relatedResponses, err := s.toCarResponses(ctx, related)
	if err != nil {
		return nil, err
	}

	return &response.CarDetailResponse{
		CarResponse: response.ToCarResponse(car, images),
		Related:     relatedResponses,
	}, nil
}

func (s *catalogService) ListRatePackages(ctx context.Context) ([]response.RatePackageResponse, error) {
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

func (s *catalogService) ListOfferings(ctx context.Context) ([]response.OfferingResponse, error) {
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

func (s *catalogService) GetOfferingBySlug(ctx context.Context, slug string) (*response.OfferingResponse, error) {
	offering, err := s.repo.Offering.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if offering == nil {
		return nil, ErrNotFound
	}

	resp := response.ToOfferingResponse(offering)
	return &resp, nil
}

func (s *catalogService) ListFAQs(ctx context.Context) ([]response.FAQResponse, error) {
	faqs, err := s.repo.FAQ.FindActive(ctx, 0)
	if err != nil {
		return nil, err
	}
	return toFAQResponses(faqs), nil
}

func (s *catalogService) ListSocialLinks(ctx context.Context) ([]response.SocialLinkResponse, error) {
	links, err := s.repo.SocialLink.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]response.SocialLinkResponse, 0, len(links))
	for _, link := range links {
		responses = append(responses, response.ToSocialLinkResponse(link))
	}
	return responses, nil
}

func (s *catalogService) Home(ctx context.Context) (*response.HomeResponse, error) {
	featured, err := s.repo.Car.FindRecent(ctx, featuredCarLimit)
	if err != nil {
		return nil, err
	}
	featuredResponses, err := s.toCarResponses(ctx, featured)
	if err != nil {
		return nil, err
	}

	packages, err := s.ListRatePackages(ctx)
	if err != nil {
		return nil, err
	}

	offerings, err := s.ListOfferings(ctx)
	if err != nil {
		return nil, err
	}

	faqs, err := s.repo.FAQ.FindActive(ctx, homeFAQLimit)
	if err != nil {
		return nil, err
	}

	links, err := s.ListSocialLinks(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.repo.Booking.FindRecent(ctx, recentBookingLimit)
	if err != nil {
		return nil, err
	}
	highlights, err := s.toBookingHighlights(ctx, recent)
	if err != nil {
		return nil, err
	}

	return &response.HomeResponse{
		FeaturedCars:   featuredResponses,
		RatePackages:   packages,
		Offerings:      offerings,
		FAQs:           toFAQResponses(faqs),
		SocialLinks:    links,
		RecentBookings: highlights,
	}, nil
}

// toCarResponses attaches the primary image to each listed car. Full
// galleries only load on the detail page.
func (s *catalogService) toCarResponses(ctx context.Context, cars []*entity.Car) ([]response.CarResponse, error) {
	responses := make([]response.CarResponse, 0, len(cars))
	for _, car := range cars {
		primary, err := s.repo.CarImage.FindPrimaryByCarID(ctx, car.ID)
		if err != nil {
			return nil, err
		}

		var images []*entity.CarImage
		if primary != nil {
			images = []*entity.CarImage{primary}
		}
		responses = append(responses, response.ToCarResponse(car, images))
	}
	return responses, nil
}

func (s *catalogService) toBookingHighlights(ctx context.Context, bookings []*entity.Booking) ([]response.BookingHighlight, error) {
	highlights := make([]response.BookingHighlight, 0, len(bookings))
	for _, booking := range bookings {
		highlight := response.BookingHighlight{
			ID:        booking.ID,
			EventDate: booking.EventDate,
			Status:    string(booking.Status),
		}

		if booking.CarID != nil {
			car, err := s.repo.Car.FindByID(ctx, *booking.CarID)
			if err != nil {
				return nil, err
			}
			if car != nil {
				highlight.CarName = &car.Name
			}
		}
		if booking.RatePackageID != nil {
			pkg, err := s.repo.RatePackage.FindByID(ctx, *booking.RatePackageID)
			if err != nil {
				return nil, err
			}
			if pkg != nil {
				highlight.PackageLabel = &pkg.Label
			}
		}

		highlights = append(highlights, highlight)
	}
	return highlights, nil
}

func toFAQResponses(faqs []*entity.FAQ) []response.FAQResponse {
	responses := make([]response.FAQResponse, 0, len(faqs))
	for _, faq := range faqs {
		responses = append(responses, response.ToFAQResponse(faq))
	}
	return responses
}

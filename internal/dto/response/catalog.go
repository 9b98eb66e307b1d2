package response

import (
	"time"

	"classic-rentals/internal/data/entity"
)

type CarImageResponse struct {
	ID        int64   `json:"id"`
	URL       string  `json:"url"`
	AltText   *string `json:"altText"`
	IsPrimary bool    `json:"isPrimary"`
}

type CarResponse struct {
	ID               int64              `json:"id"`
	Name             string             `json:"name"`
	Make             string             `json:"make"`
	Model            string             `json:"model"`
	Slug             string             `json:"slug"`
	Year             *int               `json:"year"`
	Engine           *string            `json:"engine"`
	DisplacementCc   *int               `json:"displacementCc"`
	Transmission     *string            `json:"transmission"`
	SeatingCapacity  *int               `json:"seatingCapacity"`
	Location         *string            `json:"location"`
	AvailabilityNote *string            `json:"availabilityNote"`
	ShortDescription *string            `json:"shortDescription"`
	LongDescription  *string            `json:"longDescription"`
	HourlyRate       *int64             `json:"hourlyRate"`
	MinimumHours     *int               `json:"minimumHours"`
	Images           []CarImageResponse `json:"images"`
	CreatedAt        time.Time          `json:"createdAt"`
}

// CarDetailResponse adds related cars for the detail page
type CarDetailResponse struct {
	CarResponse
	Related []CarResponse `json:"related"`
}

type RatePackageResponse struct {
	ID            int64   `json:"id"`
	Label         string  `json:"label"`
	Slug          string  `json:"slug"`
	DurationHours int     `json:"durationHours"`
	Price         int64   `json:"price"`
	Description   *string `json:"description"`
}

type OfferingResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Summary     string  `json:"summary"`
	Description string  `json:"description"`
	Icon        *string `json:"icon"`
}

type FAQResponse struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type SocialLinkResponse struct {
	Platform string  `json:"platform"`
	URL      string  `json:"url"`
	Handle   *string `json:"handle"`
}

// BookingHighlight is the slim recent-booking line shown on the landing page
type BookingHighlight struct {
	ID           int64     `json:"id"`
	EventDate    time.Time `json:"eventDate"`
	Status       string    `json:"status"`
	CarName      *string   `json:"carName"`
	PackageLabel *string   `json:"packageLabel"`
}

// HomeResponse aggregates everything the landing page renders in one call
type HomeResponse struct {
	FeaturedCars   []CarResponse         `json:"featuredCars"`
	RatePackages   []RatePackageResponse `json:"ratePackages"`
	Offerings      []OfferingResponse    `json:"offerings"`
	FAQs           []FAQResponse         `json:"faqs"`
	SocialLinks    []SocialLinkResponse  `json:"socialLinks"`
	RecentBookings []BookingHighlight    `json:"recentBookings"`
}

func ToCarImageResponse(image *entity.CarImage) CarImageResponse {
	return CarImageResponse{
		ID:        image.ID,
		URL:       image.URL,
		AltText:   image.AltText,
		IsPrimary: image.IsPrimary,
	}
}

func ToCarResponse(car *entity.Car, images []*entity.CarImage) CarResponse {
	imageResponses := make([]CarImageResponse, 0, len(images))
	for _, image := range images {
		imageResponses = append(imageResponses, ToCarImageResponse(image))
	}

	return CarResponse{
		ID:               car.ID,
		Name:             car.Name,
		Make:             car.Make,
		Model:            car.Model,
		Slug:             car.Slug,
		Year:             car.Year,
		Engine:           car.Engine,
		DisplacementCc:   car.DisplacementCc,
		Transmission:     car.Transmission,
		SeatingCapacity:  car.SeatingCapacity,
		Location:         car.Location,
		AvailabilityNote: car.AvailabilityNote,
		ShortDescription: car.ShortDescription,
		LongDescription:  car.LongDescription,
		HourlyRate:       car.HourlyRate,
		MinimumHours:     car.MinimumHours,
		Images:           imageResponses,
		CreatedAt:        car.CreatedAt,
	}
}

func ToRatePackageResponse(pkg *entity.RatePackage) RatePackageResponse {
	return RatePackageResponse{
		ID:            pkg.ID,
		Label:         pkg.Label,
		Slug:          pkg.Slug,
		DurationHours: pkg.DurationHours,
		Price:         pkg.Price,
		Description:   pkg.Description,
	}
}

func ToOfferingResponse(offering *entity.Offering) OfferingResponse {
	return OfferingResponse{
		ID:          offering.ID,
		Title:       offering.Title,
		Slug:        offering.Slug,
		Summary:     offering.Summary,
		Description: offering.Description,
		Icon:        offering.Icon,
	}
}

func ToFAQResponse(faq *entity.FAQ) FAQResponse {
	return FAQResponse{
		ID:       faq.ID,
		Question: faq.Question,
		Answer:   faq.Answer,
	}
}

func ToSocialLinkResponse(link *entity.SocialLink) SocialLinkResponse {
	return SocialLinkResponse{
		Platform: link.Platform,
		URL:      link.URL,
		Handle:   link.Handle,
	}
}

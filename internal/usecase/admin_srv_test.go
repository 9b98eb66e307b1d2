package usecase

import (
	"context"
	"testing"
	"time"

	"classic-rentals/internal/data/entity"
	"classic-rentals/internal/data/repository"
	"classic-rentals/internal/dto/request"
	"classic-rentals/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAdminService(t *testing.T, repo *repository.Repository, password string) AdminService {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	config := testConfig()
	config.Admin = utils.AdminConfig{
		PasswordHash:       hash,
		SessionExpiryHours: 1,
	}

	booking := NewBookingService(repo, config, zap.NewNop())
	return NewAdminService(repo, config, booking, zap.NewNop())
}

func TestAdminLogin_Success(t *testing.T) {
	var saved *entity.AdminSession
	repo := &repository.Repository{
		Session: &mockSessionRepo{
			createFn: func(ctx context.Context, session *entity.AdminSession) error {
				session.ID = 1
				saved = session
				return nil
			},
		},
	}
	service := newTestAdminService(t, repo, "drive-classics")

	resp, err := service.Login(context.Background(), &request.AdminLoginRequest{Password: "drive-classics"})

	assert.NoError(t, err)
	if assert.NotNil(t, resp) {
		assert.NotEmpty(t, resp.Token)
		assert.True(t, resp.ExpiresAt.After(time.Now()))
	}
	if assert.NotNil(t, saved) {
		assert.Equal(t, resp.Token, saved.Token.String())
	}
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	createCalled := false
	repo := &repository.Repository{
		Session: &mockSessionRepo{
			createFn: func(ctx context.Context, session *entity.AdminSession) error {
				createCalled = true
				return nil
			},
		},
	}
	service := newTestAdminService(t, repo, "drive-classics")

	resp, err := service.Login(context.Background(), &request.AdminLoginRequest{Password: "guess"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, createCalled)
}

func TestAdminLogin_EmptyPassword(t *testing.T) {
	repo := &repository.Repository{Session: &mockSessionRepo{}}
	service := newTestAdminService(t, repo, "drive-classics")

	_, err := service.Login(context.Background(), &request.AdminLoginRequest{})

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestAdminLogout_RevokesSession(t *testing.T) {
	var revoked string
	repo := &repository.Repository{
		Session: &mockSessionRepo{
			revokeFn: func(ctx context.Context, token string) error {
				revoked = token
				return nil
			},
		},
	}
	service := newTestAdminService(t, repo, "drive-classics")

	err := service.Logout(context.Background(), "session-token")

	assert.NoError(t, err)
	assert.Equal(t, "session-token", revoked)
}

func TestDashboard_AggregatesCounts(t *testing.T) {
	repo := &repository.Repository{
		Car: &mockCarRepo{
			countFn: func(ctx context.Context) (int64, error) { return 4, nil },
		},
		RatePackage: &mockRatePackageRepo{},
		Offering: &mockOfferingRepo{
			countFn: func(ctx context.Context) (int64, error) { return 3, nil },
		},
		Booking: &mockBookingRepo{
			countFn: func(ctx context.Context) (int64, error) { return 12, nil },
			countByStatusFn: func(ctx context.Context, status entity.BookingStatus) (int64, error) {
				assert.Equal(t, entity.BookingStatusPending, status)
				return 5, nil
			},
			sumDepositsFn: func(ctx context.Context) (int64, error) { return 9900, nil },
		},
		Session: &mockSessionRepo{},
	}
	service := newTestAdminService(t, repo, "drive-classics")

	dashboard, err := service.Dashboard(context.Background())

	assert.NoError(t, err)
	if assert.NotNil(t, dashboard) {
		assert.Equal(t, int64(12), dashboard.TotalBookings)
		assert.Equal(t, int64(5), dashboard.PendingBookings)
		assert.Equal(t, int64(4), dashboard.TotalCars)
		assert.Equal(t, int64(3), dashboard.TotalOfferings)
		assert.Equal(t, int64(9900), dashboard.CollectedDeposit)
		assert.Empty(t, dashboard.RecentBookings)
	}
}

func TestCreateCar_BuildsSlugAndImages(t *testing.T) {
	var createdCar *entity.Car
	var replacedImages []*entity.CarImage
	repo := &repository.Repository{
		Car: &mockCarRepo{
			createFn: func(ctx context.Context, car *entity.Car) error {
				car.ID = 11
				createdCar = car
				return nil
			},
		},
		CarImage: &mockCarImageRepo{
			replaceForCarFn: func(ctx context.Context, carID int64, images []*entity.CarImage) error {
				replacedImages = images
				return nil
			},
		},
		RatePackage: &mockRatePackageRepo{},
		Session:     &mockSessionRepo{},
	}
	service := newTestAdminService(t, repo, "drive-classics")

	resp, err := service.CreateCar(context.Background(), &request.CarRequest{
		Name:       "Eleanor",
		Make:       "Ford",
		Model:      "Mustang GT500",
		ImageLines: "https://cdn.example.com/eleanor.jpg|Front view\nhttps://cdn.example.com/eleanor-2.jpg",
	})

	assert.NoError(t, err)
	if assert.NotNil(t, createdCar) {
		assert.Equal(t, "eleanor-ford-mustang-gt500", createdCar.Slug)
		assert.Nil(t, createdCar.HourlyRate)
	}
	if assert.Len(t, replacedImages, 2) {
		assert.True(t, replacedImages[0].IsPrimary)
		assert.False(t, replacedImages[1].IsPrimary)
		if assert.NotNil(t, replacedImages[0].AltText) {
			assert.Equal(t, "Front view", *replacedImages[0].AltText)
		}
		assert.Nil(t, replacedImages[1].AltText)
	}
	assert.Equal(t, int64(11), resp.ID)
}

func TestCreateCar_MissingNameFails(t *testing.T) {
	createCalled := false
	repo := &repository.Repository{
		Car: &mockCarRepo{
			createFn: func(ctx context.Context, car *entity.Car) error {
				createCalled = true
				return nil
			},
		},
		RatePackage: &mockRatePackageRepo{},
		Session:     &mockSessionRepo{},
	}
	service := newTestAdminService(t, repo, "drive-classics")

	_, err := service.CreateCar(context.Background(), &request.CarRequest{Make: "Ford", Model: "GT"})

	assert.False(t, createCalled)
	var validationErr *ValidationError
	if assert.ErrorAs(t, err, &validationErr) {
		assert.Contains(t, validationErr.Fields, "name")
	}
}

func TestUpdateCar_NotFound(t *testing.T) {
	repo := &repository.Repository{
		Car: &mockCarRepo{
			findByIDFn: func(ctx context.Context, id int64) (*entity.Car, error) {
				return nil, nil
			},
		},
		RatePackage: &mockRatePackageRepo{},
		Session:     &mockSessionRepo{},
	}
	service := newTestAdminService(t, repo, "drive-classics")

	_, err := service.UpdateCar(context.Background(), 404, &request.CarRequest{
		Name: "Eleanor", Make: "Ford", Model: "GT500",
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRatePackage_NotFound(t *testing.T) {
	repo := &repository.Repository{
		RatePackage: &mockRatePackageRepo{
			findByIDFn: func(ctx context.Context, id int64) (*entity.RatePackage, error) {
				return nil, nil
			},
		},
		Session: &mockSessionRepo{},
	}
	service := newTestAdminService(t, repo, "drive-classics")

	err := service.DeleteRatePackage(context.Background(), 9)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdminListRatePackages(t *testing.T) {
	repo := &repository.Repository{
		RatePackage: &mockRatePackageRepo{
			findAllFn: func(ctx context.Context) ([]*entity.RatePackage, error) {
				pkg := &entity.RatePackage{Label: "Half Day", Slug: "half-day", DurationHours: 6, Price: 2800}
				pkg.ID = 2
				return []*entity.RatePackage{pkg}, nil
			},
		},
		Session: &mockSessionRepo{},
	}
	service := newTestAdminService(t, repo, "drive-classics")

	packages, err := service.ListRatePackages(context.Background())

	assert.NoError(t, err)
	if assert.Len(t, packages, 1) {
		assert.Equal(t, "Half Day", packages[0].Label)
		assert.Equal(t, int64(2800), packages[0].Price)
	}
}

func TestAdminListOfferings(t *testing.T) {
	repo := &repository.Repository{
		RatePackage: &mockRatePackageRepo{},
		Offering: &mockOfferingRepo{
			findAllFn: func(ctx context.Context) ([]*entity.Offering, error) {
				return []*entity.Offering{{Title: "Weddings", Slug: "weddings"}}, nil
			},
		},
		Session: &mockSessionRepo{},
	}
	service := newTestAdminService(t, repo, "drive-classics")

	offerings, err := service.ListOfferings(context.Background())

	assert.NoError(t, err)
	if assert.Len(t, offerings, 1) {
		assert.Equal(t, "weddings", offerings[0].Slug)
	}
}

func TestCreateOffering_BuildsSlug(t *testing.T) {
	var created *entity.Offering
	repo := &repository.Repository{
		Offering: &mockOfferingRepo{
			createFn: func(ctx context.Context, offering *entity.Offering) error {
				offering.ID = 3
				created = offering
				return nil
			},
		},
		RatePackage: &mockRatePackageRepo{},
		Session:     &mockSessionRepo{},
	}
	service := newTestAdminService(t, repo, "drive-classics")

	resp, err := service.CreateOffering(context.Background(), &request.OfferingRequest{
		Title:   "Wedding Chauffeur Service",
		Summary: "Arrive in style",
	})

	assert.NoError(t, err)
	assert.Equal(t, "wedding-chauffeur-service", created.Slug)
	assert.Equal(t, int64(3), resp.ID)
}

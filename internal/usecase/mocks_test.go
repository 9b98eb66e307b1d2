package usecase

import (
	"context"

	"classic-rentals/internal/data/entity"
	"classic-rentals/internal/data/repository"
)

// Function-field mocks: tests set only the calls they expect, everything
// else returns zero values.

type mockCarRepo struct {
	createFn      func(ctx context.Context, car *entity.Car) error
	findByIDFn    func(ctx context.Context, id int64) (*entity.Car, error)
	findBySlugFn  func(ctx context.Context, slug string) (*entity.Car, error)
	findAllFn     func(ctx context.Context, filter repository.CarFilter) ([]*entity.Car, error)
	findRecentFn  func(ctx context.Context, limit int) ([]*entity.Car, error)
	findRelatedFn func(ctx context.Context, excludeID int64, limit int) ([]*entity.Car, error)
	countFn       func(ctx context.Context) (int64, error)
	updateFn      func(ctx context.Context, car *entity.Car) error
	deleteFn      func(ctx context.Context, id int64) error
}

func (m *mockCarRepo) Create(ctx context.Context, car *entity.Car) error {
	if m.createFn != nil {
		return m.createFn(ctx, car)
	}
	return nil
}

func (m *mockCarRepo) FindByID(ctx context.Context, id int64) (*entity.Car, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockCarRepo) FindBySlug(ctx context.Context, slug string) (*entity.Car, error) {
	if m.findBySlugFn != nil {
		return m.findBySlugFn(ctx, slug)
	}
	return nil, nil
}

func (m *mockCarRepo) FindAll(ctx context.Context, filter repository.CarFilter) ([]*entity.Car, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockCarRepo) FindRecent(ctx context.Context, limit int) ([]*entity.Car, error) {
	if m.findRecentFn != nil {
		return m.findRecentFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockCarRepo) FindRelated(ctx context.Context, excludeID int64, limit int) ([]*entity.Car, error) {
	if m.findRelatedFn != nil {
		return m.findRelatedFn(ctx, excludeID, limit)
	}
	return nil, nil
}

func (m *mockCarRepo) Count(ctx context.Context) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

func (m *mockCarRepo) Update(ctx context.Context, car *entity.Car) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, car)
	}
	return nil
}

func (m *mockCarRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockRatePackageRepo struct {
	createFn   func(ctx context.Context, pkg *entity.RatePackage) error
	findByIDFn func(ctx context.Context, id int64) (*entity.RatePackage, error)
	findAllFn  func(ctx context.Context) ([]*entity.RatePackage, error)
	updateFn   func(ctx context.Context, pkg *entity.RatePackage) error
	deleteFn   func(ctx context.Context, id int64) error
}

func (m *mockRatePackageRepo) Create(ctx context.Context, pkg *entity.RatePackage) error {
	if m.createFn != nil {
		return m.createFn(ctx, pkg)
	}
	return nil
}

func (m *mockRatePackageRepo) FindByID(ctx context.Context, id int64) (*entity.RatePackage, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockRatePackageRepo) FindAll(ctx context.Context) ([]*entity.RatePackage, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockRatePackageRepo) Update(ctx context.Context, pkg *entity.RatePackage) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, pkg)
	}
	return nil
}

func (m *mockRatePackageRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockBookingRepo struct {
	createFn        func(ctx context.Context, booking *entity.Booking) error
	findByIDFn      func(ctx context.Context, id int64) (*entity.Booking, error)
	findAllFn       func(ctx context.Context) ([]*entity.Booking, error)
	findRecentFn    func(ctx context.Context, limit int) ([]*entity.Booking, error)
	countFn         func(ctx context.Context) (int64, error)
	countByStatusFn func(ctx context.Context, status entity.BookingStatus) (int64, error)
	sumDepositsFn   func(ctx context.Context) (int64, error)
	updateStatusFn  func(ctx context.Context, bookingID int64, status entity.BookingStatus) error
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	if m.createFn != nil {
		return m.createFn(ctx, booking)
	}
	return nil
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockBookingRepo) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockBookingRepo) FindRecent(ctx context.Context, limit int) ([]*entity.Booking, error) {
	if m.findRecentFn != nil {
		return m.findRecentFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockBookingRepo) Count(ctx context.Context) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

func (m *mockBookingRepo) CountByStatus(ctx context.Context, status entity.BookingStatus) (int64, error) {
	if m.countByStatusFn != nil {
		return m.countByStatusFn(ctx, status)
	}
	return 0, nil
}

func (m *mockBookingRepo) SumDeposits(ctx context.Context) (int64, error) {
	if m.sumDepositsFn != nil {
		return m.sumDepositsFn(ctx)
	}
	return 0, nil
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, bookingID int64, status entity.BookingStatus) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, bookingID, status)
	}
	return nil
}

type mockOfferingRepo struct {
	createFn     func(ctx context.Context, offering *entity.Offering) error
	findByIDFn   func(ctx context.Context, id int64) (*entity.Offering, error)
	findBySlugFn func(ctx context.Context, slug string) (*entity.Offering, error)
	findAllFn    func(ctx context.Context) ([]*entity.Offering, error)
	countFn      func(ctx context.Context) (int64, error)
	updateFn     func(ctx context.Context, offering *entity.Offering) error
	deleteFn     func(ctx context.Context, id int64) error
}

func (m *mockOfferingRepo) Create(ctx context.Context, offering *entity.Offering) error {
	if m.createFn != nil {
		return m.createFn(ctx, offering)
	}
	return nil
}

func (m *mockOfferingRepo) FindByID(ctx context.Context, id int64) (*entity.Offering, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockOfferingRepo) FindBySlug(ctx context.Context, slug string) (*entity.Offering, error) {
	if m.findBySlugFn != nil {
		return m.findBySlugFn(ctx, slug)
	}
	return nil, nil
}

func (m *mockOfferingRepo) FindAll(ctx context.Context) ([]*entity.Offering, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockOfferingRepo) Count(ctx context.Context) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

func (m *mockOfferingRepo) Update(ctx context.Context, offering *entity.Offering) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, offering)
	}
	return nil
}

func (m *mockOfferingRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockCarImageRepo struct {
	findByCarIDFn        func(ctx context.Context, carID int64) ([]*entity.CarImage, error)
	findPrimaryByCarIDFn func(ctx context.Context, carID int64) (*entity.CarImage, error)
	replaceForCarFn      func(ctx context.Context, carID int64, images []*entity.CarImage) error
}

func (m *mockCarImageRepo) FindByCarID(ctx context.Context, carID int64) ([]*entity.CarImage, error) {
	if m.findByCarIDFn != nil {
		return m.findByCarIDFn(ctx, carID)
	}
	return nil, nil
}

func (m *mockCarImageRepo) FindPrimaryByCarID(ctx context.Context, carID int64) (*entity.CarImage, error) {
	if m.findPrimaryByCarIDFn != nil {
		return m.findPrimaryByCarIDFn(ctx, carID)
	}
	return nil, nil
}

func (m *mockCarImageRepo) ReplaceForCar(ctx context.Context, carID int64, images []*entity.CarImage) error {
	if m.replaceForCarFn != nil {
		return m.replaceForCarFn(ctx, carID, images)
	}
	return nil
}

type mockFAQRepo struct {
	findActiveFn func(ctx context.Context, limit int) ([]*entity.FAQ, error)
}

func (m *mockFAQRepo) FindActive(ctx context.Context, limit int) ([]*entity.FAQ, error) {
	if m.findActiveFn != nil {
		return m.findActiveFn(ctx, limit)
	}
	return nil, nil
}

type mockSocialLinkRepo struct {
	findAllFn func(ctx context.Context) ([]*entity.SocialLink, error)
}

func (m *mockSocialLinkRepo) FindAll(ctx context.Context) ([]*entity.SocialLink, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

type mockSessionRepo struct {
	createFn           func(ctx context.Context, session *entity.AdminSession) error
	findValidSessionFn func(ctx context.Context, token string) (*entity.AdminSession, error)
	revokeFn           func(ctx context.Context, token string) error
}

func (m *mockSessionRepo) Create(ctx context.Context, session *entity.AdminSession) error {
	if m.createFn != nil {
		return m.createFn(ctx, session)
	}
	return nil
}

func (m *mockSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.AdminSession, error) {
	if m.findValidSessionFn != nil {
		return m.findValidSessionFn(ctx, token)
	}
	return nil, nil
}

func (m *mockSessionRepo) Revoke(ctx context.Context, token string) error {
	if m.revokeFn != nil {
		return m.revokeFn(ctx, token)
	}
	return nil
}

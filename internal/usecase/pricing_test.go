package usecase

import (
	"testing"

	"classic-rentals/internal/data/entity"
	"classic-rentals/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func defaultPricing() utils.PricingConfig {
	return utils.PricingConfig{
		DefaultHourlyRate:   550,
		DefaultMinimumHours: 3,
	}
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestCalculateBreakdown_Defaults(t *testing.T) {
	breakdown := CalculateBreakdown(defaultPricing(), QuoteInput{})

	assert.Equal(t, 3, breakdown.EffectiveHours)
	assert.Equal(t, int64(550), breakdown.HourlyRate)
	assert.Equal(t, int64(1650), breakdown.BaseAmount)
	assert.Equal(t, int64(1650), breakdown.TotalAmount)
	assert.Equal(t, int64(825), breakdown.DepositAmount)
	assert.Nil(t, breakdown.PackageLabel)
	assert.False(t, breakdown.RequiresManualQuote)
}

func TestCalculateBreakdown_HoursBelowMinimumBilledAtMinimum(t *testing.T) {
	breakdown := CalculateBreakdown(defaultPricing(), QuoteInput{HoursRequested: 1})

	assert.Equal(t, 3, breakdown.EffectiveHours)
	assert.Equal(t, int64(1650), breakdown.TotalAmount)
}

func TestCalculateBreakdown_HoursAboveMinimum(t *testing.T) {
	breakdown := CalculateBreakdown(defaultPricing(), QuoteInput{HoursRequested: 5})

	assert.Equal(t, 5, breakdown.EffectiveHours)
	assert.Equal(t, int64(2750), breakdown.TotalAmount)
	assert.Equal(t, int64(1375), breakdown.DepositAmount)
}

func TestCalculateBreakdown_CarOverridesRateAndMinimum(t *testing.T) {
	car := &entity.Car{
		HourlyRate:   int64Ptr(800),
		MinimumHours: intPtr(4),
	}

	breakdown := CalculateBreakdown(defaultPricing(), QuoteInput{Car: car, HoursRequested: 2})

	assert.Equal(t, 4, breakdown.EffectiveHours)
	assert.Equal(t, int64(800), breakdown.HourlyRate)
	assert.Equal(t, int64(3200), breakdown.BaseAmount)
}

func TestCalculateBreakdown_CarWithoutOverridesFallsBack(t *testing.T) {
	breakdown := CalculateBreakdown(defaultPricing(), QuoteInput{Car: &entity.Car{}})

	assert.Equal(t, int64(550), breakdown.HourlyRate)
	assert.Equal(t, 3, breakdown.EffectiveHours)
}

func TestCalculateBreakdown_PackageOverridesBase(t *testing.T) {
	cfg := defaultPricing()
	cfg.OutstationFee = 200
	cfg.OutstationFeeSet = true

	pkg := &entity.RatePackage{
		Label:         "Full Day Experience",
		DurationHours: 8,
		Price:         2200,
	}

	breakdown := CalculateBreakdown(cfg, QuoteInput{
		RatePackage:    pkg,
		HoursRequested: 8,
		TowingRequired: true,
	})

	assert.Equal(t, int64(2200), breakdown.BaseAmount)
	assert.Equal(t, int64(200), breakdown.OutstationFee)
	assert.Equal(t, int64(2400), breakdown.TotalAmount)
	assert.Equal(t, int64(1200), breakdown.DepositAmount)
	assert.False(t, breakdown.RequiresManualQuote)
	if assert.NotNil(t, breakdown.PackageLabel) {
		assert.Equal(t, "Full Day Experience", *breakdown.PackageLabel)
	}
}

func TestCalculateBreakdown_ZeroPricePackage(t *testing.T) {
	pkg := &entity.RatePackage{Label: "Promo", DurationHours: 3}

	breakdown := CalculateBreakdown(defaultPricing(), QuoteInput{RatePackage: pkg, HoursRequested: 3})

	assert.Equal(t, int64(0), breakdown.BaseAmount)
	assert.Equal(t, int64(0), breakdown.TotalAmount)
	assert.Equal(t, int64(0), breakdown.DepositAmount)
}

func TestCalculateBreakdown_TowingWithoutConfiguredFee(t *testing.T) {
	breakdown := CalculateBreakdown(defaultPricing(), QuoteInput{TowingRequired: true})

	assert.Equal(t, int64(0), breakdown.OutstationFee)
	assert.True(t, breakdown.RequiresManualQuote)
	assert.Equal(t, int64(1650), breakdown.TotalAmount)
}

func TestCalculateBreakdown_TowingFeeZeroIsStillConfigured(t *testing.T) {
	cfg := defaultPricing()
	cfg.OutstationFeeSet = true

	breakdown := CalculateBreakdown(cfg, QuoteInput{TowingRequired: true})

	assert.Equal(t, int64(0), breakdown.OutstationFee)
	assert.False(t, breakdown.RequiresManualQuote)
}

func TestCalculateBreakdown_DepositRoundsHalfUp(t *testing.T) {
	cfg := utils.PricingConfig{DefaultHourlyRate: 551, DefaultMinimumHours: 3}

	breakdown := CalculateBreakdown(cfg, QuoteInput{})

	// total 1653, half is 826.5
	assert.Equal(t, int64(1653), breakdown.TotalAmount)
	assert.Equal(t, int64(827), breakdown.DepositAmount)
}

func TestCalculateBreakdown_NoTowingNeverAddsFee(t *testing.T) {
	cfg := defaultPricing()
	cfg.OutstationFee = 200
	cfg.OutstationFeeSet = true

	breakdown := CalculateBreakdown(cfg, QuoteInput{HoursRequested: 4})

	assert.Equal(t, int64(0), breakdown.OutstationFee)
	assert.Equal(t, int64(2200), breakdown.TotalAmount)
}

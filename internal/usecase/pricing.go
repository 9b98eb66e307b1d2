package usecase

import (
	"math"

	"classic-rentals/internal/data/entity"
	"classic-rentals/pkg/utils"
)

// QuoteInput holds the resolved pricing context for one booking request.
// Car and RatePackage are already loaded; nil means none selected.
type QuoteInput struct {
	Car            *entity.Car
	RatePackage    *entity.RatePackage
	HoursRequested int
	TowingRequired bool
}

// Breakdown is the itemized price for a booking. Amounts are whole MYR.
type Breakdown struct {
	BaseAmount          int64
	TotalAmount         int64
	DepositAmount       int64
	HourlyRate          int64
	EffectiveHours      int
	PackageLabel        *string
	OutstationFee       int64
	RequiresManualQuote bool
}

// CalculateBreakdown prices a booking. Hours below the car's minimum (or
// the configured default) are billed at the minimum. A selected rate
// package replaces the hourly base entirely. Towing adds the configured
// outstation fee; with no fee configured the booking is flagged for a
// manual quote instead.
func CalculateBreakdown(cfg utils.PricingConfig, in QuoteInput) Breakdown {
	hourlyRate := cfg.DefaultHourlyRate
	minimumHours := cfg.DefaultMinimumHours

	if in.Car != nil {
		if in.Car.HourlyRate != nil {
			hourlyRate = *in.Car.HourlyRate
		}
		if in.Car.MinimumHours != nil {
			minimumHours = *in.Car.MinimumHours
		}
	}

	effectiveHours := in.HoursRequested
	if effectiveHours <= 0 {
		effectiveHours = minimumHours
	}
	if effectiveHours < minimumHours {
		effectiveHours = minimumHours
	}

	baseAmount := int64(effectiveHours) * hourlyRate
	var packageLabel *string

	if in.RatePackage != nil {
		baseAmount = in.RatePackage.Price
		label := in.RatePackage.Label
		packageLabel = &label
	}

	var outstationFee int64
	requiresManualQuote := false
	if in.TowingRequired {
		if cfg.OutstationFeeSet {
			outstationFee = cfg.OutstationFee
		} else {
			requiresManualQuote = true
		}
	}

	totalAmount := baseAmount + outstationFee
	depositAmount := int64(math.Round(float64(totalAmount) * 0.5))

	return Breakdown{
		BaseAmount:          baseAmount,
		TotalAmount:         totalAmount,
		DepositAmount:       depositAmount,
		HourlyRate:          hourlyRate,
		EffectiveHours:      effectiveHours,
		PackageLabel:        packageLabel,
		OutstationFee:       outstationFee,
		RequiresManualQuote: requiresManualQuote,
	}
}

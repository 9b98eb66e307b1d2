package entity

// RatePackage is a fixed-price, fixed-duration bundle. When a booking
// selects one, its price overrides per-hour pricing entirely.
type RatePackage struct {
	Base
	Label         string  `db:"label"`
	Slug          string  `db:"slug"`
	DurationHours int     `db:"duration_hours"`
	Price         int64   `db:"price"`
	Description   *string `db:"description"`
}

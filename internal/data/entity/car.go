package entity

type Car struct {
	Base
	Name             string  `db:"name"`
	Make             string  `db:"make"`
	Model            string  `db:"model"`
	Slug             string  `db:"slug"`
	Year             *int    `db:"year"`
	Engine           *string `db:"engine"`
	DisplacementCc   *int    `db:"displacement_cc"`
	Transmission     *string `db:"transmission"`
	SeatingCapacity  *int    `db:"seating_capacity"`
	Location         *string `db:"location"`
	AvailabilityNote *string `db:"availability_note"`
	ShortDescription *string `db:"short_description"`
	LongDescription  *string `db:"long_description"`
	// Nil falls back to the configured default rate / minimum
	HourlyRate   *int64 `db:"hourly_rate"`
	MinimumHours *int   `db:"minimum_hours"`
}

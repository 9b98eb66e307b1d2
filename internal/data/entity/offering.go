package entity

// Offering is a marketing service page (rentals, restoration, insurance...)
type Offering struct {
	Base
	Title       string  `db:"title"`
	Slug        string  `db:"slug"`
	Summary     string  `db:"summary"`
	Description string  `db:"description"`
	Icon        *string `db:"icon"`
}

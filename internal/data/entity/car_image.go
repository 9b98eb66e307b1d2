package entity

type CarImage struct {
	BaseSimple
	CarID     int64   `db:"car_id"`
	URL       string  `db:"url"`
	AltText   *string `db:"alt_text"`
	IsPrimary bool    `db:"is_primary"`
}

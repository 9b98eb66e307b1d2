package entity

type SocialLink struct {
	Base
	Platform string  `db:"platform"`
	URL      string  `db:"url"`
	Handle   *string `db:"handle"`
}

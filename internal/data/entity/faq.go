package entity

type FAQ struct {
	Base
	Question  string `db:"question"`
	Answer    string `db:"answer"`
	SortOrder int    `db:"sort_order"`
	IsActive  bool   `db:"is_active"`
}

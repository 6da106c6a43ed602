package models

import "time"

// Course is a public catalog entry shown on the marketing site. The catalog
// is seeded by migration and read-only through the API.
type Course struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Price       int       `db:"price" json:"price"`
	Duration    string    `db:"duration" json:"duration"`
	ImageURL    string    `db:"image_url" json:"image_url"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

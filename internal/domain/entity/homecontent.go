package entity

import "time"

// HeroSlide is a homepage carousel entry.
type HeroSlide struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle,omitempty"`
	Image     string    `json:"image"`
	Link      string    `json:"link,omitempty"`
	Enabled   bool      `json:"enabled"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Highlight is a homepage promo tile.
type Highlight struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text,omitempty"`
	Image     string    `json:"image"`
	Link      string    `json:"link,omitempty"`
	Enabled   bool      `json:"enabled"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BrandStory is the homepage narrative block.
type BrandStory struct {
	ID        string    `json:"id"`
	Heading   string    `json:"heading"`
	Body      string    `json:"body"`
	Image     string    `json:"image,omitempty"`
	Enabled   bool      `json:"enabled"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

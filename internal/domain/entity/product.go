package entity

import "time"

// Product is a catalog record. All money fields are integer minor units
// (paise) to avoid floating-point drift in cart folds.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         int64     `json:"price"`
	DiscountPrice int64     `json:"discountPrice,omitempty"`
	Stock         int       `json:"stock"`
	Category      string    `json:"category"`
	Model         string    `json:"model,omitempty"`
	Images        []string  `json:"images"` // First entry is the primary image.
	IsNew         bool      `json:"isNew,omitempty"`
	IsFeatured    bool      `json:"isFeatured,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// PrimaryImage returns the first image URL, or empty when none is set.
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}

	return p.Images[0]
}

// EffectivePrice returns the discount price when one is set, otherwise the
// list price.
func (p *Product) EffectivePrice() int64 {
	if p.DiscountPrice > 0 && p.DiscountPrice < p.Price {
		return p.DiscountPrice
	}

	return p.Price
}

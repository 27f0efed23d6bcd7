package models

// Product represents a catalog product. Ids are assigned by the store and are
// never accepted from clients.
type Product struct {
	ID          int      `json:"id" gorm:"primaryKey"`
	Title       string   `json:"title" validate:"required,min=3,max=60"`
	Description string   `json:"description" validate:"max=500"`
	Category    string   `json:"category"`
	Price       float64  `json:"price" validate:"gt=0"`
	Rating      float64  `json:"rating"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Brand       string   `json:"brand" validate:"max=60"`
	Images      []string `json:"images" gorm:"serializer:json"`
	Tags        []string `json:"tags,omitempty" gorm:"serializer:json"`
	Reviews     []Review `json:"reviews,omitempty" gorm:"serializer:json"`
}

// Review is a passthrough field carried on products; nothing is derived from it.
type Review struct {
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
	Date    string  `json:"date"`
}

// CreateProductDTO is the request body for creating a product. Stock is a
// float64 so that a fractional payload reaches the validator (which rejects it
// with a readable message) instead of failing JSON decoding; it is converted
// to int only after validation.
type CreateProductDTO struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Stock       float64  `json:"stock"`
	Brand       string   `json:"brand"`
	Images      []string `json:"images"`
	Tags        []string `json:"tags,omitempty"`
}

// UpdateProductDTO is the request body for a partial update. Pointer fields
// distinguish "absent" (a no-op) from an explicit zero or empty value, which
// still overwrites.
type UpdateProductDTO struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Price       *float64  `json:"price"`
	Stock       *float64  `json:"stock"`
	Brand       *string   `json:"brand"`
	Images      *[]string `json:"images"`
	Tags        *[]string `json:"tags"`
}

// Apply merges the fields present in the DTO over the product. Absent fields
// leave the product untouched.
func (u UpdateProductDTO) Apply(p *Product) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Stock != nil {
		p.Stock = int(*u.Stock)
	}
	if u.Brand != nil {
		p.Brand = *u.Brand
	}
	if u.Images != nil {
		p.Images = *u.Images
	}
	if u.Tags != nil {
		p.Tags = *u.Tags
	}
}

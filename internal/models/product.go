package models

import (
	"time"
)

// Specification is one display attribute of a product. Order matters for
// rendering, so specifications are a slice and never a map.
type Specification struct {
	Name  string `json:"name" bson:"name"`
	Value string `json:"value" bson:"value"`
}

// Product is a catalog entry. Prices are decimal currency amounts with three
// fractional digits (TND millimes) and are kept as-is; rounding happens only
// at presentation boundaries. Category is a soft reference to Category.Name,
// and Discount is informational display data, never recomputed from
// Price/OldPrice.
type Product struct {
	ID             int             `json:"id" bson:"_id"`
	Name           string          `json:"name" bson:"name" binding:"required"`
	Brand          string          `json:"brand,omitempty" bson:"brand,omitempty"`
	Description    string          `json:"description,omitempty" bson:"description,omitempty"`
	Category       string          `json:"category" bson:"category"`
	Price          float64         `json:"price" bson:"price" binding:"gte=0"`
	OldPrice       float64         `json:"old_price,omitempty" bson:"old_price,omitempty"`
	Discount       int             `json:"discount,omitempty" bson:"discount,omitempty"`
	Quantity       int             `json:"quantity" bson:"quantity" binding:"gte=0"`
	ImageURL       string          `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Images         []string        `json:"images,omitempty" bson:"images,omitempty"`
	Specifications []Specification `json:"specifications,omitempty" bson:"specifications,omitempty"`
	IsDeleted      bool            `json:"-" bson:"is_deleted"`
	CreatedAt      time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" bson:"updated_at"`
}

// ProductUpdate carries the patchable fields of a product. Pointer fields
// distinguish "absent" from zero values.
type ProductUpdate struct {
	Name           *string         `json:"name,omitempty"`
	Brand          *string         `json:"brand,omitempty"`
	Description    *string         `json:"description,omitempty"`
	Category       *string         `json:"category,omitempty"`
	Price          *float64        `json:"price,omitempty"`
	OldPrice       *float64        `json:"old_price,omitempty"`
	Discount       *int            `json:"discount,omitempty"`
	Quantity       *int            `json:"quantity,omitempty"`
	ImageURL       *string         `json:"image_url,omitempty"`
	Images         []string        `json:"images,omitempty"`
	Specifications []Specification `json:"specifications,omitempty"`
}

// Category groups products by name. Name is the document key and the value
// referenced by Product.Category; SubCategories keep their stored order for
// display and are not deduplicated across categories.
type Category struct {
	Name          string   `json:"name" bson:"_id" binding:"required"`
	SubCategories []string `json:"sub_categories" bson:"sub_categories"`
	ImageURL      string   `json:"image_url,omitempty" bson:"image_url,omitempty"`
}

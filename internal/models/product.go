// internal/models/product.go
package models

import "time"

// Product is a single machinery listing. Category and location are stored as
// lowercase tokens; ImageURL is backfilled for legacy rows and never cleared.
// Rows are never deleted.
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ProductName string    `json:"product_name" gorm:"size:255;not null;index"`
	Supplier    string    `json:"supplier" gorm:"size:255;not null"`
	PriceUSD    string    `json:"price_usd" gorm:"size:50;not null"`
	Category    string    `json:"category" gorm:"size:50;not null;index"`
	Location    string    `json:"location" gorm:"size:100;not null;index"`
	Description string    `json:"description" gorm:"type:text"`
	MinOrder    int       `json:"min_order" gorm:"default:1"`
	Rating      float64   `json:"rating" gorm:"default:4.5"`
	Specs       string    `json:"specs" gorm:"type:text"`
	ImageURL    string    `json:"image_url" gorm:"size:500;default:''"`
	CreatedAt   time.Time `json:"-"`
}

func (Product) TableName() string {
	return "products"
}

package models

import "time"

// Marketplace listing categories (closed enum)
const (
	CategoryCourses    = "courses"
	CategoryTools      = "tools"
	CategoryServices   = "services"
	CategoryResources  = "resources"
	CategoryConsulting = "consulting"
)

// ListingCategories lists every valid listing category
var ListingCategories = []string{
	CategoryCourses,
	CategoryTools,
	CategoryServices,
	CategoryResources,
	CategoryConsulting,
}

// Listing represents a marketplace listing created by a seller
type Listing struct {
	ID             string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	SellerID       string    `gorm:"type:uuid;not null;column:seller_id" json:"seller_id"`
	Title          string    `gorm:"type:varchar(100);not null" json:"title"`
	Description    string    `gorm:"type:varchar(2000);not null" json:"description"`
	PriceLBT       int       `gorm:"type:integer;not null;column:price_lbt" json:"price_lbt"`
	Category       string    `gorm:"type:varchar(20);not null" json:"category"`
	TokenGated     bool      `gorm:"not null;default:false;column:token_gated" json:"token_gated"`
	Active         bool      `gorm:"not null;default:true" json:"active"`
	DeliveryMethod *string   `gorm:"type:varchar(255);column:delivery_method" json:"delivery_method"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	Seller         *User     `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
}

func (Listing) TableName() string {
	return "marketplace_listings"
}

// ValidCategory reports whether category is one of the closed enum values
func ValidCategory(category string) bool {
	for _, c := range ListingCategories {
		if c == category {
			return true
		}
	}
	return false
}

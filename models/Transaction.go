package models

import "time"

// Transaction records one successful marketplace purchase. AmountLBT is a
// snapshot of the listing price at purchase time; later price edits do not
// affect it. The idempotency key de-duplicates double submits of the same
// logical purchase.
type Transaction struct {
	ID              string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	ListingID       string    `gorm:"type:uuid;not null;column:listing_id" json:"listing_id"`
	BuyerID         string    `gorm:"type:uuid;not null;column:buyer_id" json:"buyer_id"`
	SellerID        string    `gorm:"type:uuid;not null;column:seller_id" json:"seller_id"`
	AmountLBT       int       `gorm:"type:integer;not null;column:amount_lbt" json:"amount_lbt"`
	IdempotencyKey  string    `gorm:"type:uuid;not null;uniqueIndex;column:idempotency_key" json:"idempotency_key"`
	TransactionHash *string   `gorm:"type:varchar(255);column:transaction_hash" json:"transaction_hash"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	Listing         *Listing  `gorm:"foreignKey:ListingID" json:"listing,omitempty"`
	Buyer           *User     `gorm:"foreignKey:BuyerID" json:"-"`
	Seller          *User     `gorm:"foreignKey:SellerID" json:"-"`
}

func (Transaction) TableName() string {
	return "marketplace_transactions"
}

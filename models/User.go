package models

import "time"

// User represents a platform profile with its LBT point balance
type User struct {
	ID            string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Username      string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"username"`
	Email         string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email,omitempty"`
	Password      string    `gorm:"type:varchar(255);not null" json:"-"`
	Points        int       `gorm:"type:integer;not null;default:0" json:"points"`
	WalletAddress *string   `gorm:"type:varchar(255);column:wallet_address" json:"wallet_address"`
	HasToken      bool      `gorm:"not null;default:false;column:has_token" json:"has_token"`
	Verified      bool      `gorm:"not null;default:false" json:"verified"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "profiles"
}

package models

import "time"

// Customer represents a shop customer
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Phone     string    `gorm:"size:50;not null;index" json:"phone"`
	Gender    string    `gorm:"size:10;not null;default:'unisex'" json:"gender"` // male, female, unisex
	Address   *string   `gorm:"type:text" json:"address"`
	Notes     *string   `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

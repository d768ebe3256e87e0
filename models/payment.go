package models

import "time"

// Payment is money received against an order
type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	OrderID       uint      `gorm:"not null;index" json:"order_id"`
	Amount        float64   `gorm:"type:decimal(10,2);not null;check:amount >= 0" json:"amount"`
	PaymentType   string    `gorm:"size:20;not null" json:"payment_type"`   // advance, partial, full
	PaymentMethod string    `gorm:"size:20;not null" json:"payment_method"` // cash, bkash, nagad, other
	Date          string    `gorm:"type:varchar(10);not null" json:"date"`
	Notes         *string   `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName specifies the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}

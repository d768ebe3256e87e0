package models

import "time"

// Order represents a tailoring order
type Order struct {
	ID               uint                   `gorm:"primaryKey" json:"id"`
	CustomerID       uint                   `gorm:"not null;index" json:"customer_id"`
	Customer         Customer               `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
	OrderDate        string                 `gorm:"type:varchar(10);not null" json:"order_date"`
	DeliveryDate     string                 `gorm:"type:varchar(10);not null;index" json:"delivery_date"`
	Status           string                 `gorm:"size:20;not null;default:'pending';index" json:"status"` // pending, cutting, sewing, ready, delivered
	TotalAmount      float64                `gorm:"type:decimal(10,2);not null;default:0" json:"total_amount"` // fixed at creation
	Notes            *string                `gorm:"type:text" json:"notes"`
	CreatedAt        time.Time              `json:"created_at"`
	Items            []OrderItem            `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Payments         []Payment              `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
	StaffAssignments []OrderStaffAssignment `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one garment line of an order
type OrderItem struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	OrderID       uint         `gorm:"not null;index" json:"order_id"`
	GarmentType   string       `gorm:"size:100;not null" json:"garment_type"`
	Quantity      int          `gorm:"not null;default:1;check:quantity >= 1" json:"quantity"`
	Price         float64      `gorm:"type:decimal(10,2);not null;check:price >= 0" json:"price"`
	FabricDetails *string      `gorm:"type:text" json:"fabric_details"`
	MeasurementID *uint        `gorm:"index" json:"measurement_id"` // nullable, survives measurement deletion
	Measurement   *Measurement `gorm:"foreignKey:MeasurementID;constraint:OnDelete:SET NULL" json:"-"`
}

// TableName specifies the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

package models

import "time"

// Staff is a shop employee
type Staff struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Phone     string    `gorm:"size:50;not null" json:"phone"`
	Address   *string   `gorm:"type:text" json:"address"`
	Role      string    `gorm:"size:50;not null;index" json:"role"`
	JoinDate  string    `gorm:"type:varchar(10);not null" json:"join_date"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for the Staff model
func (Staff) TableName() string {
	return "staff"
}

// OrderStaffAssignment links a staff member to an order, at most once per pair
type OrderStaffAssignment struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	OrderID      uint      `gorm:"not null;uniqueIndex:idx_order_staff" json:"order_id"`
	StaffID      uint      `gorm:"not null;uniqueIndex:idx_order_staff;index" json:"staff_id"`
	Staff        Staff     `gorm:"foreignKey:StaffID;constraint:OnDelete:CASCADE" json:"-"`
	AssignedDate string    `gorm:"type:varchar(10);not null" json:"assigned_date"`
	Notes        *string   `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for the OrderStaffAssignment model
func (OrderStaffAssignment) TableName() string {
	return "order_staff_assignments"
}

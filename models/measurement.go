package models

import (
	"time"

	"gorm.io/datatypes"
)

// MeasurementTemplate declares which fields to capture for a garment type
type MeasurementTemplate struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	GarmentType string            `gorm:"size:100;not null;index" json:"garment_type"`
	Gender      string            `gorm:"size:10;not null" json:"gender"`
	FieldsJSON  datatypes.JSONMap `gorm:"column:fields_json;not null" json:"fields_json"` // field name -> label
	DisplayName string            `gorm:"size:255;not null" json:"display_name"`
	CreatedAt   time.Time         `json:"created_at"`
}

// TableName specifies the table name for the MeasurementTemplate model
func (MeasurementTemplate) TableName() string {
	return "measurement_templates"
}

// Measurement holds a customer's values for one garment
type Measurement struct {
	ID               uint                `gorm:"primaryKey" json:"id"`
	CustomerID       uint                `gorm:"not null;index" json:"customer_id"`
	Customer         Customer            `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
	GarmentType      string              `gorm:"size:100;not null;index" json:"garment_type"`
	TemplateID       uint                `gorm:"not null;index" json:"template_id"`
	Template         MeasurementTemplate `gorm:"foreignKey:TemplateID;constraint:OnDelete:RESTRICT" json:"-"`
	MeasurementsJSON datatypes.JSONMap   `gorm:"column:measurements_json;not null" json:"measurements_json"` // field name -> value
	CreatedAt        time.Time           `json:"created_at"`
}

// TableName specifies the table name for the Measurement model
func (Measurement) TableName() string {
	return "measurements"
}

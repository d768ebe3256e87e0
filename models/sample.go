package models

import "time"

// Sample is a gallery entry showing finished work
type Sample struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	GarmentType string        `gorm:"size:100;not null;index" json:"garment_type"`
	Title       string        `gorm:"size:255;not null" json:"title"`
	Description *string       `gorm:"type:text" json:"description"`
	CreatedAt   time.Time     `json:"created_at"`
	Images      []SampleImage `gorm:"foreignKey:SampleID;constraint:OnDelete:CASCADE" json:"images"`
}

// TableName specifies the table name for the Sample model
func (Sample) TableName() string {
	return "samples"
}

// SampleImage is one picture of a sample; images are shown by display order then id
type SampleImage struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SampleID     uint      `gorm:"not null;index" json:"sample_id"`
	ImageURL     string    `gorm:"type:text;not null" json:"image_url"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for the SampleImage model
func (SampleImage) TableName() string {
	return "sample_images"
}

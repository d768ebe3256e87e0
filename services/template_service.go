package services

import (
	"context"
	"fmt"

	"github.com/kendall-kelly/tailorshop-api/models"
	"gorm.io/gorm"
)

// TemplateService manages the measurement template catalog
type TemplateService struct {
	db *gorm.DB
}

func NewTemplateService(db *gorm.DB) *TemplateService {
	return &TemplateService{db: db}
}

// List filters by garment type and gender. Unisex templates match every gender filter.
func (s *TemplateService) List(ctx context.Context, filter models.TemplateFilter) ([]models.MeasurementTemplate, error) {
	query := s.db.WithContext(ctx).Order("id DESC")
	if filter.GarmentType != "" {
		query = query.Where("garment_type = ?", filter.GarmentType)
	}
	if filter.Gender != "" {
		query = query.Where("gender IN ?", []string{filter.Gender, models.GenderUnisex})
	}

	templates := []models.MeasurementTemplate{}
	if err := query.Find(&templates).Error; err != nil {
		return nil, translate(err, errTemplateNotFound)
	}
	return templates, nil
}

func (s *TemplateService) Get(ctx context.Context, id uint) (*models.MeasurementTemplate, error) {
	var template models.MeasurementTemplate
	if err := s.db.WithContext(ctx).First(&template, id).Error; err != nil {
		return nil, translate(err, errTemplateNotFound)
	}
	return &template, nil
}

func (s *TemplateService) Create(ctx context.Context, req models.CreateTemplateRequest) (*models.MeasurementTemplate, error) {
	template := models.MeasurementTemplate{
		GarmentType: req.GarmentType,
		Gender:      req.Gender,
		FieldsJSON:  models.FieldsMap(req.FieldsJSON),
		DisplayName: req.DisplayName,
	}
	if err := s.db.WithContext(ctx).Create(&template).Error; err != nil {
		return nil, translate(err, errTemplateNotFound)
	}
	return s.Get(ctx, template.ID)
}

func (s *TemplateService) Update(ctx context.Context, id uint, req models.UpdateTemplateRequest) (*models.MeasurementTemplate, error) {
	changes := req.Changes()
	if len(changes) == 0 {
		return nil, errNoFields()
	}

	db := s.db.WithContext(ctx)
	if err := mustExist(db, &models.MeasurementTemplate{}, id, errTemplateNotFound); err != nil {
		return nil, err
	}
	if err := db.Model(&models.MeasurementTemplate{}).Where("id = ?", id).Updates(changes).Error; err != nil {
		return nil, translate(err, errTemplateNotFound)
	}
	return s.Get(ctx, id)
}

// Delete refuses while any measurement references the template
func (s *TemplateService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &models.MeasurementTemplate{}, id, errTemplateNotFound); err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Measurement{}).Where("template_id = ?", id).Count(&count).Error; err != nil {
			return translate(err, errTemplateNotFound)
		}
		if count > 0 {
			return conflict("TEMPLATE_IN_USE",
				fmt.Sprintf("Cannot delete template: %d measurement(s) are using this template", count), count)
		}

		if err := tx.Delete(&models.MeasurementTemplate{}, id).Error; err != nil {
			return translate(err, errTemplateNotFound)
		}
		return nil
	})
}

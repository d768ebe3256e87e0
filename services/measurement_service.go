package services

import (
	"context"

	"github.com/kendall-kelly/tailorshop-api/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MeasurementService manages customer measurement records
type MeasurementService struct {
	db *gorm.DB
}

func NewMeasurementService(db *gorm.DB) *MeasurementService {
	return &MeasurementService{db: db}
}

func withOwners(db *gorm.DB) *gorm.DB {
	return db.Preload("Customer").Preload("Template")
}

func (s *MeasurementService) List(ctx context.Context, filter models.MeasurementFilter) ([]models.Measurement, error) {
	query := s.db.WithContext(ctx).Scopes(withOwners).Order("id DESC")
	if filter.CustomerID != 0 {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.GarmentType != "" {
		query = query.Where("garment_type = ?", filter.GarmentType)
	}

	measurements := []models.Measurement{}
	if err := query.Find(&measurements).Error; err != nil {
		return nil, translate(err, errMeasurementNotFound)
	}
	return measurements, nil
}

// Get returns the measurement with its customer and template preloaded
func (s *MeasurementService) Get(ctx context.Context, id uint) (*models.Measurement, error) {
	var measurement models.Measurement
	if err := s.db.WithContext(ctx).Scopes(withOwners).First(&measurement, id).Error; err != nil {
		return nil, translate(err, errMeasurementNotFound)
	}
	return &measurement, nil
}

func (s *MeasurementService) Create(ctx context.Context, req models.CreateMeasurementRequest) (*models.Measurement, error) {
	db := s.db.WithContext(ctx)
	if err := mustExist(db, &models.Customer{}, req.CustomerID, errCustomerNotFound); err != nil {
		return nil, err
	}
	if err := mustExist(db, &models.MeasurementTemplate{}, req.TemplateID, errTemplateNotFound); err != nil {
		return nil, err
	}

	measurement := models.Measurement{
		CustomerID:       req.CustomerID,
		GarmentType:      req.GarmentType,
		TemplateID:       req.TemplateID,
		MeasurementsJSON: datatypes.JSONMap(req.MeasurementsJSON),
	}
	if err := db.Omit("Customer", "Template").Create(&measurement).Error; err != nil {
		return nil, translate(err, errMeasurementNotFound)
	}
	return s.Get(ctx, measurement.ID)
}

// Update replaces only the value map when one is supplied. Otherwise garment
// type and template may be changed.
func (s *MeasurementService) Update(ctx context.Context, id uint, req models.UpdateMeasurementRequest) (*models.Measurement, error) {
	changes := map[string]interface{}{}
	if req.MeasurementsJSON != nil {
		changes["measurements_json"] = datatypes.JSONMap(req.MeasurementsJSON)
	} else {
		if req.GarmentType != nil {
			changes["garment_type"] = *req.GarmentType
		}
		if req.TemplateID != nil {
			changes["template_id"] = *req.TemplateID
		}
	}
	if len(changes) == 0 {
		return nil, errNoFields()
	}

	db := s.db.WithContext(ctx)
	if err := mustExist(db, &models.Measurement{}, id, errMeasurementNotFound); err != nil {
		return nil, err
	}
	if templateID, ok := changes["template_id"].(uint); ok {
		if err := mustExist(db, &models.MeasurementTemplate{}, templateID, errTemplateNotFound); err != nil {
			return nil, err
		}
	}

	if err := db.Model(&models.Measurement{}).Where("id = ?", id).Updates(changes).Error; err != nil {
		return nil, translate(err, errMeasurementNotFound)
	}
	return s.Get(ctx, id)
}

// Delete detaches order items that reference the measurement, then removes it
func (s *MeasurementService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &models.Measurement{}, id, errMeasurementNotFound); err != nil {
			return err
		}
		if err := detachMeasurements(tx, []uint{id}); err != nil {
			return err
		}
		if err := tx.Delete(&models.Measurement{}, id).Error; err != nil {
			return translate(err, errMeasurementNotFound)
		}
		return nil
	})
}

func detachMeasurements(tx *gorm.DB, measurementIDs []uint) error {
	err := tx.Model(&models.OrderItem{}).
		Where("measurement_id IN ?", measurementIDs).
		Update("measurement_id", nil).Error
	return translate(err, errMeasurementNotFound)
}

package services

import (
	"context"
	"fmt"

	"github.com/kendall-kelly/tailorshop-api/models"
	"gorm.io/gorm"
)

// StaffService manages the staff directory
type StaffService struct {
	db *gorm.DB
}

func NewStaffService(db *gorm.DB) *StaffService {
	return &StaffService{db: db}
}

func (s *StaffService) List(ctx context.Context, filter models.StaffFilter) ([]models.Staff, error) {
	query := s.db.WithContext(ctx).Order("id DESC")
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}

	staff := []models.Staff{}
	if err := query.Find(&staff).Error; err != nil {
		return nil, translate(err, errStaffNotFound)
	}
	return staff, nil
}

func (s *StaffService) Get(ctx context.Context, id uint) (*models.Staff, error) {
	var member models.Staff
	if err := s.db.WithContext(ctx).First(&member, id).Error; err != nil {
		return nil, translate(err, errStaffNotFound)
	}
	return &member, nil
}

func (s *StaffService) Create(ctx context.Context, req models.CreateStaffRequest) (*models.Staff, error) {
	member := models.Staff{
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
		Role:     req.Role,
		JoinDate: dateOrToday(req.JoinDate),
	}
	if err := s.db.WithContext(ctx).Create(&member).Error; err != nil {
		return nil, translate(err, errStaffNotFound)
	}
	return s.Get(ctx, member.ID)
}

func (s *StaffService) Update(ctx context.Context, id uint, req models.UpdateStaffRequest) (*models.Staff, error) {
	changes := req.Changes()
	if len(changes) == 0 {
		return nil, errNoFields()
	}

	db := s.db.WithContext(ctx)
	if err := mustExist(db, &models.Staff{}, id, errStaffNotFound); err != nil {
		return nil, err
	}
	if err := db.Model(&models.Staff{}).Where("id = ?", id).Updates(changes).Error; err != nil {
		return nil, translate(err, errStaffNotFound)
	}
	return s.Get(ctx, id)
}

// Delete refuses while the staff member is assigned to any order
func (s *StaffService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &models.Staff{}, id, errStaffNotFound); err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.OrderStaffAssignment{}).Where("staff_id = ?", id).Count(&count).Error; err != nil {
			return translate(err, errStaffNotFound)
		}
		if count > 0 {
			return conflict("STAFF_ASSIGNED",
				fmt.Sprintf("Cannot delete staff member. They are assigned to %d order(s).", count), count)
		}

		if err := tx.Delete(&models.Staff{}, id).Error; err != nil {
			return translate(err, errStaffNotFound)
		}
		return nil
	})
}

package services

import (
	"context"
	"errors"

	"github.com/kendall-kelly/tailorshop-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AssignmentService links staff members to orders
type AssignmentService struct {
	db *gorm.DB
}

func NewAssignmentService(db *gorm.DB) *AssignmentService {
	return &AssignmentService{db: db}
}

// List returns the order's assignments, latest assigned date first
func (s *AssignmentService) List(ctx context.Context, orderID uint) ([]models.OrderStaffAssignment, error) {
	db := s.db.WithContext(ctx)
	if err := mustExist(db, &models.Order{}, orderID, errOrderNotFound); err != nil {
		return nil, err
	}

	assignments := []models.OrderStaffAssignment{}
	err := db.Preload("Staff").
		Where("order_id = ?", orderID).
		Order("assigned_date DESC, id DESC").
		Find(&assignments).Error
	if err != nil {
		return nil, translate(err, errOrderNotFound)
	}
	return assignments, nil
}

// Assign adds a staff member to an order. A pair can be assigned only once.
func (s *AssignmentService) Assign(ctx context.Context, orderID uint, req models.AssignStaffRequest) (*models.OrderStaffAssignment, error) {
	var assignment models.OrderStaffAssignment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &models.Order{}, orderID, errOrderNotFound); err != nil {
			return err
		}
		if err := mustExist(tx, &models.Staff{}, req.StaffID, errStaffNotFound); err != nil {
			return err
		}

		var count int64
		err := tx.Model(&models.OrderStaffAssignment{}).
			Where("order_id = ? AND staff_id = ?", orderID, req.StaffID).
			Count(&count).Error
		if err != nil {
			return translate(err, errOrderNotFound)
		}
		if count > 0 {
			return errAlreadyAssigned()
		}

		assignment = models.OrderStaffAssignment{
			OrderID:      orderID,
			StaffID:      req.StaffID,
			AssignedDate: dateOrToday(req.AssignedDate),
			Notes:        req.Notes,
		}
		if err := tx.Omit(clause.Associations).Create(&assignment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errAlreadyAssigned()
			}
			return translate(err, errOrderNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Preload("Staff").First(&assignment, assignment.ID).Error; err != nil {
		return nil, translate(err, errAssignmentNotFound)
	}
	return &assignment, nil
}

// Unassign deletes the assignment only when it belongs to the given order
func (s *AssignmentService) Unassign(ctx context.Context, orderID, assignmentID uint) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND order_id = ?", assignmentID, orderID).
		Delete(&models.OrderStaffAssignment{})
	if result.Error != nil {
		return translate(result.Error, errAssignmentNotFound)
	}
	if result.RowsAffected == 0 {
		return errAssignmentNotFound()
	}
	return nil
}

func errAssignmentNotFound() *Error {
	return notFound("ASSIGNMENT_NOT_FOUND", "Assignment not found")
}

func errAlreadyAssigned() *Error {
	return conflict("STAFF_ALREADY_ASSIGNED", "Staff member is already assigned to this order", 1)
}

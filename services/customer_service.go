package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/kendall-kelly/tailorshop-api/models"
	"gorm.io/gorm"
)

// CustomerService manages the customer directory
type CustomerService struct {
	db *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{db: db}
}

// List returns customers newest first. A search term matches name or phone
// case-insensitively, and an all-digit term also matches the id exactly.
func (s *CustomerService) List(ctx context.Context, filter models.CustomerFilter) ([]models.Customer, error) {
	query := s.db.WithContext(ctx).Order("id DESC")

	if term := strings.TrimSpace(filter.Search); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		if id, err := strconv.ParseUint(term, 10, 64); err == nil {
			query = query.Where("LOWER(name) LIKE ? OR LOWER(phone) LIKE ? OR id = ?", like, like, id)
		} else {
			query = query.Where("LOWER(name) LIKE ? OR LOWER(phone) LIKE ?", like, like)
		}
	}

	customers := []models.Customer{}
	if err := query.Find(&customers).Error; err != nil {
		return nil, translate(err, errCustomerNotFound)
	}
	return customers, nil
}

func (s *CustomerService) Get(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		return nil, translate(err, errCustomerNotFound)
	}
	return &customer, nil
}

func (s *CustomerService) Create(ctx context.Context, req models.CreateCustomerRequest) (*models.Customer, error) {
	customer := models.Customer{
		Name:    req.Name,
		Phone:   req.Phone,
		Gender:  req.Gender,
		Address: req.Address,
		Notes:   req.Notes,
	}
	if customer.Gender == "" {
		customer.Gender = models.GenderUnisex
	}

	if err := s.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, translate(err, errCustomerNotFound)
	}
	return s.Get(ctx, customer.ID)
}

func (s *CustomerService) Update(ctx context.Context, id uint, req models.UpdateCustomerRequest) (*models.Customer, error) {
	changes := req.Changes()
	if len(changes) == 0 {
		return nil, errNoFields()
	}

	db := s.db.WithContext(ctx)
	if err := mustExist(db, &models.Customer{}, id, errCustomerNotFound); err != nil {
		return nil, err
	}
	if err := db.Model(&models.Customer{}).Where("id = ?", id).Updates(changes).Error; err != nil {
		return nil, translate(err, errCustomerNotFound)
	}
	return s.Get(ctx, id)
}

// Delete removes the customer together with everything the customer owns:
// orders with their items, payments and assignments, then measurements.
// Order items of other customers that point at a removed measurement are detached.
func (s *CustomerService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &models.Customer{}, id, errCustomerNotFound); err != nil {
			return err
		}

		var orderIDs []uint
		if err := tx.Model(&models.Order{}).Where("customer_id = ?", id).Pluck("id", &orderIDs).Error; err != nil {
			return translate(err, errCustomerNotFound)
		}
		if err := deleteOrders(tx, orderIDs); err != nil {
			return err
		}

		var measurementIDs []uint
		if err := tx.Model(&models.Measurement{}).Where("customer_id = ?", id).Pluck("id", &measurementIDs).Error; err != nil {
			return translate(err, errCustomerNotFound)
		}
		if len(measurementIDs) > 0 {
			if err := detachMeasurements(tx, measurementIDs); err != nil {
				return err
			}
			if err := tx.Where("id IN ?", measurementIDs).Delete(&models.Measurement{}).Error; err != nil {
				return translate(err, errMeasurementNotFound)
			}
		}

		if err := tx.Delete(&models.Customer{}, id).Error; err != nil {
			return translate(err, errCustomerNotFound)
		}
		return nil
	})
}

package services

import (
	"context"

	"github.com/kendall-kelly/tailorshop-api/models"
	"gorm.io/gorm"
)

// DeliveryService is a read-only view of orders by delivery date
type DeliveryService struct {
	db *gorm.DB
}

func NewDeliveryService(db *gorm.DB) *DeliveryService {
	return &DeliveryService{db: db}
}

// List filters on an inclusive delivery date range and status, newest order first
func (s *DeliveryService) List(ctx context.Context, filter models.DeliveryFilter) ([]models.DeliveryResponse, error) {
	db := s.db.WithContext(ctx)
	query := db.Preload("Customer").Order("id DESC")
	if filter.StartDate != "" {
		query = query.Where("delivery_date >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		query = query.Where("delivery_date <= ?", filter.EndDate)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, translate(err, errOrderNotFound)
	}

	paid, err := paidAmounts(db, orderIDs(orders))
	if err != nil {
		return nil, translate(err, errOrderNotFound)
	}

	deliveries := make([]models.DeliveryResponse, 0, len(orders))
	for _, order := range orders {
		p := paid[order.ID]
		deliveries = append(deliveries, models.NewDeliveryResponse(order, p, Remaining(order.TotalAmount, p)))
	}
	return deliveries, nil
}

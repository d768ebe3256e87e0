package services

import (
	"context"

	"github.com/kendall-kelly/tailorshop-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderService manages orders and produces the aggregated order read model
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

func withOrderDetail(db *gorm.DB) *gorm.DB {
	return db.Preload("Customer").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("StaffAssignments", func(db *gorm.DB) *gorm.DB {
			return db.Order("assigned_date DESC, id DESC")
		}).
		Preload("StaffAssignments.Staff")
}

// List returns detailed orders newest first
func (s *OrderService) List(ctx context.Context, filter models.OrderFilter) ([]models.OrderResponse, error) {
	db := s.db.WithContext(ctx)
	query := db.Scopes(withOrderDetail).Order("id DESC")
	if filter.CustomerID != 0 {
		query = query.Where("customer_id = ?", filter.CustomerID)
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

	responses := make([]models.OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, orderResponse(order, paid[order.ID]))
	}
	return responses, nil
}

func (s *OrderService) Get(ctx context.Context, id uint) (*models.OrderResponse, error) {
	db := s.db.WithContext(ctx)

	var order models.Order
	if err := db.Scopes(withOrderDetail).First(&order, id).Error; err != nil {
		return nil, translate(err, errOrderNotFound)
	}

	paid, err := paidAmounts(db, []uint{id})
	if err != nil {
		return nil, translate(err, errOrderNotFound)
	}

	response := orderResponse(order, paid[id])
	return &response, nil
}

// Create stores the order, its items and its staff assignments in one transaction.
// Unknown measurement ids are stored as null; unknown staff ids are skipped.
func (s *OrderService) Create(ctx context.Context, req models.CreateOrderRequest) (*models.OrderResponse, error) {
	var orderID uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &models.Customer{}, req.CustomerID, errCustomerNotFound); err != nil {
			return err
		}

		order := models.Order{
			CustomerID:   req.CustomerID,
			OrderDate:    dateOrToday(req.OrderDate),
			DeliveryDate: req.DeliveryDate,
			Status:       models.StatusPending,
			TotalAmount:  OrderTotal(req.Items),
			Notes:        req.Notes,
		}
		if err := tx.Omit(clause.Associations).Create(&order).Error; err != nil {
			return translate(err, errOrderNotFound)
		}
		orderID = order.ID

		items := make([]models.OrderItem, 0, len(req.Items))
		for _, item := range req.Items {
			measurementID, err := knownMeasurement(tx, item.MeasurementID)
			if err != nil {
				return err
			}
			items = append(items, models.OrderItem{
				OrderID:       order.ID,
				GarmentType:   item.GarmentType,
				Quantity:      item.Quantity,
				Price:         roundMoney(*item.Price),
				FabricDetails: item.FabricDetails,
				MeasurementID: measurementID,
			})
		}
		if len(items) > 0 {
			if err := tx.Omit(clause.Associations).Create(&items).Error; err != nil {
				return translate(err, errOrderNotFound)
			}
		}

		assigned := make(map[uint]bool, len(req.AssignedStaffIDs))
		for _, staffID := range req.AssignedStaffIDs {
			if assigned[staffID] {
				continue
			}
			ok, err := exists(tx, &models.Staff{}, staffID)
			if err != nil {
				return translate(err, errStaffNotFound)
			}
			if !ok {
				continue
			}
			assignment := models.OrderStaffAssignment{
				OrderID:      order.ID,
				StaffID:      staffID,
				AssignedDate: today(),
			}
			if err := tx.Omit(clause.Associations).Create(&assignment).Error; err != nil {
				return translate(err, errStaffNotFound)
			}
			assigned[staffID] = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, orderID)
}

// Update changes status, delivery date and notes only. Status moves are unrestricted.
func (s *OrderService) Update(ctx context.Context, id uint, req models.UpdateOrderRequest) (*models.OrderResponse, error) {
	changes := req.Changes()
	if len(changes) == 0 {
		return nil, errNoFields()
	}
	if status, ok := changes["status"].(string); ok && !models.IsValidStatus(status) {
		return nil, invalid("INVALID_STATUS", "Invalid status")
	}

	db := s.db.WithContext(ctx)
	if err := mustExist(db, &models.Order{}, id, errOrderNotFound); err != nil {
		return nil, err
	}
	if err := db.Model(&models.Order{}).Where("id = ?", id).Updates(changes).Error; err != nil {
		return nil, translate(err, errOrderNotFound)
	}
	return s.Get(ctx, id)
}

// Delete removes the order with its assignments, payments and items
func (s *OrderService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &models.Order{}, id, errOrderNotFound); err != nil {
			return err
		}
		return deleteOrders(tx, []uint{id})
	})
}

func deleteOrders(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	children := []interface{}{&models.OrderStaffAssignment{}, &models.Payment{}, &models.OrderItem{}}
	for _, child := range children {
		if err := tx.Where("order_id IN ?", ids).Delete(child).Error; err != nil {
			return translate(err, errOrderNotFound)
		}
	}
	if err := tx.Where("id IN ?", ids).Delete(&models.Order{}).Error; err != nil {
		return translate(err, errOrderNotFound)
	}
	return nil
}

func knownMeasurement(tx *gorm.DB, id *uint) (*uint, error) {
	if id == nil {
		return nil, nil
	}
	ok, err := exists(tx, &models.Measurement{}, *id)
	if err != nil {
		return nil, translate(err, errMeasurementNotFound)
	}
	if !ok {
		return nil, nil
	}
	return id, nil
}

func orderResponse(order models.Order, paid float64) models.OrderResponse {
	return models.NewOrderResponse(order, paid, Remaining(order.TotalAmount, paid))
}

func orderIDs(orders []models.Order) []uint {
	ids := make([]uint, 0, len(orders))
	for _, order := range orders {
		ids = append(ids, order.ID)
	}
	return ids
}

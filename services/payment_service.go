package services

import (
	"context"

	"github.com/kendall-kelly/tailorshop-api/models"
	"gorm.io/gorm"
)

// PaymentService records money received against orders. Payments may exceed the order total.
type PaymentService struct {
	db *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

func (s *PaymentService) List(ctx context.Context, filter models.PaymentFilter) ([]models.Payment, error) {
	query := s.db.WithContext(ctx).Order("id DESC")
	if filter.OrderID != 0 {
		query = query.Where("order_id = ?", filter.OrderID)
	}

	payments := []models.Payment{}
	if err := query.Find(&payments).Error; err != nil {
		return nil, translate(err, errPaymentNotFound)
	}
	return payments, nil
}

func (s *PaymentService) Get(ctx context.Context, id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.WithContext(ctx).First(&payment, id).Error; err != nil {
		return nil, translate(err, errPaymentNotFound)
	}
	return &payment, nil
}

func (s *PaymentService) Create(ctx context.Context, req models.CreatePaymentRequest) (*models.Payment, error) {
	db := s.db.WithContext(ctx)
	if err := mustExist(db, &models.Order{}, req.OrderID, errOrderNotFound); err != nil {
		return nil, err
	}

	payment := models.Payment{
		OrderID:       req.OrderID,
		Amount:        roundMoney(*req.Amount),
		PaymentType:   req.PaymentType,
		PaymentMethod: req.PaymentMethod,
		Date:          dateOrToday(req.Date),
		Notes:         req.Notes,
	}
	if err := db.Create(&payment).Error; err != nil {
		return nil, translate(err, errPaymentNotFound)
	}
	return s.Get(ctx, payment.ID)
}

func (s *PaymentService) Update(ctx context.Context, id uint, req models.UpdatePaymentRequest) (*models.Payment, error) {
	changes := req.Changes()
	if len(changes) == 0 {
		return nil, errNoFields()
	}
	if amount, ok := changes["amount"].(float64); ok {
		changes["amount"] = roundMoney(amount)
	}

	db := s.db.WithContext(ctx)
	if err := mustExist(db, &models.Payment{}, id, errPaymentNotFound); err != nil {
		return nil, err
	}
	if err := db.Model(&models.Payment{}).Where("id = ?", id).Updates(changes).Error; err != nil {
		return nil, translate(err, errPaymentNotFound)
	}
	return s.Get(ctx, id)
}

func (s *PaymentService) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Payment{}, id)
	if result.Error != nil {
		return translate(result.Error, errPaymentNotFound)
	}
	if result.RowsAffected == 0 {
		return errPaymentNotFound()
	}
	return nil
}

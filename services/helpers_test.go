package services

import (
	"context"
	"testing"
	"time"

	"github.com/kendall-kelly/tailorshop-api/clock"
	"github.com/kendall-kelly/tailorshop-api/models"
	"github.com/kendall-kelly/tailorshop-api/tests/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testToday = "2024-05-01"

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	SetClock(clock.NewMockClock(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)))
	t.Cleanup(func() { SetClock(nil) })
	return testutil.NewTestDB(t)
}

func ptr[T any](v T) *T {
	return &v
}

func createCustomer(t *testing.T, db *gorm.DB, name, phone string) *models.Customer {
	t.Helper()
	c, err := NewCustomerService(db).Create(context.Background(), models.CreateCustomerRequest{Name: name, Phone: phone})
	require.NoError(t, err)
	return c
}

func createTemplate(t *testing.T, db *gorm.DB, garment, gender string) *models.MeasurementTemplate {
	t.Helper()
	tpl, err := NewTemplateService(db).Create(context.Background(), models.CreateTemplateRequest{
		GarmentType: garment,
		Gender:      gender,
		FieldsJSON:  map[string]string{"chest": "Chest", "length": "Length"},
		DisplayName: garment + " (" + gender + ")",
	})
	require.NoError(t, err)
	return tpl
}

func createMeasurement(t *testing.T, db *gorm.DB, customerID, templateID uint) *models.Measurement {
	t.Helper()
	m, err := NewMeasurementService(db).Create(context.Background(), models.CreateMeasurementRequest{
		CustomerID:       customerID,
		GarmentType:      "shirt",
		TemplateID:       templateID,
		MeasurementsJSON: map[string]interface{}{"chest": 40, "length": 30},
	})
	require.NoError(t, err)
	return m
}

func createStaff(t *testing.T, db *gorm.DB, name, role string) *models.Staff {
	t.Helper()
	s, err := NewStaffService(db).Create(context.Background(), models.CreateStaffRequest{Name: name, Phone: "01800000000", Role: role})
	require.NoError(t, err)
	return s
}

func createOrder(t *testing.T, db *gorm.DB, customerID uint, items ...models.OrderItemRequest) *models.OrderResponse {
	t.Helper()
	if len(items) == 0 {
		items = []models.OrderItemRequest{{GarmentType: "shirt", Quantity: 1, Price: ptr(500.0)}}
	}
	o, err := NewOrderService(db).Create(context.Background(), models.CreateOrderRequest{
		CustomerID:   customerID,
		DeliveryDate: "2024-05-15",
		Items:        items,
	})
	require.NoError(t, err)
	return o
}

func createPayment(t *testing.T, db *gorm.DB, orderID uint, amount float64) *models.Payment {
	t.Helper()
	p, err := NewPaymentService(db).Create(context.Background(), models.CreatePaymentRequest{
		OrderID:       orderID,
		Amount:        ptr(amount),
		PaymentType:   models.PaymentAdvance,
		PaymentMethod: models.MethodCash,
	})
	require.NoError(t, err)
	return p
}

func requireCode(t *testing.T, err error, kind error, code string) {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, kind)
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, code, svcErr.Code)
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

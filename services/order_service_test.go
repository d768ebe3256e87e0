package services

import (
	"context"
	"testing"

	"github.com/kendall-kelly/tailorshop-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderCreateComputesTotalAndDefaults(t *testing.T) {
	db := setupDB(t)
	c := createCustomer(t, db, "Rahim", "01711111111")

	order := createOrder(t, db, c.ID,
		models.OrderItemRequest{GarmentType: "shirt", Quantity: 2, Price: ptr(250.0)},
		models.OrderItemRequest{GarmentType: "pant", Quantity: 1, Price: ptr(500.0), FabricDetails: ptr("cotton")},
	)

	assert.Equal(t, 1000.0, order.TotalAmount)
	assert.Equal(t, 0.0, order.PaidAmount)
	assert.Equal(t, 1000.0, order.RemainingAmount)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, testToday, order.OrderDate)
	assert.Equal(t, "Rahim", order.CustomerName)
	assert.Equal(t, "01711111111", order.CustomerPhone)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "shirt", order.Items[0].GarmentType)
	assert.Equal(t, "cotton", *order.Items[1].FabricDetails)
	assert.Empty(t, order.AssignedStaff)
}

func TestOrderCreateDropsUnknownReferences(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	c := createCustomer(t, db, "Rahim", "017")
	tpl := createTemplate(t, db, "shirt", models.GenderMale)
	m := createMeasurement(t, db, c.ID, tpl.ID)
	tailor := createStaff(t, db, "Jamal", models.RoleTailor)
	cutter := createStaff(t, db, "Kamal", models.RoleCuttingMaster)

	order, err := NewOrderService(db).Create(ctx, models.CreateOrderRequest{
		CustomerID:   c.ID,
		OrderDate:    "2024-04-30",
		DeliveryDate: "2024-05-10",
		Items: []models.OrderItemRequest{
			{GarmentType: "shirt", Quantity: 1, Price: ptr(100.0), MeasurementID: &m.ID},
			{GarmentType: "shirt", Quantity: 1, Price: ptr(100.0), MeasurementID: ptr(uint(999))},
		},
		AssignedStaffIDs: []uint{tailor.ID, 999, tailor.ID, cutter.ID},
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-04-30", order.OrderDate)
	require.Len(t, order.Items, 2)
	require.NotNil(t, order.Items[0].MeasurementID)
	assert.Equal(t, m.ID, *order.Items[0].MeasurementID)
	assert.Nil(t, order.Items[1].MeasurementID)

	require.Len(t, order.AssignedStaff, 2)
	staffIDs := []uint{order.AssignedStaff[0].StaffID, order.AssignedStaff[1].StaffID}
	assert.ElementsMatch(t, []uint{tailor.ID, cutter.ID}, staffIDs)
	for _, a := range order.AssignedStaff {
		assert.Equal(t, testToday, a.AssignedDate)
		assert.NotEmpty(t, a.StaffName)
	}
}

func TestOrderCreateMissingCustomerLeavesNothing(t *testing.T) {
	db := setupDB(t)

	_, err := NewOrderService(db).Create(context.Background(), models.CreateOrderRequest{
		CustomerID:   404,
		DeliveryDate: "2024-05-10",
		Items:        []models.OrderItemRequest{{GarmentType: "shirt", Quantity: 1, Price: ptr(1.0)}},
	})
	requireCode(t, err, ErrNotFound, "CUSTOMER_NOT_FOUND")
	assert.Equal(t, int64(0), count(t, db, &models.Order{}))
	assert.Equal(t, int64(0), count(t, db, &models.OrderItem{}))
}

func TestOrderPaymentsDriveRemaining(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	c := createCustomer(t, db, "Rahim", "017")
	order := createOrder(t, db, c.ID, models.OrderItemRequest{GarmentType: "suit", Quantity: 1, Price: ptr(1000.0)})

	createPayment(t, db, order.ID, 400)
	got, err := NewOrderService(db).Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 400.0, got.PaidAmount)
	assert.Equal(t, 600.0, got.RemainingAmount)

	createPayment(t, db, order.ID, 800)
	got, err = NewOrderService(db).Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 1200.0, got.PaidAmount)
	assert.Equal(t, -200.0, got.RemainingAmount)
	assert.Equal(t, 1000.0, got.TotalAmount)
}

func TestOrderListFilters(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	svc := NewOrderService(db)
	a := createCustomer(t, db, "A", "1")
	b := createCustomer(t, db, "B", "2")
	first := createOrder(t, db, a.ID)
	second := createOrder(t, db, b.ID)
	createPayment(t, db, first.ID, 100)

	_, err := svc.Update(ctx, second.ID, models.UpdateOrderRequest{Status: ptr(models.StatusReady)})
	require.NoError(t, err)

	all, err := svc.List(ctx, models.OrderFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, 100.0, all[1].PaidAmount)
	assert.Equal(t, 400.0, all[1].RemainingAmount)

	ready, err := svc.List(ctx, models.OrderFilter{Status: models.StatusReady})
	require.NoError(t, err)
	require.Len(t, ready, 1)
	assert.Equal(t, second.ID, ready[0].ID)

	forA, err := svc.List(ctx, models.OrderFilter{CustomerID: a.ID})
	require.NoError(t, err)
	require.Len(t, forA, 1)
	assert.Equal(t, first.ID, forA[0].ID)
}

func TestOrderUpdate(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	svc := NewOrderService(db)
	c := createCustomer(t, db, "Rahim", "017")
	order := createOrder(t, db, c.ID)

	// any status may follow any other
	for _, status := range []string{models.StatusDelivered, models.StatusCutting, models.StatusPending} {
		updated, err := svc.Update(ctx, order.ID, models.UpdateOrderRequest{Status: ptr(status)})
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}

	updated, err := svc.Update(ctx, order.ID, models.UpdateOrderRequest{DeliveryDate: ptr("2024-06-01"), Notes: ptr("rush")})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", updated.DeliveryDate)
	assert.Equal(t, "rush", *updated.Notes)
	assert.Equal(t, order.TotalAmount, updated.TotalAmount)

	_, err = svc.Update(ctx, order.ID, models.UpdateOrderRequest{Status: ptr("shipped")})
	requireCode(t, err, ErrValidation, "INVALID_STATUS")

	_, err = svc.Update(ctx, order.ID, models.UpdateOrderRequest{})
	requireCode(t, err, ErrValidation, "NO_FIELDS_TO_UPDATE")

	_, err = svc.Update(ctx, 999, models.UpdateOrderRequest{Notes: ptr("x")})
	requireCode(t, err, ErrNotFound, "ORDER_NOT_FOUND")
}

func TestOrderDeleteRemovesChildren(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	c := createCustomer(t, db, "Rahim", "017")
	staff := createStaff(t, db, "Jamal", models.RoleTailor)
	order, err := NewOrderService(db).Create(ctx, models.CreateOrderRequest{
		CustomerID:       c.ID,
		DeliveryDate:     "2024-05-10",
		Items:            []models.OrderItemRequest{{GarmentType: "shirt", Quantity: 1, Price: ptr(10.0)}},
		AssignedStaffIDs: []uint{staff.ID},
	})
	require.NoError(t, err)
	createPayment(t, db, order.ID, 5)

	require.NoError(t, NewOrderService(db).Delete(ctx, order.ID))

	assert.Equal(t, int64(0), count(t, db, &models.Order{}))
	assert.Equal(t, int64(0), count(t, db, &models.OrderItem{}))
	assert.Equal(t, int64(0), count(t, db, &models.Payment{}))
	assert.Equal(t, int64(0), count(t, db, &models.OrderStaffAssignment{}))
	assert.Equal(t, int64(1), count(t, db, &models.Staff{}))

	err = NewOrderService(db).Delete(ctx, order.ID)
	requireCode(t, err, ErrNotFound, "ORDER_NOT_FOUND")
}

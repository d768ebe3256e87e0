package controllers

import (
	"net/http"
	"testing"

	"github.com/kendall-kelly/tailorshop-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderComputesTotal(t *testing.T) {
	router, _ := setupTest(t)
	customer := seedCustomer(t, router, "Rahim", "017")
	tailor := seedStaff(t, router, "Jamal", models.RoleTailor)

	var order models.OrderResponse
	status, _ := call(t, router, http.MethodPost, url("/orders"), map[string]interface{}{
		"customer_id":   customer,
		"delivery_date": "2024-05-20",
		"items": []map[string]interface{}{
			{"garment_type": "shirt", "quantity": 2, "price": 300},
			{"garment_type": "pant", "quantity": 1, "price": 400, "measurement_id": 999},
		},
		"assigned_staff_ids": []uint{tailor, tailor, 999},
	}, &order)
	require.Equal(t, http.StatusCreated, status)

	assert.Equal(t, 1000.0, order.TotalAmount)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, today, order.OrderDate)
	assert.Equal(t, "Rahim", order.CustomerName)
	assert.Equal(t, 0.0, order.PaidAmount)
	assert.Equal(t, 1000.0, order.RemainingAmount)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "shirt", order.Items[0].GarmentType)
	assert.Nil(t, order.Items[1].MeasurementID)
	require.Len(t, order.AssignedStaff, 1)
	assert.Equal(t, "Jamal", order.AssignedStaff[0].StaffName)
	assert.Equal(t, today, order.AssignedStaff[0].AssignedDate)
}

func TestCreateOrderValidation(t *testing.T) {
	router, _ := setupTest(t)
	customer := seedCustomer(t, router, "Rahim", "017")

	item := map[string]interface{}{"garment_type": "shirt", "quantity": 1, "price": 100}
	tests := []struct {
		name           string
		body           map[string]interface{}
		expectedStatus int
		expectedError  string
	}{
		{"no items", map[string]interface{}{"customer_id": customer, "delivery_date": "2024-05-20", "items": []interface{}{}}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"bad delivery date", map[string]interface{}{"customer_id": customer, "delivery_date": "20/05/2024", "items": []interface{}{item}}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"zero quantity", map[string]interface{}{"customer_id": customer, "delivery_date": "2024-05-20", "items": []interface{}{
			map[string]interface{}{"garment_type": "shirt", "quantity": 0, "price": 100},
		}}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"missing price", map[string]interface{}{"customer_id": customer, "delivery_date": "2024-05-20", "items": []interface{}{
			map[string]interface{}{"garment_type": "shirt", "quantity": 1},
		}}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"unknown customer", map[string]interface{}{"customer_id": 999, "delivery_date": "2024-05-20", "items": []interface{}{item}}, http.StatusNotFound, "CUSTOMER_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := call(t, router, http.MethodPost, url("/orders"), tt.body, nil)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedError, env.ErrorCode())
		})
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	router, _ := setupTest(t)
	customer := seedCustomer(t, router, "Rahim", "017")
	id := seedOrder(t, router, customer, 500)

	var order models.OrderResponse
	status, _ := call(t, router, http.MethodPatch, url("/orders/%d", id), map[string]interface{}{"status": "cutting"}, &order)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.StatusCutting, order.Status)
	assert.Equal(t, 500.0, order.TotalAmount)

	status, env := call(t, router, http.MethodPatch, url("/orders/%d", id), map[string]interface{}{"status": "lost"}, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", env.ErrorCode())

	var list []models.OrderResponse
	status, _ = call(t, router, http.MethodGet, url("/orders?status=cutting&customer_id=%d", customer), nil, &list)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, list, 1)
	status, _ = call(t, router, http.MethodGet, url("/orders?status=ready"), nil, &list)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, list)

	status, _ = call(t, router, http.MethodDelete, url("/orders/%d", id), nil, nil)
	assert.Equal(t, http.StatusOK, status)
	status, env = call(t, router, http.MethodGet, url("/orders/%d", id), nil, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "ORDER_NOT_FOUND", env.ErrorCode())
}

func TestOrderStaffAssignments(t *testing.T) {
	router, _ := setupTest(t)
	customer := seedCustomer(t, router, "Rahim", "017")
	order := seedOrder(t, router, customer, 500)
	tailor := seedStaff(t, router, "Jamal", models.RoleTailor)

	var assignment models.AssignmentResponse
	status, _ := call(t, router, http.MethodPost, url("/orders/%d/staff", order),
		map[string]interface{}{"staff_id": tailor, "notes": "collar"}, &assignment)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Jamal", assignment.StaffName)
	assert.Equal(t, models.RoleTailor, assignment.StaffRole)
	assert.Equal(t, today, assignment.AssignedDate)

	status, env := call(t, router, http.MethodPost, url("/orders/%d/staff", order), map[string]interface{}{"staff_id": tailor}, nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "STAFF_ALREADY_ASSIGNED", env.ErrorCode())

	status, env = call(t, router, http.MethodPost, url("/orders/%d/staff", order), map[string]interface{}{"staff_id": 999}, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "STAFF_NOT_FOUND", env.ErrorCode())

	status, env = call(t, router, http.MethodGet, url("/orders/999/staff"), nil, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "ORDER_NOT_FOUND", env.ErrorCode())

	var assignments []models.AssignmentResponse
	status, _ = call(t, router, http.MethodGet, url("/orders/%d/staff", order), nil, &assignments)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, assignments, 1)

	status, env = call(t, router, http.MethodDelete, url("/orders/%d/staff/%d", order+1, assignment.ID), nil, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "ASSIGNMENT_NOT_FOUND", env.ErrorCode())

	status, _ = call(t, router, http.MethodDelete, url("/orders/%d/staff/%d", order, assignment.ID), nil, nil)
	require.Equal(t, http.StatusOK, status)

	// the same staff member can be assigned again once removed
	status, _ = call(t, router, http.MethodPost, url("/orders/%d/staff", order), map[string]interface{}{"staff_id": tailor}, nil)
	assert.Equal(t, http.StatusCreated, status)
}

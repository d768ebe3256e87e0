package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/tailorshop-api/config"
	"github.com/kendall-kelly/tailorshop-api/models"
	"github.com/kendall-kelly/tailorshop-api/services"
)

func orderService() *services.OrderService {
	return services.NewOrderService(config.GetDB())
}

func assignmentService() *services.AssignmentService {
	return services.NewAssignmentService(config.GetDB())
}

// ListOrders handles GET /api/v1/orders?customer_id=&status=
func ListOrders(c *gin.Context) {
	var filter models.OrderFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondValidation(c, err)
		return
	}

	orders, err := orderService().List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, orders)
}

// GetOrder handles GET /api/v1/orders/:id - order with items, balance and staff
func GetOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := orderService().Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, order)
}

// CreateOrder handles POST /api/v1/orders
func CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	order, err := orderService().Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, order)
}

// UpdateOrder handles PUT and PATCH /api/v1/orders/:id - status, delivery date and notes only
func UpdateOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	order, err := orderService().Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, order)
}

// DeleteOrder handles DELETE /api/v1/orders/:id
func DeleteOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := orderService().Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Order deleted successfully")
}

// ListOrderStaff handles GET /api/v1/orders/:id/staff
func ListOrderStaff(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	assignments, err := assignmentService().List(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, models.MapAll(assignments, models.NewAssignmentResponse))
}

// AssignOrderStaff handles POST /api/v1/orders/:id/staff
func AssignOrderStaff(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.AssignStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	assignment, err := assignmentService().Assign(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, models.NewAssignmentResponse(*assignment))
}

// UnassignOrderStaff handles DELETE /api/v1/orders/:id/staff/:assignment_id
func UnassignOrderStaff(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	assignmentID, ok := parseID(c, "assignment_id")
	if !ok {
		return
	}

	if err := assignmentService().Unassign(c.Request.Context(), id, assignmentID); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Staff removed from order successfully")
}

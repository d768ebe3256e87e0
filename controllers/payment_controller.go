package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/tailorshop-api/config"
	"github.com/kendall-kelly/tailorshop-api/models"
	"github.com/kendall-kelly/tailorshop-api/services"
)

func paymentService() *services.PaymentService {
	return services.NewPaymentService(config.GetDB())
}

// ListPayments handles GET /api/v1/payments?order_id=
func ListPayments(c *gin.Context) {
	var filter models.PaymentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondValidation(c, err)
		return
	}

	payments, err := paymentService().List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, models.MapAll(payments, models.NewPaymentResponse))
}

// GetPayment handles GET /api/v1/payments/:id
func GetPayment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	payment, err := paymentService().Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, models.NewPaymentResponse(*payment))
}

// CreatePayment handles POST /api/v1/payments
func CreatePayment(c *gin.Context) {
	var req models.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	payment, err := paymentService().Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, models.NewPaymentResponse(*payment))
}

// UpdatePayment handles PUT and PATCH /api/v1/payments/:id
func UpdatePayment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	payment, err := paymentService().Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, models.NewPaymentResponse(*payment))
}

// DeletePayment handles DELETE /api/v1/payments/:id
func DeletePayment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := paymentService().Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Payment deleted successfully")
}

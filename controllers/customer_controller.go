package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/tailorshop-api/config"
	"github.com/kendall-kelly/tailorshop-api/models"
	"github.com/kendall-kelly/tailorshop-api/services"
)

func customerService() *services.CustomerService {
	return services.NewCustomerService(config.GetDB())
}

// ListCustomers handles GET /api/v1/customers?search=
func ListCustomers(c *gin.Context) {
	var filter models.CustomerFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondValidation(c, err)
		return
	}

	customers, err := customerService().List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, models.MapAll(customers, models.NewCustomerResponse))
}

// GetCustomer handles GET /api/v1/customers/:id
func GetCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	customer, err := customerService().Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, models.NewCustomerResponse(*customer))
}

// CreateCustomer handles POST /api/v1/customers
func CreateCustomer(c *gin.Context) {
	var req models.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	customer, err := customerService().Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, models.NewCustomerResponse(*customer))
}

// UpdateCustomer handles PUT and PATCH /api/v1/customers/:id
func UpdateCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	customer, err := customerService().Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, models.NewCustomerResponse(*customer))
}

// DeleteCustomer handles DELETE /api/v1/customers/:id, removing everything the customer owns
func DeleteCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := customerService().Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Customer deleted successfully")
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/tailorshop-api/config"
	"github.com/kendall-kelly/tailorshop-api/models"
	"github.com/kendall-kelly/tailorshop-api/services"
)

// ListDeliveries handles GET /api/v1/deliveries?start_date=&end_date=&status=
func ListDeliveries(c *gin.Context) {
	var filter models.DeliveryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondValidation(c, err)
		return
	}

	deliveries, err := services.NewDeliveryService(config.GetDB()).List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, deliveries)
}

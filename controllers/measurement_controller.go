package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/tailorshop-api/config"
	"github.com/kendall-kelly/tailorshop-api/models"
	"github.com/kendall-kelly/tailorshop-api/services"
)

func measurementService() *services.MeasurementService {
	return services.NewMeasurementService(config.GetDB())
}

// ListMeasurements handles GET /api/v1/measurements?customer_id=&garment_type=
func ListMeasurements(c *gin.Context) {
	var filter models.MeasurementFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondValidation(c, err)
		return
	}

	measurements, err := measurementService().List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, models.MapAll(measurements, models.NewMeasurementResponse))
}

// GetMeasurement handles GET /api/v1/measurements/:id
func GetMeasurement(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	measurement, err := measurementService().Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, models.NewMeasurementResponse(*measurement))
}

// CreateMeasurement handles POST /api/v1/measurements
func CreateMeasurement(c *gin.Context) {
	var req models.CreateMeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	measurement, err := measurementService().Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, models.NewMeasurementResponse(*measurement))
}

// UpdateMeasurement handles PUT and PATCH /api/v1/measurements/:id
func UpdateMeasurement(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateMeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	measurement, err := measurementService().Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, models.NewMeasurementResponse(*measurement))
}

// DeleteMeasurement handles DELETE /api/v1/measurements/:id
func DeleteMeasurement(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := measurementService().Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Measurement deleted successfully")
}

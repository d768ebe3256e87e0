package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/tailorshop-api/config"
	"github.com/kendall-kelly/tailorshop-api/models"
	"github.com/kendall-kelly/tailorshop-api/services"
)

func sampleService() *services.SampleService {
	return services.NewSampleService(config.GetDB(), services.GetImageService())
}

// ListSamples handles GET /api/v1/samples?garment_type=
func ListSamples(c *gin.Context) {
	var filter models.SampleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondValidation(c, err)
		return
	}

	samples, err := sampleService().List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, models.MapAll(samples, models.NewSampleResponse))
}

// GetSample handles GET /api/v1/samples/:id
func GetSample(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	sample, err := sampleService().Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, models.NewSampleResponse(*sample))
}

// CreateSample handles POST /api/v1/samples
func CreateSample(c *gin.Context) {
	var req models.CreateSampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	sample, err := sampleService().Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, models.NewSampleResponse(*sample))
}

// UpdateSample handles PUT and PATCH /api/v1/samples/:id
func UpdateSample(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateSampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	sample, err := sampleService().Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, models.NewSampleResponse(*sample))
}

// DeleteSample handles DELETE /api/v1/samples/:id
func DeleteSample(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := sampleService().Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Sample deleted successfully")
}

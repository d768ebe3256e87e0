package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/tailorshop-api/config"
	"github.com/kendall-kelly/tailorshop-api/models"
	"github.com/kendall-kelly/tailorshop-api/services"
)

func templateService() *services.TemplateService {
	return services.NewTemplateService(config.GetDB())
}

// ListTemplates handles GET /api/v1/measurement-templates?garment_type=&gender=
func ListTemplates(c *gin.Context) {
	var filter models.TemplateFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondValidation(c, err)
		return
	}

	templates, err := templateService().List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, models.MapAll(templates, models.NewTemplateResponse))
}

// GetTemplate handles GET /api/v1/measurement-templates/:id
func GetTemplate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	template, err := templateService().Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, models.NewTemplateResponse(*template))
}

// CreateTemplate handles POST /api/v1/measurement-templates
func CreateTemplate(c *gin.Context) {
	var req models.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	template, err := templateService().Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, models.NewTemplateResponse(*template))
}

// UpdateTemplate handles PUT and PATCH /api/v1/measurement-templates/:id
func UpdateTemplate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	template, err := templateService().Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, models.NewTemplateResponse(*template))
}

// DeleteTemplate handles DELETE /api/v1/measurement-templates/:id
func DeleteTemplate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := templateService().Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Template deleted successfully")
}

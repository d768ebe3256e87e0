package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/tailorshop-api/config"
	"github.com/kendall-kelly/tailorshop-api/models"
	"github.com/kendall-kelly/tailorshop-api/services"
)

func staffService() *services.StaffService {
	return services.NewStaffService(config.GetDB())
}

// ListStaff handles GET /api/v1/staff?role=
func ListStaff(c *gin.Context) {
	var filter models.StaffFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondValidation(c, err)
		return
	}

	staff, err := staffService().List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, models.MapAll(staff, models.NewStaffResponse))
}

// GetStaff handles GET /api/v1/staff/:id
func GetStaff(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	member, err := staffService().Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, models.NewStaffResponse(*member))
}

// CreateStaff handles POST /api/v1/staff
func CreateStaff(c *gin.Context) {
	var req models.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	member, err := staffService().Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, models.NewStaffResponse(*member))
}

// UpdateStaff handles PUT and PATCH /api/v1/staff/:id
func UpdateStaff(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	member, err := staffService().Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, models.NewStaffResponse(*member))
}

// DeleteStaff handles DELETE /api/v1/staff/:id; refused while the member has assignments
func DeleteStaff(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := staffService().Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Staff member deleted successfully")
}

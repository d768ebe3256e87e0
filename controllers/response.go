package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/tailorshop-api/middleware"
	"github.com/kendall-kelly/tailorshop-api/services"
)

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}

func respondFailure(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func respondValidation(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "VALIDATION_ERROR",
			"message": "Invalid request data",
			"details": err.Error(),
		},
	})
}

// respondError maps service errors onto HTTP statuses. Unknown errors are
// logged and reported as a generic 500.
func respondError(c *gin.Context, err error) {
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(svcErr, services.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(svcErr, services.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(svcErr, services.ErrConflict):
			status = http.StatusConflict
		}

		body := gin.H{
			"code":    svcErr.Code,
			"message": svcErr.Message,
		}
		if svcErr.Count > 0 {
			body["count"] = svcErr.Count
		}
		c.JSON(status, gin.H{"success": false, "error": body})
		return
	}

	log.Printf("[%s] %s %s failed: %v", middleware.GetRequestID(c), c.Request.Method, c.Request.URL.Path, err)
	respondFailure(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
}

// parseID reads a positive numeric path parameter, answering 400 when it is malformed
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		respondFailure(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

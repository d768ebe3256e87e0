package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/tailorshop-api/middleware"
	"github.com/kendall-kelly/tailorshop-api/models"
	"github.com/kendall-kelly/tailorshop-api/services"
	"github.com/kendall-kelly/tailorshop-api/utils"
)

// UploadSampleImage handles POST /api/v1/samples/images - stores a PNG and
// returns the URL to reference from sample payloads
func UploadSampleImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		respondFailure(c, http.StatusBadRequest, "NO_FILE", "An image file is required in the 'image' field")
		return
	}

	imageService := services.GetImageService()
	if imageService == nil {
		log.Printf("[%s] image upload attempted without a configured image service", middleware.GetRequestID(c))
		respondFailure(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Image storage is not configured")
		return
	}

	filename, err := imageService.UploadImage(c.Request.Context(), fileHeader)
	if err != nil {
		var uploadErr *utils.FileUploadError
		if errors.As(err, &uploadErr) {
			respondFailure(c, http.StatusBadRequest, uploadErr.Code, uploadErr.Message)
			return
		}
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, models.UploadResponse{
		ImageURL: utils.GetImageURL(filename),
		Filename: filename,
	})
}

// GetUploadedImage handles GET /api/v1/uploads/:filename - serves a stored image
// from disk or redirects to a presigned S3 URL
func GetUploadedImage(c *gin.Context) {
	filename := c.Param("filename")
	if !utils.IsValidFilename(filename) {
		respondFailure(c, http.StatusBadRequest, "INVALID_FILENAME", "Invalid filename")
		return
	}

	imageService := services.GetImageService()
	if imageService == nil {
		respondFailure(c, http.StatusNotFound, "FILE_NOT_FOUND", "Image not found")
		return
	}

	location, err := imageService.ResolveImage(c.Request.Context(), filename)
	if err != nil {
		respondError(c, err)
		return
	}

	if location.RedirectURL != "" {
		c.Redirect(http.StatusFound, location.RedirectURL)
		return
	}

	c.Header("Content-Type", "image/png")
	c.Header("Cache-Control", "public, max-age=86400")
	c.File(location.FilePath)
}

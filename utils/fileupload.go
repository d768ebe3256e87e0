package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	// MaxFileSize is 10MB in bytes
	MaxFileSize = 10 * 1024 * 1024
	// AllowedImageFormat is PNG
	AllowedImageFormat = ".png"
	// UploadURLPrefix is the route prefix under which stored images are served
	UploadURLPrefix = "/api/v1/uploads/"
)

// FileUploadError represents a file upload validation error
type FileUploadError struct {
	Code    string
	Message string
}

func (e *FileUploadError) Error() string {
	return e.Message
}

// ValidateImageFile validates the uploaded file format and size
func ValidateImageFile(fileHeader *multipart.FileHeader) error {
	if fileHeader.Size > MaxFileSize {
		return &FileUploadError{
			Code:    "FILE_TOO_LARGE",
			Message: fmt.Sprintf("File size exceeds maximum allowed size of %d MB", MaxFileSize/(1024*1024)),
		}
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != AllowedImageFormat {
		return &FileUploadError{
			Code:    "INVALID_FILE_FORMAT",
			Message: fmt.Sprintf("Only %s files are allowed", AllowedImageFormat),
		}
	}

	return nil
}

// NewImageFilename returns a collision-free name for a stored sample image
func NewImageFilename() string {
	return uuid.NewString() + AllowedImageFormat
}

// IsValidFilename accepts bare PNG file names only, rejecting any path component
func IsValidFilename(filename string) bool {
	if filename == "" || strings.Contains(filename, "..") || strings.ContainsAny(filename, `/\`) {
		return false
	}
	return strings.ToLower(filepath.Ext(filename)) == AllowedImageFormat
}

// SaveUploadedFile saves the uploaded file as uploadDir/filename
func SaveUploadedFile(fileHeader *multipart.FileHeader, uploadDir, filename string) (err error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			fmt.Printf("warning: failed to close source file: %v\n", closeErr)
		}
	}()

	dst, err := os.Create(filepath.Join(uploadDir, filename))
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	defer func() {
		if closeErr := dst.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close destination file: %w", closeErr)
		}
	}()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	return nil
}

// GetImageURL returns the URL path for accessing a stored image
func GetImageURL(filename string) string {
	if filename == "" {
		return ""
	}
	return UploadURLPrefix + filename
}

// FilenameFromURL extracts the stored file name from an image URL served by this API.
// URLs pointing elsewhere report false.
func FilenameFromURL(url string) (string, bool) {
	idx := strings.Index(url, UploadURLPrefix)
	if idx < 0 {
		return "", false
	}
	filename := url[idx+len(UploadURLPrefix):]
	if !IsValidFilename(filename) {
		return "", false
	}
	return filename, true
}

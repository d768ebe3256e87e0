package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"sync"

	"github.com/kendall-kelly/tailorshop-api/utils"
)

// MockImageService is an in-memory ImageService for tests
type MockImageService struct {
	images map[string]int64 // file name -> size
	mu     sync.RWMutex
}

func NewMockImageService() *MockImageService {
	return &MockImageService{images: make(map[string]int64)}
}

// SetAsMockForTesting sets this mock as the global image service instance
func (m *MockImageService) SetAsMockForTesting() {
	SetImageService(m)
}

func (m *MockImageService) UploadImage(_ context.Context, fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	filename := utils.NewImageFilename()
	m.mu.Lock()
	m.images[filename] = fileHeader.Size
	m.mu.Unlock()
	return filename, nil
}

func (m *MockImageService) ResolveImage(_ context.Context, filename string) (*ImageLocation, error) {
	if !m.ImageExists(filename) {
		return nil, errImageNotFound()
	}
	return &ImageLocation{
		RedirectURL: fmt.Sprintf("https://test-bucket.s3.us-east-1.amazonaws.com/%s%s?mock=true", S3KeyPrefix, filename),
	}, nil
}

func (m *MockImageService) DeleteImage(_ context.Context, filename string) error {
	m.mu.Lock()
	delete(m.images, filename)
	m.mu.Unlock()
	return nil
}

// ImageExists reports whether filename is stored
func (m *MockImageService) ImageExists(filename string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.images[filename]
	return ok
}

// Count returns the number of stored images
func (m *MockImageService) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.images)
}

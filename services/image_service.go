package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/kendall-kelly/tailorshop-api/utils"
)

// S3KeyPrefix is the bucket folder holding sample images
const S3KeyPrefix = "samples/"

// ImageLocation says where a stored image can be read from. Exactly one field is set.
type ImageLocation struct {
	RedirectURL string
	FilePath    string
}

// ImageService stores sample images under generated file names
type ImageService interface {
	// UploadImage validates and stores an image, returning its file name
	UploadImage(ctx context.Context, fileHeader *multipart.FileHeader) (string, error)

	// ResolveImage locates a stored image for serving
	ResolveImage(ctx context.Context, filename string) (*ImageLocation, error)

	// DeleteImage removes an image from storage
	DeleteImage(ctx context.Context, filename string) error
}

var imageServiceInstance ImageService

// GetImageService returns the initialized image service instance
func GetImageService() ImageService {
	return imageServiceInstance
}

// SetImageService sets the image service instance (primarily for testing)
func SetImageService(service ImageService) {
	imageServiceInstance = service
}

func errImageNotFound() *Error {
	return notFound("FILE_NOT_FOUND", "Image not found")
}

// S3ImageService keeps images in S3 and serves them through presigned links
type S3ImageService struct {
	s3Service S3Interface
}

// InitImageService installs an S3-backed image service
func InitImageService(s3Service S3Interface) ImageService {
	imageServiceInstance = &S3ImageService{s3Service: s3Service}
	return imageServiceInstance
}

func (s *S3ImageService) UploadImage(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	filename := utils.NewImageFilename()
	if err := s.s3Service.UploadFile(ctx, S3KeyPrefix+filename, fileHeader); err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return filename, nil
}

func (s *S3ImageService) ResolveImage(ctx context.Context, filename string) (*ImageLocation, error) {
	if !utils.IsValidFilename(filename) {
		return nil, errImageNotFound()
	}

	url, err := s.s3Service.GetPresignedURL(ctx, S3KeyPrefix+filename)
	if err != nil {
		return nil, fmt.Errorf("failed to generate image URL: %w", err)
	}
	return &ImageLocation{RedirectURL: url}, nil
}

func (s *S3ImageService) DeleteImage(ctx context.Context, filename string) error {
	if filename == "" {
		return nil
	}
	if err := s.s3Service.DeleteFile(ctx, S3KeyPrefix+filename); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

// LocalImageService keeps images in a directory on the local disk
type LocalImageService struct {
	dir string
}

// InitLocalImageService installs a disk-backed image service rooted at dir
func InitLocalImageService(dir string) ImageService {
	imageServiceInstance = NewLocalImageService(dir)
	return imageServiceInstance
}

func NewLocalImageService(dir string) *LocalImageService {
	return &LocalImageService{dir: dir}
}

func (s *LocalImageService) UploadImage(_ context.Context, fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	filename := utils.NewImageFilename()
	if err := utils.SaveUploadedFile(fileHeader, s.dir, filename); err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return filename, nil
}

func (s *LocalImageService) ResolveImage(_ context.Context, filename string) (*ImageLocation, error) {
	if !utils.IsValidFilename(filename) {
		return nil, errImageNotFound()
	}

	path := filepath.Join(s.dir, filename)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errImageNotFound()
		}
		return nil, fmt.Errorf("failed to stat image: %w", err)
	}
	return &ImageLocation{FilePath: path}, nil
}

func (s *LocalImageService) DeleteImage(_ context.Context, filename string) error {
	if !utils.IsValidFilename(filename) {
		return nil
	}
	if err := os.Remove(filepath.Join(s.dir, filename)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

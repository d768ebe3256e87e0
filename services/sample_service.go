package services

import (
	"context"
	"log"

	"github.com/kendall-kelly/tailorshop-api/models"
	"github.com/kendall-kelly/tailorshop-api/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SampleService manages the sample gallery
type SampleService struct {
	db     *gorm.DB
	images ImageService
}

// NewSampleService creates a sample service. images may be nil, in which case
// stored files are never released.
func NewSampleService(db *gorm.DB, images ImageService) *SampleService {
	return &SampleService{db: db, images: images}
}

func withImages(db *gorm.DB) *gorm.DB {
	return db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order ASC, id ASC")
	})
}

func (s *SampleService) List(ctx context.Context, filter models.SampleFilter) ([]models.Sample, error) {
	query := s.db.WithContext(ctx).Scopes(withImages).Order("id DESC")
	if filter.GarmentType != "" {
		query = query.Where("garment_type = ?", filter.GarmentType)
	}

	samples := []models.Sample{}
	if err := query.Find(&samples).Error; err != nil {
		return nil, translate(err, errSampleNotFound)
	}
	return samples, nil
}

func (s *SampleService) Get(ctx context.Context, id uint) (*models.Sample, error) {
	var sample models.Sample
	if err := s.db.WithContext(ctx).Scopes(withImages).First(&sample, id).Error; err != nil {
		return nil, translate(err, errSampleNotFound)
	}
	return &sample, nil
}

// Create stores the sample and its images; images are ordered as given
func (s *SampleService) Create(ctx context.Context, req models.CreateSampleRequest) (*models.Sample, error) {
	if len(req.Images) == 0 {
		return nil, errImagesRequired()
	}

	var sampleID uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sample := models.Sample{
			GarmentType: req.GarmentType,
			Title:       req.Title,
			Description: req.Description,
		}
		if err := tx.Omit(clause.Associations).Create(&sample).Error; err != nil {
			return translate(err, errSampleNotFound)
		}
		sampleID = sample.ID
		return insertImages(tx, sample.ID, req.Images)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, sampleID)
}

// Update patches scalar fields. A supplied image list replaces the existing set entirely.
func (s *SampleService) Update(ctx context.Context, id uint, req models.UpdateSampleRequest) (*models.Sample, error) {
	changes := req.Changes()
	if len(changes) == 0 && req.Images == nil {
		return nil, errNoFields()
	}
	if req.Images != nil && len(*req.Images) == 0 {
		return nil, errImagesRequired()
	}

	var replaced []string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &models.Sample{}, id, errSampleNotFound); err != nil {
			return err
		}
		if len(changes) > 0 {
			if err := tx.Model(&models.Sample{}).Where("id = ?", id).Updates(changes).Error; err != nil {
				return translate(err, errSampleNotFound)
			}
		}
		if req.Images == nil {
			return nil
		}

		old, err := removeImages(tx, id)
		if err != nil {
			return err
		}
		if err := insertImages(tx, id, *req.Images); err != nil {
			return err
		}
		replaced, err = unreferencedFiles(tx, old)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.releaseImages(ctx, replaced)
	return s.Get(ctx, id)
}

// Delete removes the sample's images and then the sample
func (s *SampleService) Delete(ctx context.Context, id uint) error {
	var removed []string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &models.Sample{}, id, errSampleNotFound); err != nil {
			return err
		}

		old, err := removeImages(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(&models.Sample{}, id).Error; err != nil {
			return translate(err, errSampleNotFound)
		}
		removed, err = unreferencedFiles(tx, old)
		return err
	})
	if err != nil {
		return err
	}

	s.releaseImages(ctx, removed)
	return nil
}

// releaseImages deletes stored files after the owning transaction committed.
// A sample written concurrently with the same file after that commit is not
// seen here and can lose its image; uploads are not shared in normal use.
func (s *SampleService) releaseImages(ctx context.Context, filenames []string) {
	if s.images == nil {
		return
	}
	for _, filename := range filenames {
		if err := s.images.DeleteImage(ctx, filename); err != nil {
			log.Printf("warning: failed to release image %s: %v", filename, err)
		}
	}
}

// unreferencedFiles returns the uploaded file names behind urls that no image
// row points at any more. Rows are matched by file name, so absolute and
// relative forms of the same upload URL count as one reference.
func unreferencedFiles(tx *gorm.DB, urls []string) ([]string, error) {
	seen := make(map[string]bool, len(urls))
	var filenames []string
	for _, url := range urls {
		filename, ok := utils.FilenameFromURL(url)
		if !ok || seen[filename] {
			continue
		}
		seen[filename] = true

		var count int64
		err := tx.Model(&models.SampleImage{}).
			Where("image_url LIKE ?", "%"+utils.GetImageURL(filename)).
			Count(&count).Error
		if err != nil {
			return nil, translate(err, errSampleNotFound)
		}
		if count == 0 {
			filenames = append(filenames, filename)
		}
	}
	return filenames, nil
}

func insertImages(tx *gorm.DB, sampleID uint, urls []string) error {
	images := make([]models.SampleImage, 0, len(urls))
	for i, url := range urls {
		images = append(images, models.SampleImage{
			SampleID:     sampleID,
			ImageURL:     url,
			DisplayOrder: i,
		})
	}
	if err := tx.Create(&images).Error; err != nil {
		return translate(err, errSampleNotFound)
	}
	return nil
}

// removeImages deletes all images of a sample and returns their urls
func removeImages(tx *gorm.DB, sampleID uint) ([]string, error) {
	var urls []string
	if err := tx.Model(&models.SampleImage{}).Where("sample_id = ?", sampleID).Pluck("image_url", &urls).Error; err != nil {
		return nil, translate(err, errSampleNotFound)
	}
	if err := tx.Where("sample_id = ?", sampleID).Delete(&models.SampleImage{}).Error; err != nil {
		return nil, translate(err, errSampleNotFound)
	}
	return urls, nil
}

func errImagesRequired() *Error {
	return invalid("IMAGES_REQUIRED", "At least one image is required")
}

package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/tailorshop-api/api"
	"github.com/kendall-kelly/tailorshop-api/config"
	"github.com/kendall-kelly/tailorshop-api/models"
	"github.com/kendall-kelly/tailorshop-api/services"
)

func main() {
	log.Println("Starting Tailor Shop API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := setupApp(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupApp connects and migrates the database, installs image storage and builds the router
func setupApp(ctx context.Context, cfg *config.Config) (*gin.Engine, error) {
	if err := config.ConnectDatabase(cfg); err != nil {
		return nil, err
	}

	if err := config.GetDB().AutoMigrate(models.All()...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Println("Database migration completed successfully")

	if cfg.UsesS3() {
		s3Service, err := services.InitS3Service(ctx, cfg)
		if err != nil {
			return nil, err
		}
		services.InitImageService(s3Service)
		log.Printf("Sample images stored in S3 bucket %s", cfg.AWSS3Bucket)
	} else {
		services.InitLocalImageService(cfg.UploadDir)
		log.Printf("Sample images stored on disk in %s", cfg.UploadDir)
	}

	return api.SetupRouter(cfg), nil
}

// File: utils/cloudinary.go
package utils

import (
	"fmt"

	"github.com/jpcunanan716/bestaccord-transportation-sub000/config"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/services/storage"

	"github.com/cloudinary/cloudinary-go/v2"
)

// Cloudinary initializes and returns a Cloudinary-based StorageService from
// the loaded application config.
func Cloudinary() (storage.StorageService, error) {
	cfg := config.AppConfig
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary configuration is incomplete")
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return storage.NewStorageService(cld, cfg.CloudinaryCloudName), nil
}

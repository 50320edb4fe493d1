// File: services/media/media.go
package media

import (
	"context"
	"fmt"
	"strings"

	"reisdesk/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/spf13/viper"
)

// LoadMedia returns every asset tagged with the product code, plus the
// additional code's assets when one is given (e.g. a room code next to its
// hotel code).
func (s *CloudinaryMediaService) LoadMedia(ctx context.Context, code, additionalCode string) ([]models.MediaItem, error) {
	items, err := s.loadByTag(ctx, code)
	if err != nil {
		return nil, err
	}
	if additionalCode != "" && additionalCode != code {
		extra, err := s.loadByTag(ctx, additionalCode)
		if err != nil {
			return nil, err
		}
		items = append(items, extra...)
	}
	return items, nil
}

func (s *CloudinaryMediaService) loadByTag(ctx context.Context, tag string) ([]models.MediaItem, error) {
	result, err := s.cld.Admin.AssetsByTag(ctx, admin.AssetsByTagParams{Tag: tag})
	if err != nil {
		return nil, fmt.Errorf("media: failed to list assets for %q: %w", tag, err)
	}

	items := make([]models.MediaItem, 0, len(result.Assets))
	for _, asset := range result.Assets {
		items = append(items, models.MediaItem{
			Kind: mediaKind(asset.AssetType, asset.PublicID),
			URL:  asset.SecureURL,
			Code: tag,
		})
	}
	return items, nil
}

// mediaKind classifies an asset. Panorama assets carry a "360" marker in
// their public id; externally hosted video links are stored as raw assets.
func mediaKind(assetType, publicID string) string {
	switch assetType {
	case "video":
		return models.MediaVideo
	case "raw":
		return models.MediaYoutube
	}
	if strings.Contains(publicID, "360") {
		return models.Media360
	}
	return models.MediaImage
}

// NewFromConfig initializes the Cloudinary-backed media service using Viper.
func NewFromConfig() (MediaService, error) {
	viper.SetDefault("cloudinary.cloudName", "")
	viper.SetDefault("cloudinary.apiKey", "")
	viper.SetDefault("cloudinary.apiSecret", "")

	cloudName := viper.GetString("cloudinary.cloudName")
	apiKey := viper.GetString("cloudinary.apiKey")
	apiSecret := viper.GetString("cloudinary.apiSecret")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("media: cloudinary credentials not set in configuration")
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("media: failed to initialize Cloudinary: %w", err)
	}
	return NewCloudinaryMediaService(cld), nil
}

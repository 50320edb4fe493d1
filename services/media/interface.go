// File: services/media/interface.go
package media

import (
	"context"

	"reisdesk/models"

	"github.com/cloudinary/cloudinary-go/v2"
)

// MediaService loads the displayable assets attached to a catalog product.
// The composition engine never depends on it.
type MediaService interface {
	LoadMedia(ctx context.Context, code, additionalCode string) ([]models.MediaItem, error)
}

// CloudinaryMediaService implements MediaService against Cloudinary, where
// catalog assets are tagged with their product code.
type CloudinaryMediaService struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryMediaService creates a new CloudinaryMediaService.
func NewCloudinaryMediaService(cld *cloudinary.Cloudinary) *CloudinaryMediaService {
	return &CloudinaryMediaService{cld: cld}
}

package models

// Media variants returned by the media provider.
const (
	MediaImage   = "image"
	MediaVideo   = "video"
	MediaYoutube = "youtube"
	Media360     = "360"
)

// MediaItem is a single displayable asset attached to a catalog product.
// Consumed only for display; the composition engine never reads it.
type MediaItem struct {
	Kind string `json:"kind"` // image, video, youtube or 360
	URL  string `json:"url"`
	Code string `json:"code"` // product code the asset is tagged with
}

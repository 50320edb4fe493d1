// File: services/trip/interface.go
package trip

import (
	"context"

	catalogRepo "reisdesk/database/repository/catalog"
	itemRepo "reisdesk/database/repository/item"
	"reisdesk/models"
)

// CompositionResult is what a committed selection produced: the persisted
// line items and the price they were derived from. Failed lists the ids of
// extras whose persistence request did not succeed.
type CompositionResult struct {
	Items  []models.LineItem `json:"items"`
	Price  PriceBreakdown    `json:"price"`
	Failed []string          `json:"failed,omitempty"`
}

// EditSession is the cached state of an item being edited: the restored
// selection plus any non-fatal restore warnings.
type EditSession struct {
	SessionID string           `json:"sessionId"`
	UID       string           `json:"uid"`
	ItemID    string           `json:"itemId"`
	Selection models.Selection `json:"selection"`
	Warnings  []string         `json:"warnings,omitempty"`
}

// TripService drives composing, pricing and persisting trip line items, and
// the edit flow that reconstructs a selection from persisted items.
type TripService interface {
	Quote(sel models.Selection) PriceBreakdown
	ValidateSelection(sel models.Selection) []string
	AddItem(ctx context.Context, uid string, sel models.Selection) (*CompositionResult, error)
	UpdateItem(ctx context.Context, uid, itemID string, sel models.Selection) (*CompositionResult, error)
	DeleteItem(ctx context.Context, uid, itemID string) error
	Sidebar(ctx context.Context, uid string) ([]models.TripItemSummary, error)
	BeginEdit(ctx context.Context, uid, itemID string) (*EditSession, error)
	CancelEdit(ctx context.Context, sessionID string) error
}

// DefaultTripService implements TripService.
type DefaultTripService struct {
	Store   itemRepo.ItemRepository
	Catalog catalogRepo.CatalogRepository
}

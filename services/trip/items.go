// File: services/trip/items.go
package trip

import (
	"context"
	"fmt"
	"sync"

	"reisdesk/models"
	"reisdesk/utils"

	"go.uber.org/zap"
)

// Quote prices the current selection without touching the store.
func (s *DefaultTripService) Quote(sel models.Selection) PriceBreakdown {
	return CalculatePrice(sel)
}

// ValidateSelection returns the non-fatal warnings the agent may override
// before committing a selection.
func (s *DefaultTripService) ValidateSelection(sel models.Selection) []string {
	var warnings []string
	if sel.Date == "" {
		warnings = append(warnings, "no date set for this item")
	}
	if sel.Kind == models.KindAccommodation && sel.Nights <= 0 {
		warnings = append(warnings, "no number of nights set for this accommodation")
	}
	return warnings
}

// AddItem composes and persists a fresh line-item set for the selection.
// The main item is persisted first; its extras are independent requests
// fanned out in parallel, so a partial failure leaves the main item in place
// and is reported through CompositionResult.Failed alongside the error.
func (s *DefaultTripService) AddItem(ctx context.Context, uid string, sel models.Selection) (*CompositionResult, error) {
	existing, err := s.Store.ListByUID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to list trip items: %w", err)
	}
	ids := make([]string, 0, len(existing))
	for _, item := range existing {
		ids = append(ids, item.ID)
	}

	price := CalculatePrice(sel)
	items, err := ComposeItems(sel, price, uid, "", ids)
	if err != nil {
		return nil, err
	}
	return s.persistSet(ctx, items, price)
}

// UpdateItem replaces the persisted set for itemID with one recomputed from
// the selection. The old set is deleted and awaited before anything is
// recreated so a stale id can never resurrect; the window between the two
// phases is a known, accepted gap.
func (s *DefaultTripService) UpdateItem(ctx context.Context, uid, itemID string, sel models.Selection) (*CompositionResult, error) {
	if !IsMainID(itemID) {
		return nil, ErrNotMainItem
	}
	if err := s.deleteSet(ctx, uid, itemID); err != nil {
		return nil, err
	}

	price := CalculatePrice(sel)
	items, err := ComposeItems(sel, price, uid, itemID, nil)
	if err != nil {
		return nil, err
	}
	return s.persistSet(ctx, items, price)
}

// DeleteItem removes a main item and every extra derived from its id.
func (s *DefaultTripService) DeleteItem(ctx context.Context, uid, itemID string) error {
	if !IsMainID(itemID) {
		return ErrNotMainItem
	}
	return s.deleteSet(ctx, uid, itemID)
}

// Sidebar returns the trip's display-ordered summary rows.
func (s *DefaultTripService) Sidebar(ctx context.Context, uid string) ([]models.TripItemSummary, error) {
	items, err := s.Store.ListByUID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to list trip items: %w", err)
	}
	return ProjectSidebar(items), nil
}

func (s *DefaultTripService) persistSet(ctx context.Context, items []models.LineItem, price PriceBreakdown) (*CompositionResult, error) {
	main := items[0]
	if err := s.Store.Upsert(ctx, main); err != nil {
		return nil, fmt.Errorf("failed to persist item %s: %w", main.ID, err)
	}

	extras := items[1:]
	failed := make([]string, 0)
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, extra := range extras {
		wg.Add(1)
		go func(extra models.LineItem) {
			defer wg.Done()
			if err := s.Store.Upsert(ctx, extra); err != nil {
				utils.GetLogger().Error("failed to persist extra",
					zap.String("id", extra.ID), zap.Error(err))
				mu.Lock()
				failed = append(failed, extra.ID)
				mu.Unlock()
			}
		}(extra)
	}
	wg.Wait()

	result := &CompositionResult{Items: items, Price: price}
	if len(failed) > 0 {
		result.Failed = failed
		return result, fmt.Errorf("failed to persist %d of %d extras for item %s", len(failed), len(extras), main.ID)
	}
	return result, nil
}

// deleteSet cascades over the main item and its lettered extras. Each delete
// is awaited before the next is issued.
func (s *DefaultTripService) deleteSet(ctx context.Context, uid, itemID string) error {
	items, err := s.Store.ListByUID(ctx, uid)
	if err != nil {
		return fmt.Errorf("failed to list trip items: %w", err)
	}

	found := false
	for _, item := range items {
		if item.ID == itemID {
			found = true
			break
		}
	}
	if !found {
		return ErrItemNotFound
	}

	for _, item := range items {
		if item.ID != itemID && !isExtraOf(item.ID, itemID) {
			continue
		}
		if err := s.Store.Delete(ctx, item.ID, uid); err != nil {
			return fmt.Errorf("failed to delete item %s: %w", item.ID, err)
		}
	}
	return nil
}

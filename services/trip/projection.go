package trip

import (
	"sort"

	"reisdesk/models"
)

// ProjectSidebar folds a trip's flat list of persisted line items into the
// display-ordered sidebar summaries: one row per main item with the gross of
// its extras merged in. It never mutates the store.
func ProjectSidebar(items []models.LineItem) []models.TripItemSummary {
	summaries := make([]models.TripItemSummary, 0, len(items))

	for _, item := range items {
		if !IsMainID(item.ID) {
			continue
		}
		total := item.Gross
		for _, candidate := range items {
			if isExtraOf(candidate.ID, item.ID) {
				total += candidate.Gross
			}
		}
		summaries = append(summaries, models.TripItemSummary{
			ID:       item.ID,
			Date:     item.DateStart,
			Time:     item.TimeStart,
			City:     item.City,
			Title:    titleOf(item),
			Total:    total,
			Currency: item.Currency,
			Sequence: item.Sequence,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return sidebarSortKey(summaries[i]) < sidebarSortKey(summaries[j])
	})
	return summaries
}

// isExtraOf reports whether id names an extra of the given main item:
// the main id plus exactly one lowercase letter.
func isExtraOf(id, mainID string) bool {
	if len(id) != len(mainID)+1 || id[:len(mainID)] != mainID {
		return false
	}
	return !IsMainID(id)
}

func titleOf(item models.LineItem) string {
	if item.SupplierName != "" {
		return item.SupplierName
	}
	if item.SupplierProduct != "" {
		return item.SupplierProduct
	}
	return item.Service
}

// sidebarSortKey orders rows by date then time; items without a date sort
// last.
func sidebarSortKey(summary models.TripItemSummary) string {
	if summary.Date == "" {
		return "~"
	}
	return summary.Date + " " + summary.Time
}

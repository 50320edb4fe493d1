package trip

import (
	"testing"

	"reisdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectSidebarMergesExtras(t *testing.T) {
	items := []models.LineItem{
		{ID: "TRIP42_001", DateStart: "2026-05-10", TimeStart: "14:00", City: "Den Haag", SupplierName: "Hotel Zee", Gross: 300, Currency: "EUR", Sequence: "001"},
		{ID: "TRIP42_001a", Gross: 60},
		{ID: "TRIP42_001b", Gross: 30},
		{ID: "TRIP42_002", DateStart: "2026-05-11", TimeStart: "19:30", City: "Amsterdam", SupplierName: "Rederij Noord", Gross: 200, Currency: "EUR", Sequence: "002"},
	}

	summaries := ProjectSidebar(items)
	require.Len(t, summaries, 2)

	assert.Equal(t, "TRIP42_001", summaries[0].ID)
	assert.Equal(t, 390.0, summaries[0].Total)
	assert.Equal(t, "Hotel Zee", summaries[0].Title)
	assert.Equal(t, 200.0, summaries[1].Total)
}

func TestProjectSidebarOrdering(t *testing.T) {
	items := []models.LineItem{
		{ID: "U_001", DateStart: "2026-05-12", TimeStart: "09:00"},
		{ID: "U_002", DateStart: "2026-05-10", TimeStart: "18:00"},
		{ID: "U_003", DateStart: "2026-05-10", TimeStart: "08:00"},
		{ID: "U_004"}, // no date sorts last
	}

	summaries := ProjectSidebar(items)
	require.Len(t, summaries, 4)

	assert.Equal(t, "U_003", summaries[0].ID)
	assert.Equal(t, "U_002", summaries[1].ID)
	assert.Equal(t, "U_001", summaries[2].ID)
	assert.Equal(t, "U_004", summaries[3].ID)
}

func TestProjectSidebarIgnoresOrphanSuffixLookalikes(t *testing.T) {
	// U_0011 is a main item, not an extra of U_001.
	items := []models.LineItem{
		{ID: "U_001", DateStart: "2026-05-10", Gross: 100},
		{ID: "U_0011", DateStart: "2026-05-11", Gross: 50},
	}

	summaries := ProjectSidebar(items)
	require.Len(t, summaries, 2)
	assert.Equal(t, 100.0, summaries[0].Total)
	assert.Equal(t, 50.0, summaries[1].Total)
}

// Composing a selection and projecting the persisted items must reproduce
// the calculator's grand total.
func TestComposeProjectRoundTrip(t *testing.T) {
	sel := accommodationSelection()
	price := CalculatePrice(sel)

	items, err := ComposeItems(sel, price, "TRIP42", "", nil)
	require.NoError(t, err)

	summaries := ProjectSidebar(items)
	require.Len(t, summaries, 1)
	assert.Equal(t, price.GrandTotal, summaries[0].Total)
}

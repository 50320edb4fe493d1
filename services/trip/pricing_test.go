package trip

import (
	"testing"

	"reisdesk/models"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePriceAccommodation(t *testing.T) {
	sel := models.Selection{
		Kind:     models.KindAccommodation,
		Hotel:    &models.HotelChoice{Name: "Hotel Zee", City: "Den Haag"},
		Room:     &models.RoomChoice{Name: "Double", UnitPrice: 100},
		Pax:      5,
		Nights:   3,
		Currency: "EUR",
		Extras: []models.ExtraChoice{
			{Name: "Breakfast", UnitPrice: 20, Quantity: 1, PerPaxUnit: 2},
		},
	}

	price := CalculatePrice(sel)

	assert.Equal(t, 300.0, price.MainTotal)
	// ceil(5/2) = 3 units of 20.
	assert.Equal(t, 60.0, price.ExtrasTotal)
	assert.Equal(t, 360.0, price.GrandTotal)
	assert.Equal(t, "EUR", price.Currency)
}

func TestCalculatePriceAccommodationPerNightExtra(t *testing.T) {
	sel := models.Selection{
		Kind:   models.KindAccommodation,
		Room:   &models.RoomChoice{UnitPrice: 80},
		Pax:    2,
		Nights: 4,
		Extras: []models.ExtraChoice{
			{Name: "Parking", UnitPrice: 10, Quantity: 1, PerNight: true},
		},
	}

	price := CalculatePrice(sel)

	assert.Equal(t, 320.0, price.MainTotal)
	assert.Equal(t, 40.0, price.ExtrasTotal)
}

func TestCalculatePriceQuantityExtraNotScaledByPax(t *testing.T) {
	// The stored quantity already represents selected units; pax must not
	// multiply in again.
	sel := models.Selection{
		Kind:   models.KindAccommodation,
		Room:   &models.RoomChoice{UnitPrice: 50},
		Pax:    6,
		Nights: 2,
		Extras: []models.ExtraChoice{
			{Name: "Bike rental", UnitPrice: 15, Quantity: 2, CanAddMore: true},
		},
	}

	price := CalculatePrice(sel)

	assert.Equal(t, 30.0, price.ExtrasTotal)
}

func TestCalculatePriceTourPerPax(t *testing.T) {
	sel := models.Selection{
		Kind: models.KindTour,
		Tour: &models.TourChoice{Name: "Canal Cruise", UnitPrice: 50, PerPax: true},
		Pax:  4,
		Extras: []models.ExtraChoice{
			{Name: "Audio guide", UnitPrice: 10, Quantity: 2, CanAddMore: true},
		},
	}

	price := CalculatePrice(sel)

	assert.Equal(t, 200.0, price.MainTotal)
	assert.Equal(t, 20.0, price.ExtrasTotal)
	assert.Equal(t, 220.0, price.GrandTotal)
}

func TestCalculatePriceTourPerTour(t *testing.T) {
	sel := models.Selection{
		Kind: models.KindTour,
		Tour: &models.TourChoice{UnitPrice: 150, PerTour: true},
		Pax:  8,
	}

	assert.Equal(t, 150.0, CalculatePrice(sel).GrandTotal)
}

func TestCalculatePriceTimeslotModifier(t *testing.T) {
	sel := models.Selection{
		Kind:     models.KindTour,
		Tour:     &models.TourChoice{UnitPrice: 40, PerPax: true},
		Timeslot: &models.TimeSlot{SlotName: "Sunset", PriceModifierPerPerson: 5},
		Pax:      3,
	}
	assert.Equal(t, 135.0, CalculatePrice(sel).MainTotal)

	sel.Timeslot.PriceModifierPerPerson = -5
	assert.Equal(t, 105.0, CalculatePrice(sel).MainTotal)
}

func TestCalculatePriceTourExtrasIgnorePerNight(t *testing.T) {
	sel := models.Selection{
		Kind:   models.KindTour,
		Tour:   &models.TourChoice{UnitPrice: 30},
		Pax:    2,
		Nights: 5,
		Extras: []models.ExtraChoice{
			{Name: "Lunch", UnitPrice: 12, Quantity: 1, PerNight: true},
		},
	}

	assert.Equal(t, 12.0, CalculatePrice(sel).ExtrasTotal)
}

func TestCalculatePriceNeverPanicsOnMissingInput(t *testing.T) {
	assert.Equal(t, 0.0, CalculatePrice(models.Selection{}).GrandTotal)

	sel := models.Selection{
		Kind:   models.KindAccommodation,
		Pax:    -3,
		Nights: -1,
		Extras: []models.ExtraChoice{
			{Name: "Ghost", UnitPrice: 10, Quantity: 0},
		},
	}
	price := CalculatePrice(sel)
	assert.Equal(t, 0.0, price.GrandTotal)
	assert.Empty(t, price.Extras)
}

func TestCalculatePriceSkipsUncheckedExtras(t *testing.T) {
	sel := models.Selection{
		Kind:   models.KindAccommodation,
		Room:   &models.RoomChoice{UnitPrice: 60},
		Nights: 1,
		Extras: []models.ExtraChoice{
			{Name: "Sauna", UnitPrice: 25, Quantity: 0},
			{Name: "Breakfast", UnitPrice: 10, Quantity: 1},
		},
	}

	price := CalculatePrice(sel)

	assert.Len(t, price.Extras, 1)
	assert.Equal(t, "Breakfast", price.Extras[0].Name)
}

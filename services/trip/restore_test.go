package trip

import (
	"context"
	"errors"
	"testing"

	"reisdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalog is an in-memory CatalogRepository.
type fakeCatalog struct {
	hotels     []models.Hotel
	roomTypes  map[string]*models.RoomTypes
	bedConfigs map[string][]models.BedConfiguration
	tours      []models.Tour
	options    map[string]*models.TourOptions
	slots      map[string][]models.TimeSlot
}

func (f *fakeCatalog) SearchAccommodations(ctx context.Context, city, name string) ([]models.Hotel, error) {
	return f.hotels, nil
}

func (f *fakeCatalog) GetRoomTypes(ctx context.Context, hotelCode string) (*models.RoomTypes, error) {
	if rt, ok := f.roomTypes[hotelCode]; ok {
		return rt, nil
	}
	return nil, errors.New("unknown hotel")
}

func (f *fakeCatalog) GetBedConfigurations(ctx context.Context, roomID string) ([]models.BedConfiguration, error) {
	return f.bedConfigs[roomID], nil
}

func (f *fakeCatalog) SearchTours(ctx context.Context, city, name string) ([]models.Tour, error) {
	return f.tours, nil
}

func (f *fakeCatalog) GetTourOptions(ctx context.Context, tourCode string) (*models.TourOptions, error) {
	if opts, ok := f.options[tourCode]; ok {
		return opts, nil
	}
	return nil, errors.New("unknown tour")
}

func (f *fakeCatalog) GetTourTimeslots(ctx context.Context, tourID string) ([]models.TimeSlot, error) {
	return f.slots[tourID], nil
}

func accommodationCatalog() *fakeCatalog {
	return &fakeCatalog{
		hotels: []models.Hotel{
			{Code: "HTL001", Name: "Hotel Zee", City: "Den Haag", Address: "Strandweg 1"},
			{Code: "HTL002", Name: "Hotel Duin", City: "Den Haag"},
		},
		roomTypes: map[string]*models.RoomTypes{
			"HTL001": {
				Rooms: []models.Room{
					{ID: "RM1", HotelCode: "HTL001", Code: "DBL", Name: "Double", UnitPrice: 100, NettPrice: 80},
					{ID: "RM2", HotelCode: "HTL001", Code: "SGL", Name: "Single", UnitPrice: 70},
				},
				Options: []models.ExtraOption{
					{Name: "Breakfast", UnitPrice: 20},
					{Name: "Parking", UnitPrice: 10, PerNight: true},
					{Name: "Late checkout", UnitPrice: 15},
				},
			},
		},
		bedConfigs: map[string][]models.BedConfiguration{
			"RM1": {
				{ID: "BC1", RoomID: "RM1", Name: "Twin beds"},
				{ID: "BC2", RoomID: "RM1", Name: "King size"},
			},
		},
	}
}

func TestRestoreAccommodationRoundTrip(t *testing.T) {
	sel := accommodationSelection()
	price := CalculatePrice(sel)
	items, err := ComposeItems(sel, price, "TRIP42", "", nil)
	require.NoError(t, err)

	svc := &DefaultTripService{Catalog: accommodationCatalog()}
	restored, warnings := svc.restoreSelection(context.Background(), items[0], items[1:])

	assert.Empty(t, warnings)
	assert.Equal(t, models.KindAccommodation, restored.Kind)
	require.NotNil(t, restored.Hotel)
	assert.Equal(t, "HTL001", restored.Hotel.Code)
	require.NotNil(t, restored.Room)
	assert.Equal(t, "DBL", restored.Room.Code)
	assert.Equal(t, 3, restored.Nights)
	assert.Equal(t, "2026-05-10", restored.Date)
	assert.Equal(t, "BC2", restored.BedConfigurationID)

	require.Len(t, restored.Extras, 3)
	names := []string{restored.Extras[0].Name, restored.Extras[1].Name, restored.Extras[2].Name}
	assert.ElementsMatch(t, []string{"Breakfast", "Parking", "Late checkout"}, names)
}

func TestRestoreAccommodationMismatchIsNonFatal(t *testing.T) {
	catalog := accommodationCatalog()
	catalog.roomTypes["HTL001"].Options = catalog.roomTypes["HTL001"].Options[:1]
	catalog.bedConfigs["RM1"] = catalog.bedConfigs["RM1"][:1]

	sel := accommodationSelection()
	price := CalculatePrice(sel)
	items, err := ComposeItems(sel, price, "TRIP42", "", nil)
	require.NoError(t, err)

	svc := &DefaultTripService{Catalog: catalog}
	restored, warnings := svc.restoreSelection(context.Background(), items[0], items[1:])

	// Dropped extras and the missing bed configuration are reported, the
	// rest of the selection survives.
	assert.NotEmpty(t, warnings)
	require.NotNil(t, restored.Room)
	assert.Len(t, restored.Extras, 1)
	assert.Empty(t, restored.BedConfigurationID)
}

func TestRestoreAccommodationAutoSelectsSingleCandidate(t *testing.T) {
	catalog := accommodationCatalog()
	catalog.hotels = catalog.hotels[:1]
	catalog.hotels[0].Name = "Hotel Zee (renamed)"

	main := models.LineItem{
		ID: "TRIP42_001", UID: "TRIP42", ProductType: models.ProductTypeAccommodation,
		City: "Den Haag", SupplierName: "Hotel Zee", SupplierProduct: "Penthouse",
		DateStart: "2026-05-10", DateEnd: "2026-05-12",
	}

	svc := &DefaultTripService{Catalog: catalog}
	restored, warnings := svc.restoreSelection(context.Background(), main, nil)

	// The sole hotel wins despite the name mismatch; the unknown room is
	// reported but does not abort the restore.
	require.NotNil(t, restored.Hotel)
	assert.Equal(t, "HTL001", restored.Hotel.Code)
	assert.NotEmpty(t, warnings)
}

func tourCatalog() *fakeCatalog {
	return &fakeCatalog{
		tours: []models.Tour{
			{TourID: "T9", Code: "CANAL", Name: "Canal Cruise", City: "Amsterdam", Supplier: "Rederij Noord", UnitPrice: 50, NettPrice: 35, PerPax: true},
			{TourID: "T10", Code: "WALK", Name: "City Walk", City: "Amsterdam", UnitPrice: 15, PerPax: true},
		},
		options: map[string]*models.TourOptions{
			"CANAL": {
				Tour:     models.Tour{TourID: "T9", Code: "CANAL"},
				Extras:   []models.ExtraOption{{Name: "Audio guide", UnitPrice: 10, CanAddMore: true}},
				Currency: "EUR",
			},
		},
		slots: map[string][]models.TimeSlot{
			"T9": {
				{ID: "TS1", TourID: "T9", SlotName: "Morning", StartTime: "10:00", EndTime: "11:30"},
				{ID: "TS2", TourID: "T9", SlotName: "Sunset", StartTime: "19:30", EndTime: "21:00"},
			},
		},
	}
}

func TestRestoreTourRoundTrip(t *testing.T) {
	sel := models.Selection{
		Kind: models.KindTour,
		Tour: &models.TourChoice{
			TourID: "T9", Code: "CANAL", Name: "Canal Cruise", City: "Amsterdam",
			Supplier: "Rederij Noord", UnitPrice: 50, NettPrice: 35, PerPax: true,
		},
		Timeslot: &models.TimeSlot{ID: "TS2", SlotName: "Sunset", StartTime: "19:30", EndTime: "21:00"},
		Extras:   []models.ExtraChoice{{Name: "Audio guide", UnitPrice: 10, Quantity: 2, CanAddMore: true}},
		Pax:      4,
		Date:     "2026-05-11",
		Currency: "EUR",
	}
	price := CalculatePrice(sel)
	items, err := ComposeItems(sel, price, "TRIP42", "", nil)
	require.NoError(t, err)

	svc := &DefaultTripService{Catalog: tourCatalog()}
	restored, warnings := svc.restoreSelection(context.Background(), items[0], items[1:])

	assert.Empty(t, warnings)
	require.NotNil(t, restored.Tour)
	assert.Equal(t, "CANAL", restored.Tour.Code)
	require.NotNil(t, restored.Timeslot)
	assert.Equal(t, "TS2", restored.Timeslot.ID)
	assert.Equal(t, 4, restored.Pax)
	require.Len(t, restored.Extras, 1)
	assert.Equal(t, 2, restored.Extras[0].Quantity)
}

func TestMatchTimeslotThreeTiers(t *testing.T) {
	slots := []models.TimeSlot{
		{ID: "TS1", SlotName: "Morning", StartTime: "10:00", EndTime: "11:30"},
		{ID: "TS2", SlotName: "Sunset", StartTime: "19:30", EndTime: "21:00"},
	}

	// Tier 1: slot name.
	slot := matchTimeslot(slots, "Sunset", "", "")
	require.NotNil(t, slot)
	assert.Equal(t, "TS2", slot.ID)

	// Tier 2: normalized start+end.
	slot = matchTimeslot(slots, "Renamed", "9:59", "11:30")
	assert.Nil(t, slot)
	slot = matchTimeslot(slots, "Renamed", "10:00", "11:30")
	require.NotNil(t, slot)
	assert.Equal(t, "TS1", slot.ID)

	// Tier 3: start time only.
	slot = matchTimeslot(slots, "Renamed", "19:30", "23:00")
	require.NotNil(t, slot)
	assert.Equal(t, "TS2", slot.ID)

	// No match at all.
	assert.Nil(t, matchTimeslot(slots, "Renamed", "07:00", "08:00"))
}

func TestRestoreTourFallsBackToSingleSlot(t *testing.T) {
	catalog := tourCatalog()
	catalog.slots["T9"] = catalog.slots["T9"][1:]

	main := models.LineItem{
		ID: "TRIP42_001", UID: "TRIP42", ProductType: models.ProductTypeTour,
		City: "Amsterdam", ProductCode: "CANAL", SupplierProduct: "Canal Cruise",
		Service: "Retired slot", TimeStart: "05:00", TimeEnd: "06:00",
		DateStart: "2026-05-11", Gross: 200,
	}

	svc := &DefaultTripService{Catalog: catalog}
	restored, _ := svc.restoreSelection(context.Background(), main, nil)

	require.NotNil(t, restored.Timeslot)
	assert.Equal(t, "TS2", restored.Timeslot.ID)
}

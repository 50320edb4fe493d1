// File: services/trip/restore.go
package trip

import (
	"context"
	"math"
	"strings"
	"time"

	"reisdesk/models"
	"reisdesk/utils"

	"go.uber.org/zap"
)

// restoreSelection reconstructs a selection from a persisted main item and
// its extras by re-querying the catalog. Restoration is best effort: any
// field that cannot be matched is left empty and reported as a non-fatal
// warning. When a lookup yields exactly one candidate it is auto-selected.
func (s *DefaultTripService) restoreSelection(ctx context.Context, main models.LineItem, extras []models.LineItem) (models.Selection, []string) {
	sel := models.Selection{
		Date:     main.DateStart,
		Time:     main.TimeStart,
		Currency: main.Currency,
	}
	var warnings []string

	switch main.ProductType {
	case models.ProductTypeAccommodation:
		sel.Kind = models.KindAccommodation
		warnings = s.restoreAccommodation(ctx, main, extras, &sel)
	case models.ProductTypeTour:
		sel.Kind = models.KindTour
		warnings = s.restoreTour(ctx, main, extras, &sel)
	default:
		warnings = append(warnings, "item "+main.ID+" has no restorable product type")
	}

	for _, warning := range warnings {
		utils.GetLogger().Warn("restore fell short",
			zap.String("itemId", main.ID), zap.String("detail", warning))
	}
	return sel, warnings
}

func (s *DefaultTripService) restoreAccommodation(ctx context.Context, main models.LineItem, extras []models.LineItem, sel *models.Selection) []string {
	var warnings []string
	sel.Nights = nightsBetween(main.DateStart, main.DateEnd)

	hotels, err := s.Catalog.SearchAccommodations(ctx, main.City, main.SupplierName)
	if err != nil {
		return append(warnings, "accommodation search failed: "+err.Error())
	}
	hotel := matchHotel(hotels, main.SupplierName)
	if hotel == nil {
		return append(warnings, "no accommodation matching '"+main.SupplierName+"' in "+main.City)
	}
	sel.Hotel = &models.HotelChoice{
		Code:     hotel.Code,
		Name:     hotel.Name,
		City:     hotel.City,
		Address:  hotel.Address,
		Supplier: hotel.Supplier,
	}

	roomTypes, err := s.Catalog.GetRoomTypes(ctx, hotel.Code)
	if err != nil {
		return append(warnings, "room types lookup failed: "+err.Error())
	}
	room := matchRoom(roomTypes.Rooms, main.SupplierProduct, main.ProductCode)
	if room == nil {
		return append(warnings, "no room matching '"+main.SupplierProduct+"' at "+hotel.Name)
	}
	sel.Room = &models.RoomChoice{
		ID:        room.ID,
		Code:      room.Code,
		Name:      room.Name,
		UnitPrice: room.UnitPrice,
		NettPrice: room.NettPrice,
	}

	sel.Extras, warnings = matchExtras(roomTypes.Options, extras, sel.Nights, warnings)

	if main.BedConfigurationID != "" {
		configs, err := s.Catalog.GetBedConfigurations(ctx, room.ID)
		if err != nil {
			return append(warnings, "bed configuration lookup failed: "+err.Error())
		}
		for _, cfg := range configs {
			if cfg.ID == main.BedConfigurationID {
				sel.BedConfigurationID = cfg.ID
				break
			}
		}
		if sel.BedConfigurationID == "" {
			warnings = append(warnings, "stored bed configuration "+main.BedConfigurationID+" no longer offered")
		}
	}
	return warnings
}

func (s *DefaultTripService) restoreTour(ctx context.Context, main models.LineItem, extras []models.LineItem, sel *models.Selection) []string {
	var warnings []string

	tours, err := s.Catalog.SearchTours(ctx, main.City, "")
	if err != nil {
		return append(warnings, "tour search failed: "+err.Error())
	}
	tour := matchTour(tours, main.ProductCode, main.SupplierProduct)
	if tour == nil {
		return append(warnings, "no tour matching code '"+main.ProductCode+"' in "+main.City)
	}
	sel.Tour = &models.TourChoice{
		TourID:    tour.TourID,
		Code:      tour.Code,
		Name:      tour.Name,
		City:      tour.City,
		Address:   tour.Address,
		Supplier:  tour.Supplier,
		UnitPrice: tour.UnitPrice,
		NettPrice: tour.NettPrice,
		PerPax:    tour.PerPax,
		PerTour:   tour.PerTour,
	}

	options, err := s.Catalog.GetTourOptions(ctx, tour.Code)
	if err != nil {
		warnings = append(warnings, "tour options lookup failed: "+err.Error())
	} else {
		if options.Currency != "" && sel.Currency == "" {
			sel.Currency = options.Currency
		}
		sel.Extras, warnings = matchExtras(options.Extras, extras, 0, warnings)
	}

	slots, err := s.Catalog.GetTourTimeslots(ctx, tour.TourID)
	if err != nil {
		return append(warnings, "timeslot lookup failed: "+err.Error())
	}
	if len(slots) > 0 {
		slot := matchTimeslot(slots, main.Service, main.TimeStart, main.TimeEnd)
		if slot == nil && len(slots) == 1 {
			slot = &slots[0]
		}
		if slot == nil {
			warnings = append(warnings, "no timeslot matching '"+main.Service+"' ("+main.TimeStart+" - "+main.TimeEnd+")")
		} else {
			sel.Timeslot = slot
		}
	}

	sel.Pax = deriveTourPax(*sel.Tour, sel.Timeslot, main.Gross)
	return warnings
}

// matchHotel picks the hotel whose name or supplier matches the stored
// supplier name, or the sole candidate when only one was found.
func matchHotel(hotels []models.Hotel, supplierName string) *models.Hotel {
	for i, hotel := range hotels {
		if strings.EqualFold(hotel.Name, supplierName) || strings.EqualFold(hotel.Supplier, supplierName) {
			return &hotels[i]
		}
	}
	if len(hotels) == 1 {
		return &hotels[0]
	}
	return nil
}

// matchRoom prefers the product code, then the room name, then the sole
// candidate.
func matchRoom(rooms []models.Room, roomName, productCode string) *models.Room {
	for i, room := range rooms {
		if productCode != "" && room.Code == productCode {
			return &rooms[i]
		}
	}
	for i, room := range rooms {
		if strings.EqualFold(room.Name, roomName) {
			return &rooms[i]
		}
	}
	if len(rooms) == 1 {
		return &rooms[0]
	}
	return nil
}

// matchTour prefers the product code (stored as either tour code or tour
// id), then the tour name, then the sole candidate.
func matchTour(tours []models.Tour, productCode, tourName string) *models.Tour {
	for i, tour := range tours {
		if productCode != "" && (tour.Code == productCode || tour.TourID == productCode) {
			return &tours[i]
		}
	}
	for i, tour := range tours {
		if strings.EqualFold(tour.Name, tourName) {
			return &tours[i]
		}
	}
	if len(tours) == 1 {
		return &tours[0]
	}
	return nil
}

// matchTimeslot applies the three-tier matcher: exact slot name, then
// normalized start+end times, then start time alone.
func matchTimeslot(slots []models.TimeSlot, slotName, startTime, endTime string) *models.TimeSlot {
	for i, slot := range slots {
		if slotName != "" && slot.SlotName == slotName {
			return &slots[i]
		}
	}
	start := normalizeClock(startTime)
	end := normalizeClock(endTime)
	for i, slot := range slots {
		if normalizeClock(slot.StartTime) == start && normalizeClock(slot.EndTime) == end {
			return &slots[i]
		}
	}
	for i, slot := range slots {
		if normalizeClock(slot.StartTime) == start {
			return &slots[i]
		}
	}
	return nil
}

// matchExtras re-selects persisted extras against the extras currently
// offered by the catalog, matching stored descriptions by name prefix. The
// selected quantity of a quantity-style extra is re-derived from its stored
// gross.
func matchExtras(offered []models.ExtraOption, persisted []models.LineItem, nights int, warnings []string) ([]models.ExtraChoice, []string) {
	var choices []models.ExtraChoice
	for _, item := range persisted {
		option := matchExtraOption(offered, item.SupplierProduct)
		if option == nil {
			warnings = append(warnings, "extra '"+item.SupplierProduct+"' is no longer offered")
			continue
		}
		choice := models.ExtraChoice{
			Name:       option.Name,
			UnitPrice:  option.UnitPrice,
			Quantity:   1,
			CanAddMore: option.CanAddMore,
			PerPaxUnit: option.PerPaxUnit,
			PerNight:   option.PerNight,
		}
		if option.CanAddMore && option.UnitPrice > 0 {
			unit := option.UnitPrice
			if option.PerNight && nights > 0 {
				unit *= float64(nights)
			}
			if units := int(math.Round(item.Gross / unit)); units > 0 {
				choice.Quantity = units
			}
		}
		choices = append(choices, choice)
	}
	return choices, warnings
}

func matchExtraOption(offered []models.ExtraOption, stored string) *models.ExtraOption {
	for i, option := range offered {
		if strings.EqualFold(option.Name, stored) {
			return &offered[i]
		}
	}
	for i, option := range offered {
		if strings.HasPrefix(strings.ToLower(stored), strings.ToLower(option.Name)) {
			return &offered[i]
		}
	}
	return nil
}

// deriveTourPax back-derives the traveler count from the stored gross for
// per-pax priced tours. For flat-priced tours the count is not recoverable
// from the record and is left for the form to fill in.
func deriveTourPax(tour models.TourChoice, slot *models.TimeSlot, gross float64) int {
	if !tour.PerPax || tour.PerTour {
		return 0
	}
	perPerson := tour.UnitPrice
	if slot != nil {
		perPerson += slot.PriceModifierPerPerson
	}
	if perPerson <= 0 {
		return 0
	}
	return int(math.Round(gross / perPerson))
}

// nightsBetween counts whole days between two "YYYY-MM-DD" dates.
func nightsBetween(start, end string) int {
	from, err := time.Parse("2006-01-02", start)
	if err != nil {
		return 0
	}
	to, err := time.Parse("2006-01-02", end)
	if err != nil {
		return 0
	}
	nights := int(to.Sub(from).Hours() / 24)
	if nights < 0 {
		return 0
	}
	return nights
}

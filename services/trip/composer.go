package trip

import (
	"fmt"
	"time"

	"reisdesk/models"
)

// ComposeItems turns a selection and its computed price into the ordered set
// of persistable line items: index 0 is the main item, the rest are its
// extras. When existingID is set (update mode) it is reused verbatim and the
// extra suffixes are regenerated; otherwise the next sequence is allocated
// from the trip's existing ids.
func ComposeItems(sel models.Selection, price PriceBreakdown, uid, existingID string, existingIDs []string) ([]models.LineItem, error) {
	var id, sequence string
	if existingID != "" {
		id = existingID
		sequence = SequenceOf(existingID)
	} else {
		mainIDs := make([]string, 0, len(existingIDs))
		for _, existing := range existingIDs {
			if IsMainID(existing) {
				mainIDs = append(mainIDs, existing)
			}
		}
		sequence = NextSequence(mainIDs)
		id = ComposeID(uid, sequence)
	}

	main, err := composeMain(sel, price, uid, id, sequence)
	if err != nil {
		return nil, err
	}

	items := []models.LineItem{main}
	for i, charge := range price.Extras {
		extraID, err := ExtraID(id, i)
		if err != nil {
			return nil, err
		}
		items = append(items, models.LineItem{
			ID:              extraID,
			UID:             uid,
			Sequence:        sequence,
			DateStart:       main.DateStart,
			TimeStart:       main.TimeStart,
			DateEnd:         main.DateEnd,
			TimeEnd:         main.TimeEnd,
			SupplierProduct: charge.Name,
			ProductType:     models.ProductTypeExtra,
			Nett:            charge.Total,
			Gross:           charge.Total,
			Currency:        price.Currency,
			Service:         charge.Name,
		})
	}
	return items, nil
}

func composeMain(sel models.Selection, price PriceBreakdown, uid, id, sequence string) (models.LineItem, error) {
	main := models.LineItem{
		ID:        id,
		UID:       uid,
		Sequence:  sequence,
		DateStart: sel.Date,
		TimeStart: sel.Time,
		DateEnd:   sel.Date,
		Gross:     price.MainTotal,
		Currency:  price.Currency,
	}

	switch sel.Kind {
	case models.KindAccommodation:
		if sel.Hotel == nil || sel.Room == nil {
			return models.LineItem{}, ErrIncompleteSelection
		}
		main.ProductType = models.ProductTypeAccommodation
		main.City = sel.Hotel.City
		main.Address = sel.Hotel.Address
		main.SupplierName = supplierOf(sel.Hotel.Supplier, sel.Hotel.Name)
		main.SupplierProduct = sel.Room.Name
		main.ProductCode = sel.Room.Code
		main.Nett = sel.Room.NettPrice * float64(sel.Nights)
		main.Service = fmt.Sprintf("%dx %s", sel.Nights, sel.Room.Name)
		main.BedConfigurationID = sel.BedConfigurationID
		main.DateEnd = addNights(sel.Date, sel.Nights)
	case models.KindTour:
		if sel.Tour == nil {
			return models.LineItem{}, ErrIncompleteSelection
		}
		main.ProductType = models.ProductTypeTour
		main.City = sel.Tour.City
		main.Address = sel.Tour.Address
		main.SupplierName = supplierOf(sel.Tour.Supplier, sel.Tour.Name)
		main.SupplierProduct = sel.Tour.Name
		main.ProductCode = sel.Tour.Code
		main.Nett = tourNett(*sel.Tour, sel.Pax)
		main.Service = sel.Tour.Name
		if sel.Timeslot != nil {
			// The slot name rides in the service field so editing can
			// restore the exact slot later.
			main.Service = sel.Timeslot.SlotName
			if main.TimeStart == "" {
				main.TimeStart = sel.Timeslot.StartTime
			}
			main.TimeEnd = sel.Timeslot.EndTime
		}
	default:
		return models.LineItem{}, ErrIncompleteSelection
	}
	return main, nil
}

func supplierOf(supplier, name string) string {
	if supplier != "" {
		return supplier
	}
	return name
}

func tourNett(tour models.TourChoice, pax int) float64 {
	if tour.PerPax && !tour.PerTour {
		return tour.NettPrice * float64(pax)
	}
	return tour.NettPrice
}

// addNights shifts a "YYYY-MM-DD" date forward; an unparseable date is
// returned unchanged so composition never fails on user input.
func addNights(date string, nights int) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil || nights <= 0 {
		return date
	}
	return parsed.AddDate(0, 0, nights).Format("2006-01-02")
}

package trip

import (
	"math"

	"reisdesk/models"
)

// ExtraCharge is the computed total for one selected extra, in selection order.
type ExtraCharge struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

// PriceBreakdown is the full price of a selection.
type PriceBreakdown struct {
	MainTotal   float64       `json:"mainTotal"`
	Extras      []ExtraCharge `json:"extras,omitempty"`
	ExtrasTotal float64       `json:"extrasTotal"`
	GrandTotal  float64       `json:"grandTotal"`
	Currency    string        `json:"currency"`
}

// CalculatePrice computes the price breakdown for a selection. It is a pure
// function: missing or invalid numeric inputs count as zero, and it never
// fails.
func CalculatePrice(sel models.Selection) PriceBreakdown {
	pax := sel.Pax
	if pax < 0 {
		pax = 0
	}
	nights := sel.Nights
	if nights < 0 {
		nights = 0
	}

	breakdown := PriceBreakdown{Currency: sel.Currency}

	switch sel.Kind {
	case models.KindAccommodation:
		if sel.Room != nil {
			breakdown.MainTotal = sel.Room.UnitPrice * float64(nights)
		}
	case models.KindTour:
		if sel.Tour != nil {
			base := sel.Tour.UnitPrice
			switch {
			case sel.Tour.PerTour:
				breakdown.MainTotal = base
			case sel.Tour.PerPax:
				breakdown.MainTotal = base * float64(pax)
			default:
				breakdown.MainTotal = base
			}
		}
		if sel.Timeslot != nil {
			breakdown.MainTotal += sel.Timeslot.PriceModifierPerPerson * float64(pax)
		}
		// Extras for tours never scale by nights.
		nights = 1
	}

	for _, extra := range sel.Extras {
		if extra.Quantity <= 0 {
			continue
		}
		charge := ExtraCharge{
			Name:  extra.Name,
			Total: extraTotal(extra, pax, nights),
		}
		breakdown.Extras = append(breakdown.Extras, charge)
		breakdown.ExtrasTotal += charge.Total
	}

	breakdown.GrandTotal = breakdown.MainTotal + breakdown.ExtrasTotal
	return breakdown
}

// extraTotal applies the multiplier rules for a single extra. Quantity-style
// extras already encode the selected units, so they are never re-scaled by
// pax; checkbox extras scale by ceil(pax/perPaxUnit) when perPaxUnit is set.
func extraTotal(extra models.ExtraChoice, pax, nights int) float64 {
	nightFactor := 1
	if extra.PerNight && nights > 0 {
		nightFactor = nights
	}

	if extra.CanAddMore {
		return extra.UnitPrice * float64(extra.Quantity) * float64(nightFactor)
	}

	paxFactor := 1
	if extra.PerPaxUnit > 0 {
		paxFactor = int(math.Ceil(float64(pax) / float64(extra.PerPaxUnit)))
	}
	return extra.UnitPrice * float64(paxFactor) * float64(nightFactor)
}

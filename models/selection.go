package models

// SelectionKind discriminates the two trip-item branches.
const (
	KindAccommodation = "accommodation"
	KindTour          = "tour"
)

// ExtraChoice is a single extra the agent has selected for the current item.
// Quantity carries the number of units for quantity-style extras (CanAddMore);
// for checkbox-style extras it is 1 when checked.
type ExtraChoice struct {
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unitPrice"`
	Quantity   int     `json:"quantity"`
	CanAddMore bool    `json:"canAddMore"`           // quantity-input extra instead of a checkbox
	PerPaxUnit int     `json:"perPaxUnit,omitempty"` // >0: price scales by ceil(pax/perPaxUnit)
	PerNight   bool    `json:"perNight"`             // multiply by nights (accommodation only)
}

// HotelChoice holds the accommodation fields the composer needs from the catalog.
type HotelChoice struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Address  string `json:"address"`
	Supplier string `json:"supplier"`
}

// RoomChoice is the selected room type within a hotel.
type RoomChoice struct {
	ID        string  `json:"id"`
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"` // gross per night
	NettPrice float64 `json:"nettPrice"` // cost per night
}

// TourChoice is the selected tour product.
type TourChoice struct {
	TourID    string  `json:"tourId"`
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Address   string  `json:"address"`
	Supplier  string  `json:"supplier"`
	UnitPrice float64 `json:"unitPrice"`
	NettPrice float64 `json:"nettPrice"`
	PerPax    bool    `json:"perPax"`  // price scales by pax
	PerTour   bool    `json:"perTour"` // flat price for the whole group
}

// Selection is the agent's in-progress trip item. Exactly one of the
// hotel/room or tour branches is populated, matching Kind.
type Selection struct {
	Kind               string        `json:"kind"`
	Hotel              *HotelChoice  `json:"hotel,omitempty"`
	Room               *RoomChoice   `json:"room,omitempty"`
	BedConfigurationID string        `json:"bedConfigurationId,omitempty"`
	Tour               *TourChoice   `json:"tour,omitempty"`
	Timeslot           *TimeSlot     `json:"timeslot,omitempty"`
	Extras             []ExtraChoice `json:"extras,omitempty"`
	Pax                int           `json:"pax"`
	Nights             int           `json:"nights"`
	Date               string        `json:"date"` // "YYYY-MM-DD"
	Time               string        `json:"time"` // "HH:MM"
	Currency           string        `json:"currency"`
}

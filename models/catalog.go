package models

// Hotel is an accommodation catalog entry.
type Hotel struct {
	Code     string `bson:"code" json:"code"`
	Name     string `bson:"name" json:"name"`
	City     string `bson:"city" json:"city"`
	Address  string `bson:"address" json:"address"`
	Supplier string `bson:"supplier" json:"supplier"`
	Stars    int    `bson:"stars,omitempty" json:"stars,omitempty"`
}

// Room is a bookable room type within a hotel.
type Room struct {
	ID        string  `bson:"id" json:"id"`
	HotelCode string  `bson:"hotelCode" json:"hotelCode"`
	Code      string  `bson:"code" json:"code"`
	Name      string  `bson:"name" json:"name"`
	UnitPrice float64 `bson:"unitPrice" json:"unitPrice"` // gross per night
	NettPrice float64 `bson:"nettPrice" json:"nettPrice"`
	Capacity  int     `bson:"capacity,omitempty" json:"capacity,omitempty"`
}

// ExtraOption is a bookable extra as offered by the catalog, for either a
// room or a tour.
type ExtraOption struct {
	Name       string  `bson:"name" json:"name"`
	UnitPrice  float64 `bson:"unitPrice" json:"unitPrice"`
	CanAddMore bool    `bson:"canAddMore" json:"canAddMore"`
	PerPaxUnit int     `bson:"perPaxUnit,omitempty" json:"perPaxUnit,omitempty"`
	PerNight   bool    `bson:"perNight" json:"perNight"`
}

// RoomTypes bundles a hotel's rooms with the extras offered alongside them.
type RoomTypes struct {
	Rooms   []Room        `json:"rooms"`
	Options []ExtraOption `json:"options"`
}

// BedConfiguration is a named combination of bed types attached to a room.
type BedConfiguration struct {
	ID          string `bson:"id" json:"id"`
	RoomID      string `bson:"roomId" json:"roomId"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// Tour is a tour catalog entry.
type Tour struct {
	TourID    string  `bson:"tourId" json:"tourId"`
	Code      string  `bson:"code" json:"code"`
	Name      string  `bson:"name" json:"name"`
	City      string  `bson:"city" json:"city"`
	Address   string  `bson:"address" json:"address"`
	Supplier  string  `bson:"supplier" json:"supplier"`
	UnitPrice float64 `bson:"unitPrice" json:"unitPrice"`
	NettPrice float64 `bson:"nettPrice" json:"nettPrice"`
	PerPax    bool    `bson:"perPax" json:"perPax"`
	PerTour   bool    `bson:"perTour" json:"perTour"`
}

// TourOptions bundles everything the form needs once a tour is selected.
type TourOptions struct {
	Tour       Tour          `json:"tour"`
	Inclusions []string      `json:"inclusions"`
	Exclusions []string      `json:"exclusions"`
	Extras     []ExtraOption `json:"extras"`
	Currency   string        `json:"currency"`
}

// TimeSlot is a tour's bookable time window, fixed or flexible-duration.
// PriceModifierPerPerson is carried as a signed amount; negative values are
// discounts.
type TimeSlot struct {
	ID                     string  `bson:"id" json:"id"`
	TourID                 string  `bson:"tourId" json:"tourId"`
	SlotName               string  `bson:"slotName" json:"slotName"`
	StartTime              string  `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime                string  `bson:"endTime" json:"endTime"`
	IsFlexibleStart        bool    `bson:"isFlexibleStart" json:"isFlexibleStart"`
	IsFlexibleEnd          bool    `bson:"isFlexibleEnd" json:"isFlexibleEnd"`
	MinDurationHours       float64 `bson:"minDurationHours,omitempty" json:"minDurationHours,omitempty"`
	MaxDurationHours       float64 `bson:"maxDurationHours,omitempty" json:"maxDurationHours,omitempty"`
	PriceModifierPerPerson float64 `bson:"priceModifierPerPerson" json:"priceModifierPerPerson"`
}

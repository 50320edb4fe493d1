package models

// Product types stored on persisted line items. The Dutch values are part of
// the persistence contract and must not be translated.
const (
	ProductTypeAccommodation = "accommodatie"
	ProductTypeTour          = "tour"
	ProductTypeExtra         = "extra"
)

// LineItem is a persisted trip line item. A main item's ID is
// "<uid>_<sequence>"; its extras append a single letter a-z.
type LineItem struct {
	ID                 string  `bson:"id" json:"id"` // composite ReisID
	UID                string  `bson:"uid" json:"uid"`
	Sequence           string  `bson:"sequence" json:"sequence"` // 3-digit, zero-padded
	DateStart          string  `bson:"dateStart" json:"dateStart"`
	TimeStart          string  `bson:"timeStart" json:"timeStart"`
	DateEnd            string  `bson:"dateEnd" json:"dateEnd"`
	TimeEnd            string  `bson:"timeEnd" json:"timeEnd"`
	City               string  `bson:"city" json:"city"`
	Address            string  `bson:"address" json:"address"`
	SupplierName       string  `bson:"supplierName" json:"supplierName"`
	SupplierProduct    string  `bson:"supplierProduct" json:"supplierProduct"`
	ProductType        string  `bson:"productType" json:"productType"` // accommodatie, tour or extra
	ProductCode        string  `bson:"productCode" json:"productCode"`
	Nett               float64 `bson:"nett" json:"nett"`
	Gross              float64 `bson:"gross" json:"gross"`
	Currency           string  `bson:"currency" json:"currency"`
	Service            string  `bson:"service" json:"service"`
	BedConfigurationID string  `bson:"bedConfigurationId,omitempty" json:"bedConfigurationId,omitempty"`
}

// TripItemSummary is one sidebar row: a main line item with the gross of its
// extras folded in.
type TripItemSummary struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	City     string  `json:"city"`
	Title    string  `json:"title"`
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
	Sequence string  `json:"sequence"`
}

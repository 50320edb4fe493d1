// File: database/repository/catalog/tours.go
package catalogRepo

import (
	"context"
	"time"

	"reisdesk/models"

	"go.mongodb.org/mongo-driver/bson"
)

// tourDoc is the stored tour document; inclusions/exclusions and currency
// ride along with the catalog entry.
type tourDoc struct {
	models.Tour `bson:",inline"`
	Inclusions  []string `bson:"inclusions,omitempty"`
	Exclusions  []string `bson:"exclusions,omitempty"`
	Currency    string   `bson:"currency,omitempty"`
}

// tourExtraDoc stores a tour extra keyed by the tour it belongs to.
type tourExtraDoc struct {
	TourCode           string `bson:"tourCode"`
	models.ExtraOption `bson:",inline"`
}

func (r *mongoCatalogRepo) SearchTours(ctx context.Context, city, name string) ([]models.Tour, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if city != "" {
		filter["city"] = bson.M{"$regex": city, "$options": "i"}
	}
	if name != "" {
		filter["name"] = bson.M{"$regex": name, "$options": "i"}
	}

	cursor, err := r.tours.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []tourDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	tours := make([]models.Tour, 0, len(docs))
	for _, d := range docs {
		tours = append(tours, d.Tour)
	}
	return tours, nil
}

func (r *mongoCatalogRepo) GetTourOptions(ctx context.Context, tourCode string) (*models.TourOptions, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc tourDoc
	if err := r.tours.FindOne(ctx, bson.M{"code": tourCode}).Decode(&doc); err != nil {
		return nil, err
	}

	extraCursor, err := r.tourExtras.Find(ctx, bson.M{"tourCode": tourCode})
	if err != nil {
		return nil, err
	}
	defer extraCursor.Close(ctx)

	var extraDocs []tourExtraDoc
	if err := extraCursor.All(ctx, &extraDocs); err != nil {
		return nil, err
	}
	extras := make([]models.ExtraOption, 0, len(extraDocs))
	for _, d := range extraDocs {
		extras = append(extras, d.ExtraOption)
	}

	return &models.TourOptions{
		Tour:       doc.Tour,
		Inclusions: doc.Inclusions,
		Exclusions: doc.Exclusions,
		Extras:     extras,
		Currency:   doc.Currency,
	}, nil
}

func (r *mongoCatalogRepo) GetTourTimeslots(ctx context.Context, tourID string) ([]models.TimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.timeslots.Find(ctx, bson.M{"tourId": tourID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var slots []models.TimeSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

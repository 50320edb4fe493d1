// File: database/repository/catalog/accommodations.go
package catalogRepo

import (
	"context"
	"time"

	"reisdesk/models"

	"go.mongodb.org/mongo-driver/bson"
)

// roomExtraDoc stores a room extra keyed by the hotel it belongs to.
type roomExtraDoc struct {
	HotelCode          string `bson:"hotelCode"`
	models.ExtraOption `bson:",inline"`
}

func (r *mongoCatalogRepo) SearchAccommodations(ctx context.Context, city, name string) ([]models.Hotel, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if city != "" {
		filter["city"] = bson.M{"$regex": city, "$options": "i"}
	}
	if name != "" {
		filter["name"] = bson.M{"$regex": name, "$options": "i"}
	}

	cursor, err := r.hotels.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var hotels []models.Hotel
	if err := cursor.All(ctx, &hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *mongoCatalogRepo) GetRoomTypes(ctx context.Context, hotelCode string) (*models.RoomTypes, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.rooms.Find(ctx, bson.M{"hotelCode": hotelCode})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, err
	}

	extraCursor, err := r.roomExtras.Find(ctx, bson.M{"hotelCode": hotelCode})
	if err != nil {
		return nil, err
	}
	defer extraCursor.Close(ctx)

	var extraDocs []roomExtraDoc
	if err := extraCursor.All(ctx, &extraDocs); err != nil {
		return nil, err
	}
	options := make([]models.ExtraOption, 0, len(extraDocs))
	for _, d := range extraDocs {
		options = append(options, d.ExtraOption)
	}

	return &models.RoomTypes{Rooms: rooms, Options: options}, nil
}

func (r *mongoCatalogRepo) GetBedConfigurations(ctx context.Context, roomID string) ([]models.BedConfiguration, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.bedConfigs.Find(ctx, bson.M{"roomId": roomID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var configs []models.BedConfiguration
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, err
	}
	return configs, nil
}

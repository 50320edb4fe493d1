// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"

	"reisdesk/config"
	"reisdesk/database"
	"reisdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository exposes the product catalog the composition engine
// searches against: accommodations with their rooms and bed configurations,
// and tours with their options and timeslots.
type CatalogRepository interface {
	SearchAccommodations(ctx context.Context, city, name string) ([]models.Hotel, error)
	GetRoomTypes(ctx context.Context, hotelCode string) (*models.RoomTypes, error)
	GetBedConfigurations(ctx context.Context, roomID string) ([]models.BedConfiguration, error)
	SearchTours(ctx context.Context, city, name string) ([]models.Tour, error)
	GetTourOptions(ctx context.Context, tourCode string) (*models.TourOptions, error)
	GetTourTimeslots(ctx context.Context, tourID string) ([]models.TimeSlot, error)
}

type mongoCatalogRepo struct {
	hotels     *mongo.Collection
	rooms      *mongo.Collection
	bedConfigs *mongo.Collection
	tours      *mongo.Collection
	tourExtras *mongo.Collection
	timeslots  *mongo.Collection
	roomExtras *mongo.Collection
}

// NewMongoCatalogRepo constructs a new MongoDB CatalogRepository.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoCatalogRepo{
		hotels:     db.Collection("hotels"),
		rooms:      db.Collection("rooms"),
		bedConfigs: db.Collection("bedconfigurations"),
		tours:      db.Collection("tours"),
		tourExtras: db.Collection("tourextras"),
		timeslots:  db.Collection("timeslots"),
		roomExtras: db.Collection("roomextras"),
	}
}

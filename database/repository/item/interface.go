// File: database/repository/item/interface.go
package itemRepo

import (
	"context"

	"reisdesk/config"
	"reisdesk/database"
	"reisdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ItemRepository is the persistence store for trip line items. Upsert is
// keyed by the composite item id; Delete removes a single item.
type ItemRepository interface {
	ListByUID(ctx context.Context, uid string) ([]models.LineItem, error)
	Upsert(ctx context.Context, item models.LineItem) error
	Delete(ctx context.Context, id, uid string) error
}

type mongoItemRepo struct {
	coll *mongo.Collection
}

// NewMongoItemRepo constructs a new MongoDB ItemRepository.
func NewMongoItemRepo() ItemRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoItemRepo{
		coll: db.Collection("tripitems"),
	}
}

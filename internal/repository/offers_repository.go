package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pharmanature-storefront/internal/models"
)

// OffersRepository persists the singleton offers configuration document.
type OffersRepository struct {
	collection *mongo.Collection
}

func NewOffersRepository(db *mongo.Database) *OffersRepository {
	return &OffersRepository{
		collection: db.Collection("offers_config"),
	}
}

// Get fetches the stored configuration document as-is, tolerating documents
// written before newer fields existed. A missing document returns nil with
// no error; resolution against defaults handles both cases.
func (r *OffersRepository) Get(ctx context.Context) (*models.StoredOffersConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var stored models.StoredOffersConfig
	err := r.collection.FindOne(ctx, bson.M{"_id": models.OffersConfigID}).Decode(&stored)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &stored, nil
}

// Save upserts the fully resolved configuration under the fixed id,
// keeping the document a singleton.
func (r *OffersRepository) Save(ctx context.Context, cfg *models.OffersConfig) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cfg.ID = models.OffersConfigID
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": models.OffersConfigID}, cfg, opts)
	return err
}

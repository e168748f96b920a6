package repository

import (
	"context"
	"time"

	"github.com/deppfellow/travel-api/internal/database"
	"github.com/deppfellow/travel-api/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ItineraryRepository struct {
	grouped grouped[model.ItineraryProvince, model.ItineraryEntry]
}

func NewItineraryRepository(db *database.Database) *ItineraryRepository {
	return &ItineraryRepository{
		grouped: grouped[model.ItineraryProvince, model.ItineraryEntry]{
			coll:       db.Collection(database.CollectionItineraries),
			slugField:  "provinceSlug",
			arrayField: "itineraryDetail",
			idField:    "_id",
		},
	}
}

// CountEntries counts itinerary entries across every province.
func (r *ItineraryRepository) CountEntries(ctx context.Context) (int64, error) {
	return r.grouped.countChildren(ctx)
}

func (r *ItineraryRepository) FindBySlug(ctx context.Context, slug string) (*model.ItineraryProvince, error) {
	return r.grouped.findBySlug(ctx, slug)
}

func (r *ItineraryRepository) Create(ctx context.Context, province *model.ItineraryProvince) error {
	id, err := r.grouped.create(ctx, province)
	if err != nil {
		return err
	}
	province.ID = id
	return nil
}

func (r *ItineraryRepository) PushEntry(ctx context.Context, slug string, entry model.ItineraryEntry, now time.Time) error {
	return r.grouped.push(ctx, slug, entry, now)
}

func (r *ItineraryRepository) ReplaceEntry(ctx context.Context, slug string, entry model.ItineraryEntry, now time.Time) error {
	return r.grouped.replace(ctx, slug, entry.ID, entry, now)
}

func (r *ItineraryRepository) PullEntry(ctx context.Context, slug string, id primitive.ObjectID, now time.Time) (*model.ItineraryProvince, error) {
	return r.grouped.pull(ctx, bson.D{{Key: "provinceSlug", Value: slug}}, id, now)
}

package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IndexSpec describes the indexes one collection needs.
type IndexSpec struct {
	Collection string
	Models     []mongo.IndexModel
}

// Indexes is the full index set. Unique slugs back the "one root per slug" rule of
// the grouped collections; 2dsphere indexes back the map viewport queries.
func Indexes() []IndexSpec {
	return []IndexSpec{
		{CollectionUsers, []mongo.IndexModel{
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("unique_users_email")},
		}},
		{CollectionHotels, []mongo.IndexModel{
			{Keys: bson.D{{Key: "hotelSlug", Value: 1}}, Options: options.Index().SetUnique(true).SetName("unique_hotels_hotelSlug")},
			{Keys: bson.D{{Key: "hotelItem.id", Value: 1}}, Options: options.Index().SetName("hotels_hotelItem_id")},
			{Keys: bson.D{{Key: "hotelItem.location", Value: "2dsphere"}}, Options: options.Index().SetName("hotels_hotelItem_location")},
		}},
		{CollectionCuisines, []mongo.IndexModel{
			{Keys: bson.D{{Key: "provinceSlug", Value: 1}}, Options: options.Index().SetUnique(true).SetName("unique_cuisines_provinceSlug")},
			{Keys: bson.D{{Key: "regional", Value: 1}}, Options: options.Index().SetName("cuisines_regional")},
		}},
		{CollectionItineraries, []mongo.IndexModel{
			{Keys: bson.D{{Key: "provinceSlug", Value: 1}}, Options: options.Index().SetUnique(true).SetName("unique_itineraries_provinceSlug")},
		}},
		{CollectionDestinations, []mongo.IndexModel{
			{Keys: bson.D{{Key: "location", Value: "2dsphere"}}, Options: options.Index().SetName("destinations_location")},
		}},
		{CollectionRestaurants, []mongo.IndexModel{
			{Keys: bson.D{{Key: "location", Value: "2dsphere"}}, Options: options.Index().SetName("restaurants_location")},
		}},
		{CollectionNews, []mongo.IndexModel{
			{Keys: bson.D{{Key: "categoryNews", Value: 1}}, Options: options.Index().SetName("news_categoryNews")},
		}},
		{CollectionReviews, []mongo.IndexModel{
			{Keys: bson.D{{Key: "nameplateSlug", Value: 1}}, Options: options.Index().SetName("reviews_nameplateSlug")},
		}},
		{CollectionChats, []mongo.IndexModel{
			{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true).SetName("unique_chats_userId")},
		}},
	}
}

// EnsureIndexes creates every index in Indexes. Existing indexes with the same
// definition are left untouched by the server, so this is safe on every startup.
func EnsureIndexes(ctx context.Context, logger *zerolog.Logger, db *Database) error {
	created := 0
	for _, spec := range Indexes() {
		names, err := db.Collection(spec.Collection).Indexes().CreateMany(ctx, spec.Models)
		if err != nil {
			return fmt.Errorf("creating indexes on %s: %w", spec.Collection, err)
		}
		created += len(names)
	}

	logger.Info().Int("indexes", created).Msg("database indexes up to date")
	return nil
}

// Package database contains the logic for establishing
// the connection to MongoDB.
//
// It handles:
//   - building client options from config (pool size, timeouts)
//   - wiring the command monitor that logs slow and failed commands
//   - pinging the primary on startup so the process fails fast
//   - bootstrapping the indexes the repositories rely on
package database

import (
	"context"
	"fmt"
	"sync"

	"github.com/deppfellow/travel-api/internal/config"
	loggerConfig "github.com/deppfellow/travel-api/internal/logger"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	CollectionHotels       = "hotels"
	CollectionCuisines     = "cuisines"
	CollectionItineraries  = "itineraries"
	CollectionDestinations = "destinations"
	CollectionRestaurants  = "restaurants"
	CollectionNews         = "news"
	CollectionReviews      = "reviews"
	CollectionUsers        = "users"
	CollectionChats        = "chats"
)

// Database wraps the mongo client and the application database handle.
type Database struct {
	Client *mongo.Client
	DB     *mongo.Database
	log    *zerolog.Logger

	mu     sync.Mutex
	closed bool
}

// New connects to MongoDB with instrumentation and verifies connectivity.
//
// loggerService may be nil; slow commands are then only logged, not reported.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	clientOptions := options.Client().
		ApplyURI(cfg.Database.URI).
		SetConnectTimeout(cfg.Database.ConnectTimeout)

	if cfg.Database.MaxPoolSize > 0 {
		clientOptions.SetMaxPoolSize(cfg.Database.MaxPoolSize)
	}

	slowThreshold := cfg.Observability.Logging.SlowQueryThreshold
	clientOptions.SetMonitor(loggerConfig.NewMongoMonitor(*logger, loggerService, slowThreshold, cfg.IsLocal()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Str("database", cfg.Database.Name).Msg("connected to the database")

	return &Database{
		Client: client,
		DB:     client.Database(cfg.Database.Name),
		log:    logger,
	}, nil
}

// Collection returns a handle to the named collection.
func (db *Database) Collection(name string) *mongo.Collection {
	return db.DB.Collection(name)
}

// Ping checks the primary is reachable.
func (db *Database) Ping(ctx context.Context) error {
	db.mu.Lock()
	closed := db.closed
	db.mu.Unlock()
	if closed {
		return fmt.Errorf("database connection is closed")
	}
	return db.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client. Calling it twice is a no-op.
func (db *Database) Close(ctx context.Context) error {
	db.mu.Lock()
	if db.closed {
		db.mu.Unlock()
		return nil
	}
	db.closed = true
	db.mu.Unlock()

	db.log.Info().Msg("closing database connection")
	return db.Client.Disconnect(ctx)
}

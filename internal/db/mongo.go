package db

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/vasiliy-maslov/shop-backend/internal/config"
)

// Имена коллекций, которые сервис ожидает увидеть в базе.
const (
	UsersCollection      = "users"
	ProductsCollection   = "products"
	CategoriesCollection = "categories"
	OrdersCollection     = "orders"
	StatusesCollection   = "statuses"
)

type Mongo struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// New connects to MongoDB using the connection string from the config and
// pings the primary before returning.
func New(ctx context.Context, cfg config.MongoConfig) (*Mongo, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.ConnString))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	log.Info().Str("database", cfg.Database).Msg("Connected to MongoDB")

	return &Mongo{
		Client:   client,
		Database: client.Database(cfg.Database),
	}, nil
}

// EnsureCollections creates the named collections if they do not exist yet.
// Mongo создаёт коллекции лениво, но нам нужны они до первого запроса,
// чтобы сидирование справочников отработало на чистой базе.
func (m *Mongo) EnsureCollections(ctx context.Context, names ...string) error {
	existing, err := m.Database.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	present := make(map[string]bool, len(existing))
	for _, name := range existing {
		present[name] = true
	}

	for _, name := range names {
		if present[name] {
			continue
		}
		if err := m.Database.CreateCollection(ctx, name); err != nil {
			return fmt.Errorf("failed to create collection %q: %w", name, err)
		}
		log.Info().Str("collection", name).Msg("Created collection")
	}

	return nil
}

func (m *Mongo) Close(ctx context.Context) {
	if m.Client != nil {
		if err := m.Client.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to disconnect from MongoDB")
			return
		}
		log.Info().Msg("MongoDB connection closed")
	}
}

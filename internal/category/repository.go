package category

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Репозиторий справочника категорий.
type Repository interface {
	List(ctx context.Context) ([]Category, error)
	Exists(ctx context.Context, name string) (bool, error)
	Seed(ctx context.Context) error
}

type repository struct {
	collection *mongo.Collection
}

func NewRepository(collection *mongo.Collection) Repository {
	return &repository{collection: collection}
}

func (r *repository) List(ctx context.Context) ([]Category, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find categories: %w", err)
	}

	var categories []Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}

func (r *repository) Exists(ctx context.Context, name string) (bool, error) {
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("failed to find category by name: %w", err)
	}
	return true, nil
}

// Seed inserts the default categories that are not present yet. Ids follow
// the seed order, as the original dataset was laid out.
func (r *repository) Seed(ctx context.Context) error {
	for i, name := range DefaultCategories {
		exists, err := r.Exists(ctx, name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		c := Category{ID: strconv.Itoa(i), Name: name}
		if _, err := r.collection.InsertOne(ctx, c); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", name, err)
		}
		log.Info().Str("category", name).Msg("Seeded category")
	}
	return nil
}

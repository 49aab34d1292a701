package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Status — статус заказа. Числовое значение и есть уровень: переходы
// разрешены только в сторону неубывания уровня.
type Status int

const (
	StatusUnapproved Status = 1
	StatusApproved   Status = 2
	StatusCancelled  Status = 3
	StatusDelivered  Status = 4
)

func (s Status) String() string {
	switch s {
	case StatusUnapproved:
		return "Unapproved"
	case StatusApproved:
		return "Approved"
	case StatusCancelled:
		return "Cancelled"
	case StatusDelivered:
		return "Delivered"
	default:
		return ""
	}
}

// Level возвращает порядковый номер статуса для сравнения переходов.
func (s Status) Level() int {
	return int(s)
}

// StatusFromName resolves a status by its persisted name.
func StatusFromName(name string) (Status, bool) {
	switch name {
	case "Unapproved":
		return StatusUnapproved, true
	case "Approved":
		return StatusApproved, true
	case "Cancelled":
		return StatusCancelled, true
	case "Delivered":
		return StatusDelivered, true
	default:
		return 0, false
	}
}

// AllStatuses returns the statuses in level order.
func AllStatuses() []Status {
	return []Status{StatusUnapproved, StatusApproved, StatusCancelled, StatusDelivered}
}

// StatusRecord — справочная запись статуса в коллекции statuses.
type StatusRecord struct {
	ID   int    `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`
}

// Репозиторий справочника статусов.
type StatusRepository interface {
	List(ctx context.Context) ([]StatusRecord, error)
	Seed(ctx context.Context) error
}

type statusRepository struct {
	collection *mongo.Collection
}

func NewStatusRepository(collection *mongo.Collection) StatusRepository {
	return &statusRepository{collection: collection}
}

func (r *statusRepository) List(ctx context.Context) ([]StatusRecord, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find statuses: %w", err)
	}

	var statuses []StatusRecord
	if err := cursor.All(ctx, &statuses); err != nil {
		return nil, fmt.Errorf("failed to decode statuses: %w", err)
	}
	return statuses, nil
}

// Seed inserts the missing status reference records.
func (r *statusRepository) Seed(ctx context.Context) error {
	for _, s := range AllStatuses() {
		err := r.collection.FindOne(ctx, bson.M{"name": s.String()}).Err()
		if err == nil {
			continue
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("failed to find status by name: %w", err)
		}

		record := StatusRecord{ID: s.Level(), Name: s.String()}
		if _, err := r.collection.InsertOne(ctx, record); err != nil {
			return fmt.Errorf("failed to seed status %q: %w", s, err)
		}
		log.Info().Stringer("status", s).Msg("Seeded status")
	}
	return nil
}

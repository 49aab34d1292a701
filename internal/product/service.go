package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/shop-backend/internal/category"
)

var ErrCategoryNotFound = errors.New("category does not exist")

// UpdateInput — полный набор полей товара: частичных обновлений нет,
// запрос всегда несёт все пять полей.
type UpdateInput struct {
	Name        string
	Description string
	Price       float64
	Weight      float64
	Category    string
}

type Service interface {
	Create(ctx context.Context, p *Product) (*Product, error)
	Update(ctx context.Context, id string, input UpdateInput) (string, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context) ([]Product, error)
}

type service struct {
	repo         Repository
	categoryRepo category.Repository
}

func NewService(repo Repository, categoryRepo category.Repository) Service {
	return &service{repo: repo, categoryRepo: categoryRepo}
}

// Create persists a new product. An unknown category is NOT an error here:
// the method returns (nil, nil) and nothing is persisted. Историческая
// асимметрия с Update, которую клиенты уже ожидают — не менять.
func (s *service) Create(ctx context.Context, p *Product) (*Product, error) {
	exists, err := s.categoryRepo.Exists(ctx, p.Category)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to check category existence")
		return nil, fmt.Errorf("service: failed to check category: %w", err)
	}
	if !exists {
		log.Warn().Str("category", p.Category).Msg("service: product creation with unknown category")
		return nil, nil
	}

	if p.ID == "" {
		p.ID = uuid.Must(uuid.NewV4()).String()
	}

	if err := s.repo.Create(ctx, p); err != nil {
		log.Error().Err(err).Msg("service: failed to create product in repository")
		return nil, fmt.Errorf("service: failed to create product: %w", err)
	}

	return p, nil
}

// Update, в отличие от Create, на неизвестную категорию отвечает ошибкой.
func (s *service) Update(ctx context.Context, id string, input UpdateInput) (string, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrNotFound
		}
		log.Error().Err(err).Str("product_id", id).Msg("service: failed to fetch product for update")
		return "", fmt.Errorf("service: failed to fetch product: %w", err)
	}

	exists, err := s.categoryRepo.Exists(ctx, input.Category)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to check category existence")
		return "", fmt.Errorf("service: failed to check category: %w", err)
	}
	if !exists {
		return "", ErrCategoryNotFound
	}

	fields := map[string]any{
		"name":        input.Name,
		"description": input.Description,
		"price":       input.Price,
		"weight":      input.Weight,
		"category":    input.Category,
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrNotFound
		}
		log.Error().Err(err).Str("product_id", id).Msg("service: failed to update product in repository")
		return "", fmt.Errorf("service: failed to update product: %w", err)
	}

	return id, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Error().Err(err).Str("product_id", id).Msg("service: failed to fetch product by id")
		return nil, fmt.Errorf("service: failed to fetch product by id: %w", err)
	}
	return p, nil
}

func (s *service) List(ctx context.Context) ([]Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to fetch products")
		return nil, fmt.Errorf("service: failed to fetch products: %w", err)
	}
	return products, nil
}

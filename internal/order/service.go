package order

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/shop-backend/internal/product"
)

var (
	// ErrOrderedProductsImmutable: состав заказа после создания не меняется.
	ErrOrderedProductsImmutable = errors.New("cannot update ordered products")
	// ErrOrderCancelled: отменённый заказ — терминальное состояние,
	// никакие поля больше не обновляются.
	ErrOrderCancelled = errors.New("order is cancelled")
	// ErrIncorrectStatus: неизвестный статус либо попытка перехода назад.
	ErrIncorrectStatus = errors.New("incorrect status for the order")
	// ErrStatusNotFound: запрошен список заказов по несуществующему статусу.
	ErrStatusNotFound = errors.New("status not found")

	ErrProductMissing      = errors.New("product does not exist in the database")
	ErrQuantityNotInteger  = errors.New("product quantity must be an integer")
	ErrQuantityLessThanOne = errors.New("product quantity must be greater than 0")
)

// CreateInput — данные нового заказа. Статус клиент не передаёт:
// заказ всегда создаётся как Unapproved.
type CreateInput struct {
	Email           string
	PhoneNumber     string
	OrderedProducts map[string]int
}

type Service interface {
	CreateOrder(ctx context.Context, input CreateInput) (*Order, error)
	UpdateOrder(ctx context.Context, id string, fields map[string]any) (string, error)
	GetOrders(ctx context.Context) ([]Order, error)
	GetOrdersByStatus(ctx context.Context, statusName string) ([]Order, error)
	GetStatuses(ctx context.Context) ([]StatusRecord, error)
}

type service struct {
	repo        Repository
	statusRepo  StatusRepository
	productRepo product.Repository

	now func() time.Time
}

func NewService(repo Repository, statusRepo StatusRepository, productRepo product.Repository) Service {
	return &service{
		repo:        repo,
		statusRepo:  statusRepo,
		productRepo: productRepo,
		now:         time.Now,
	}
}

// CreateOrder validates the referenced products and persists the order with
// status Unapproved and approval_date set to the creation date.
//
// Проверка количества намеренно итерирует КЛЮЧИ ordered_products, как это
// делала исходная система: ключ обязан быть целым числом >= 1. С UUID-ключами
// проверка всегда проваливается — известный дефект, воспроизводим до решения
// владельца продукта (см. DESIGN.md).
func (s *service) CreateOrder(ctx context.Context, input CreateInput) (*Order, error) {
	for productID := range input.OrderedProducts {
		_, err := s.productRepo.GetByID(ctx, productID)
		if err != nil {
			if errors.Is(err, product.ErrNotFound) {
				return nil, fmt.Errorf("product %s: %w", productID, ErrProductMissing)
			}
			log.Error().Err(err).Str("product_id", productID).Msg("service: failed to check product existence")
			return nil, fmt.Errorf("service: failed to check product %s: %w", productID, err)
		}
	}

	for productID := range input.OrderedProducts {
		quantity, err := strconv.Atoi(productID)
		if err != nil {
			return nil, ErrQuantityNotInteger
		}
		if quantity < 1 {
			return nil, ErrQuantityLessThanOne
		}
	}

	o := &Order{
		ID:              uuid.Must(uuid.NewV4()).String(),
		Status:          StatusUnapproved.String(),
		Email:           input.Email,
		PhoneNumber:     input.PhoneNumber,
		OrderedProducts: input.OrderedProducts,
		ApprovalDate:    s.now().Format(ApprovalDateLayout),
	}

	if err := s.repo.Create(ctx, o); err != nil {
		log.Error().Err(err).Msg("service: failed to create order in repository")
		return nil, fmt.Errorf("service: failed to create order: %w", err)
	}

	log.Info().Str("order_id", o.ID).Msg("service: order created")

	return o, nil
}

// UpdateOrder merges the requested fields over the stored order document.
// Порядок проверок фиксирован и наблюдаем клиентами: неизменяемость состава,
// существование заказа, терминальность Cancelled и только потом валидация
// целевого статуса. Правило "только вперёд" сравнивает сырые уровни, поэтому
// переход Approved -> Delivered мимо Cancelled разрешён; терминальность
// Cancelled обеспечивает отдельная проверка, а не сравнение уровней.
func (s *service) UpdateOrder(ctx context.Context, id string, fields map[string]any) (string, error) {
	if _, ok := fields["ordered_products"]; ok {
		return "", ErrOrderedProductsImmutable
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn().Str("order_id", id).Msg("service: order not found, cannot update")
			return "", ErrNotFound
		}
		log.Error().Err(err).Str("order_id", id).Msg("service: failed to get order for update")
		return "", fmt.Errorf("service: failed to get order for update: %w", err)
	}

	if current.Status == StatusCancelled.String() {
		return "", ErrOrderCancelled
	}

	if raw, ok := fields["status"]; ok {
		name, ok := raw.(string)
		if !ok {
			return "", ErrIncorrectStatus
		}

		target, ok := StatusFromName(name)
		if !ok {
			return "", ErrIncorrectStatus
		}

		currStatus, ok := StatusFromName(current.Status)
		if !ok {
			log.Error().Str("order_id", id).Str("status", current.Status).Msg("service: order has unknown stored status")
			return "", fmt.Errorf("service: order %s has unknown status %q", id, current.Status)
		}

		if target.Level() < currStatus.Level() {
			log.Warn().
				Str("order_id", id).
				Stringer("current_status", currStatus).
				Stringer("new_status", target).
				Msg("service: backward status transition attempt")
			return "", ErrIncorrectStatus
		}
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrNotFound
		}
		log.Error().Err(err).Str("order_id", id).Msg("service: failed to update order in repository")
		return "", fmt.Errorf("service: failed to update order: %w", err)
	}

	log.Info().Str("order_id", id).Msg("service: order updated")

	return id, nil
}

func (s *service) GetOrders(ctx context.Context) ([]Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to fetch orders")
		return nil, fmt.Errorf("service: failed to fetch orders: %w", err)
	}
	return orders, nil
}

func (s *service) GetOrdersByStatus(ctx context.Context, statusName string) ([]Order, error) {
	if _, ok := StatusFromName(statusName); !ok {
		return nil, ErrStatusNotFound
	}

	orders, err := s.repo.ListByStatus(ctx, statusName)
	if err != nil {
		log.Error().Err(err).Str("status", statusName).Msg("service: failed to fetch orders by status")
		return nil, fmt.Errorf("service: failed to fetch orders by status: %w", err)
	}
	return orders, nil
}

func (s *service) GetStatuses(ctx context.Context) ([]StatusRecord, error) {
	statuses, err := s.statusRepo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to fetch statuses")
		return nil, fmt.Errorf("service: failed to fetch statuses: %w", err)
	}
	return statuses, nil
}

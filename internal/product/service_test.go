package product_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vasiliy-maslov/shop-backend/internal/category"
	"github.com/vasiliy-maslov/shop-backend/internal/product"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context) ([]product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]category.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]category.Category), args.Error(1)
}

func (m *MockCategoryRepository) Exists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) Seed(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestProductService_Create_Success(t *testing.T) {
	repo := new(MockProductRepository)
	categories := new(MockCategoryRepository)
	svc := product.NewService(repo, categories)

	categories.On("Exists", mock.Anything, "books").
		Return(true, nil).
		Once()
	repo.On("Create", mock.Anything, mock.AnythingOfType("*product.Product")).
		Return(nil).
		Once()

	created, err := svc.Create(context.Background(), &product.Product{
		Name:        "Book",
		Description: "A paperback",
		Price:       9.99,
		Weight:      0.3,
		Category:    "books",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	require.NotEmpty(t, created.ID, "service must assign an id")

	repo.AssertExpectations(t)
	categories.AssertExpectations(t)
}

func TestProductService_Create_UnknownCategoryIsSilent(t *testing.T) {
	repo := new(MockProductRepository)
	categories := new(MockCategoryRepository)
	svc := product.NewService(repo, categories)

	categories.On("Exists", mock.Anything, "toys").
		Return(false, nil).
		Once()

	// Неизвестная категория: ни товара, ни ошибки — исторический контракт.
	created, err := svc.Create(context.Background(), &product.Product{
		Name:        "Teddy bear",
		Description: "A plush toy",
		Price:       19.99,
		Weight:      0.5,
		Category:    "toys",
	})

	require.NoError(t, err)
	require.Nil(t, created)

	repo.AssertNotCalled(t, "Create")
	categories.AssertExpectations(t)
}

func TestProductService_Update_Success(t *testing.T) {
	repo := new(MockProductRepository)
	categories := new(MockCategoryRepository)
	svc := product.NewService(repo, categories)

	existing := &product.Product{
		ID:          "p-1",
		Name:        "Book",
		Description: "A paperback",
		Price:       9.99,
		Weight:      0.3,
		Category:    "books",
	}

	repo.On("GetByID", mock.Anything, "p-1").
		Return(existing, nil).
		Once()
	categories.On("Exists", mock.Anything, "electronics").
		Return(true, nil).
		Once()

	expectedFields := map[string]any{
		"name":        "E-reader",
		"description": "Reads books",
		"price":       99.99,
		"weight":      0.2,
		"category":    "electronics",
	}

	repo.On("UpdateFields", mock.Anything, "p-1", mock.MatchedBy(func(fields map[string]any) bool {
		return cmp.Equal(expectedFields, fields)
	})).Return(nil).Once()

	id, err := svc.Update(context.Background(), "p-1", product.UpdateInput{
		Name:        "E-reader",
		Description: "Reads books",
		Price:       99.99,
		Weight:      0.2,
		Category:    "electronics",
	})

	require.NoError(t, err)
	require.Equal(t, "p-1", id)

	repo.AssertExpectations(t)
	categories.AssertExpectations(t)
}

func TestProductService_Update_NotFound(t *testing.T) {
	repo := new(MockProductRepository)
	categories := new(MockCategoryRepository)
	svc := product.NewService(repo, categories)

	repo.On("GetByID", mock.Anything, "missing").
		Return(nil, product.ErrNotFound).
		Once()

	_, err := svc.Update(context.Background(), "missing", product.UpdateInput{Category: "books"})

	require.ErrorIs(t, err, product.ErrNotFound)
	repo.AssertNotCalled(t, "UpdateFields")
	repo.AssertExpectations(t)
}

func TestProductService_Update_UnknownCategoryFails(t *testing.T) {
	repo := new(MockProductRepository)
	categories := new(MockCategoryRepository)
	svc := product.NewService(repo, categories)

	repo.On("GetByID", mock.Anything, "p-1").
		Return(&product.Product{ID: "p-1", Category: "books"}, nil).
		Once()
	categories.On("Exists", mock.Anything, "toys").
		Return(false, nil).
		Once()

	// В отличие от Create, Update на неизвестную категорию отвечает ошибкой.
	_, err := svc.Update(context.Background(), "p-1", product.UpdateInput{Category: "toys"})

	require.ErrorIs(t, err, product.ErrCategoryNotFound)
	repo.AssertNotCalled(t, "UpdateFields")
	repo.AssertExpectations(t)
	categories.AssertExpectations(t)
}

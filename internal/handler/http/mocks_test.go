package http_test

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/vasiliy-maslov/shop-backend/internal/auth"
	"github.com/vasiliy-maslov/shop-backend/internal/category"
	httpHandler "github.com/vasiliy-maslov/shop-backend/internal/handler/http"
	"github.com/vasiliy-maslov/shop-backend/internal/order"
	"github.com/vasiliy-maslov/shop-backend/internal/product"
	"github.com/vasiliy-maslov/shop-backend/internal/user"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, input auth.SignupInput) (*user.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*auth.Tokens, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Tokens), args.Error(1)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, token string) (*user.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Create(ctx context.Context, p *product.Product) (*product.Product, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, id string, input product.UpdateInput) (string, error) {
	args := m.Called(ctx, id, input)
	return args.String(0), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id string) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) List(ctx context.Context) ([]product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, input order.CreateInput) (*order.Order, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) UpdateOrder(ctx context.Context, id string, fields map[string]any) (string, error) {
	args := m.Called(ctx, id, fields)
	return args.String(0), args.Error(1)
}

func (m *MockOrderService) GetOrders(ctx context.Context) ([]order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderService) GetOrdersByStatus(ctx context.Context, statusName string) ([]order.Order, error) {
	args := m.Called(ctx, statusName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderService) GetStatuses(ctx context.Context) ([]order.StatusRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.StatusRecord), args.Error(1)
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

type testMocks struct {
	authSvc      *MockAuthService
	productSvc   *MockProductService
	orderSvc     *MockOrderService
	categoryRepo *MockCategoryRepository
}

// newTestRouter собирает настоящий роутер поверх моков, чтобы тесты гоняли
// запросы через полный стек вместе с auth-middleware.
func newTestRouter() (*chi.Mux, *testMocks) {
	mocks := &testMocks{
		authSvc:      new(MockAuthService),
		productSvc:   new(MockProductService),
		orderSvc:     new(MockOrderService),
		categoryRepo: new(MockCategoryRepository),
	}

	router := httpHandler.NewRouter(
		httpHandler.NewAuthHandler(mocks.authSvc),
		httpHandler.NewProductHandler(mocks.productSvc, mocks.categoryRepo),
		httpHandler.NewOrderHandler(mocks.orderSvc),
		mocks.authSvc,
	)

	return router, mocks
}

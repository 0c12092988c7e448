package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/suprimaaldino/pempek-domino/internal/domain/entities"
	"github.com/suprimaaldino/pempek-domino/internal/infrastructure/logger"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Insert(ctx context.Context, order *entities.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindAllNewestFirst(ctx context.Context) ([]entities.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Order), args.Error(1)
}

type MockOrderNotifier struct {
	mock.Mock
}

func (m *MockOrderNotifier) NotifyOrderCreated(ctx context.Context, order *entities.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

type MockOrderEventPublisher struct {
	mock.Mock
}

func (m *MockOrderEventPublisher) PublishOrderCreated(ctx context.Context, order *entities.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderEventPublisher) Close() {
	m.Called()
}

func validOrder() *entities.Order {
	return &entities.Order{
		CustomerName:    "Budi",
		CustomerPhone:   "081234567890",
		CustomerAddress: "Jl. Merdeka 1, Palembang",
		Items: []entities.OrderItem{
			{ID: "p1", Name: "Pempek Kapal Selam", Price: 15000, Quantity: 2, Subtotal: 30000},
		},
		TotalAmount: 30000,
	}
}

func TestOrderUseCase_CreateOrder(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockNotifier := new(MockOrderNotifier)

	useCase := NewOrderUseCase(mockRepo, mockNotifier, nil, logger.NewLogger())
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)

	mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("*entities.Order")).
		Return(nil).
		Run(func(args mock.Arguments) {
			order := args.Get(1).(*entities.Order)
			assert.Equal(t, "pending", order.Status)
			assert.NotEmpty(t, order.ID)
			assert.NotEmpty(t, order.CreatedAt)
		})

	mockNotifier.On("NotifyOrderCreated", mock.Anything, mock.AnythingOfType("*entities.Order")).
		Return(nil).
		Run(func(args mock.Arguments) {
			wg.Done()
		})

	order, err := useCase.CreateOrder(ctx, validOrder())

	assert.NoError(t, err)
	assert.NotNil(t, order)
	assert.Equal(t, "pending", order.Status)
	assert.Equal(t, 30000, order.TotalAmount)
	assert.NotEmpty(t, order.ID)

	wg.Wait()

	mockRepo.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestOrderUseCase_CreateOrder_NotifierErrorNotFatal(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockNotifier := new(MockOrderNotifier)

	useCase := NewOrderUseCase(mockRepo, mockNotifier, nil, logger.NewLogger())
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)

	mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("*entities.Order")).
		Return(nil)

	mockNotifier.On("NotifyOrderCreated", mock.Anything, mock.AnythingOfType("*entities.Order")).
		Return(errors.New("telegram unreachable")).
		Run(func(args mock.Arguments) {
			wg.Done()
		})

	order, err := useCase.CreateOrder(ctx, validOrder())

	assert.NoError(t, err)
	assert.NotNil(t, order)

	wg.Wait()

	mockRepo.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestOrderUseCase_CreateOrder_PublisherErrorNotFatal(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockPublisher := new(MockOrderEventPublisher)

	useCase := NewOrderUseCase(mockRepo, nil, mockPublisher, logger.NewLogger())
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)

	mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("*entities.Order")).
		Return(nil)

	mockPublisher.On("PublishOrderCreated", mock.Anything, mock.AnythingOfType("*entities.Order")).
		Return(errors.New("nats connection failed")).
		Run(func(args mock.Arguments) {
			wg.Done()
		})

	order, err := useCase.CreateOrder(ctx, validOrder())

	assert.NoError(t, err)
	assert.NotNil(t, order)

	wg.Wait()

	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestOrderUseCase_CreateOrder_WithoutNotifier(t *testing.T) {
	mockRepo := new(MockOrderRepository)

	useCase := NewOrderUseCase(mockRepo, nil, nil, logger.NewLogger())
	ctx := context.Background()

	mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("*entities.Order")).
		Return(nil)

	order, err := useCase.CreateOrder(ctx, validOrder())

	assert.NoError(t, err)
	assert.NotNil(t, order)

	mockRepo.AssertExpectations(t)
}

func TestOrderUseCase_CreateOrder_StoreFailure(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockNotifier := new(MockOrderNotifier)

	useCase := NewOrderUseCase(mockRepo, mockNotifier, nil, logger.NewLogger())
	ctx := context.Background()

	mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("*entities.Order")).
		Return(errors.New("mongo unavailable"))

	order, err := useCase.CreateOrder(ctx, validOrder())

	assert.Error(t, err)
	assert.Nil(t, order)

	mockRepo.AssertExpectations(t)
	mockNotifier.AssertNotCalled(t, "NotifyOrderCreated", mock.Anything, mock.Anything)
}

func TestOrderUseCase_CreateOrder_InvalidInput(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockNotifier := new(MockOrderNotifier)

	useCase := NewOrderUseCase(mockRepo, mockNotifier, nil, logger.NewLogger())
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(order *entities.Order)
		wantErr string
	}{
		{
			name:    "missing customer name",
			mutate:  func(o *entities.Order) { o.CustomerName = "" },
			wantErr: "customer name, phone and address are required",
		},
		{
			name:    "missing customer phone",
			mutate:  func(o *entities.Order) { o.CustomerPhone = "" },
			wantErr: "customer name, phone and address are required",
		},
		{
			name:    "missing customer address",
			mutate:  func(o *entities.Order) { o.CustomerAddress = "" },
			wantErr: "customer name, phone and address are required",
		},
		{
			name:    "empty items",
			mutate:  func(o *entities.Order) { o.Items = nil },
			wantErr: "items list cannot be empty",
		},
		{
			name:    "zero total",
			mutate:  func(o *entities.Order) { o.TotalAmount = 0 },
			wantErr: "total amount must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := validOrder()
			tt.mutate(order)

			created, err := useCase.CreateOrder(ctx, order)
			assert.Error(t, err)
			assert.Nil(t, created)
			assert.Contains(t, err.Error(), tt.wantErr)

			mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
			mockNotifier.AssertNotCalled(t, "NotifyOrderCreated", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderUseCase_CreateOrder_KeepsCallerSuppliedAmounts(t *testing.T) {
	mockRepo := new(MockOrderRepository)

	useCase := NewOrderUseCase(mockRepo, nil, nil, logger.NewLogger())
	ctx := context.Background()

	// Line items are never cross-checked; an inconsistent total is stored
	// verbatim.
	order := validOrder()
	order.TotalAmount = 99999

	mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("*entities.Order")).
		Return(nil)

	created, err := useCase.CreateOrder(ctx, order)

	assert.NoError(t, err)
	assert.Equal(t, 99999, created.TotalAmount)

	mockRepo.AssertExpectations(t)
}

func TestOrderUseCase_ListOrders(t *testing.T) {
	mockRepo := new(MockOrderRepository)

	useCase := NewOrderUseCase(mockRepo, nil, nil, logger.NewLogger())
	ctx := context.Background()

	expected := []entities.Order{
		{ID: "o3", CreatedAt: "2024-03-03T10:00:00Z"},
		{ID: "o2", CreatedAt: "2024-03-02T10:00:00Z"},
		{ID: "o1", CreatedAt: "2024-03-01T10:00:00Z"},
	}

	mockRepo.On("FindAllNewestFirst", mock.Anything).Return(expected, nil)

	orders, err := useCase.ListOrders(ctx)

	assert.NoError(t, err)
	assert.Equal(t, expected, orders)

	mockRepo.AssertExpectations(t)
}

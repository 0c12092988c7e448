package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/suprimaaldino/pempek-domino/internal/domain/entities"
	"github.com/suprimaaldino/pempek-domino/internal/domain/repositories"
	"github.com/suprimaaldino/pempek-domino/internal/infrastructure/logger"
)

var (
	ErrMissingCustomerInfo = errors.New("customer name, phone and address are required")
	ErrEmptyItems          = errors.New("items list cannot be empty")
	ErrInvalidTotal        = errors.New("total amount must be positive")
)

// OrderNotifier delivers a human-readable order summary to an external
// chat. Delivery is best-effort; the order usecase never surfaces its
// errors to the caller.
type OrderNotifier interface {
	NotifyOrderCreated(ctx context.Context, order *entities.Order) error
}

type OrderEventPublisher interface {
	PublishOrderCreated(ctx context.Context, order *entities.Order) error
	Close()
}

type OrderUseCase struct {
	orderRepo repositories.OrderRepository
	notifier  OrderNotifier
	publisher OrderEventPublisher
	logger    *logger.Logger
}

func NewOrderUseCase(orderRepo repositories.OrderRepository, notifier OrderNotifier, publisher OrderEventPublisher, logger *logger.Logger) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
		notifier:  notifier,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateOrder persists the caller-supplied order as-is. Line item prices,
// subtotals and the total are trusted, not recomputed from the catalog,
// and stock is never decremented.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, order *entities.Order) (*entities.Order, error) {
	if order.CustomerName == "" || order.CustomerPhone == "" || order.CustomerAddress == "" {
		return nil, ErrMissingCustomerInfo
	}
	if len(order.Items) == 0 {
		return nil, ErrEmptyItems
	}
	if order.TotalAmount <= 0 {
		return nil, ErrInvalidTotal
	}

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.Status == "" {
		order.Status = entities.StatusPending
	}
	if order.CreatedAt == "" {
		order.CreatedAt = time.Now().Format(time.RFC3339)
	}

	if err := uc.orderRepo.Insert(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Fire-and-forget: once the write is durable the response no longer
	// depends on either outbound call.
	if uc.notifier != nil {
		go func(order entities.Order) {
			notifyCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := uc.notifier.NotifyOrderCreated(notifyCtx, &order); err != nil {
				uc.logger.Warn("Failed to send order notification", "order_id", order.ID, "error", err)
			}
		}(*order)
	}

	if uc.publisher != nil {
		go func(order entities.Order) {
			pubCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := uc.publisher.PublishOrderCreated(pubCtx, &order); err != nil {
				uc.logger.Warn("Failed to publish order.created event", "order_id", order.ID, "error", err)
			}
		}(*order)
	}

	return order, nil
}

func (uc *OrderUseCase) ListOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := uc.orderRepo.FindAllNewestFirst(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

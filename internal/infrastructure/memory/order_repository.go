package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/suprimaaldino/pempek-domino/internal/domain/entities"
)

type OrderRepositoryMemory struct {
	mu     sync.RWMutex
	orders map[string]*entities.Order
}

func NewOrderRepositoryMemory() *OrderRepositoryMemory {
	return &OrderRepositoryMemory{
		orders: make(map[string]*entities.Order),
	}
}

func (r *OrderRepositoryMemory) Insert(ctx context.Context, order *entities.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orderCopy := *order
	r.orders[order.ID] = &orderCopy
	return nil
}

func (r *OrderRepositoryMemory) FindAllNewestFirst(ctx context.Context) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]entities.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orders = append(orders, *order)
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt > orders[j].CreatedAt
	})
	return orders, nil
}

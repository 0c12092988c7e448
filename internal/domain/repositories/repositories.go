package repositories

import (
	"context"

	"github.com/suprimaaldino/pempek-domino/internal/domain/entities"
)

type CategoryRepository interface {
	Insert(ctx context.Context, category *entities.Category) error
	FindAll(ctx context.Context) ([]entities.Category, error)
	Count(ctx context.Context) (int64, error)
}

// ProductRepository filters FindAll by the denormalized category_name
// snapshot; an empty filter returns every product.
type ProductRepository interface {
	Insert(ctx context.Context, product *entities.Product) error
	FindAll(ctx context.Context, categoryName string) ([]entities.Product, error)
	Replace(ctx context.Context, productID string, product *entities.Product) error
	Delete(ctx context.Context, productID string) error
}

type OrderRepository interface {
	Insert(ctx context.Context, order *entities.Order) error
	FindAllNewestFirst(ctx context.Context) ([]entities.Order, error)
}

var (
	ErrCategoryNotFound = &RepositoryError{"category not found"}
	ErrProductNotFound  = &RepositoryError{"product not found"}
	ErrOrderNotFound    = &RepositoryError{"order not found"}
)

type RepositoryError struct {
	message string
}

func (e *RepositoryError) Error() string {
	return e.message
}

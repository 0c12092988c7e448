package memory

import (
	"context"
	"sync"

	"github.com/suprimaaldino/pempek-domino/internal/domain/entities"
	"github.com/suprimaaldino/pempek-domino/internal/domain/repositories"
)

type CategoryRepositoryMemory struct {
	mu         sync.RWMutex
	categories map[string]*entities.Category
	order      []string
}

func NewCategoryRepositoryMemory() *CategoryRepositoryMemory {
	return &CategoryRepositoryMemory{
		categories: make(map[string]*entities.Category),
	}
}

func (r *CategoryRepositoryMemory) Insert(ctx context.Context, category *entities.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	categoryCopy := *category
	if _, exists := r.categories[category.ID]; !exists {
		r.order = append(r.order, category.ID)
	}
	r.categories[category.ID] = &categoryCopy
	return nil
}

func (r *CategoryRepositoryMemory) FindAll(ctx context.Context) ([]entities.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]entities.Category, 0, len(r.order))
	for _, id := range r.order {
		categories = append(categories, *r.categories[id])
	}
	return categories, nil
}

func (r *CategoryRepositoryMemory) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.categories)), nil
}

type ProductRepositoryMemory struct {
	mu       sync.RWMutex
	products map[string]*entities.Product
	order    []string
}

func NewProductRepositoryMemory() *ProductRepositoryMemory {
	return &ProductRepositoryMemory{
		products: make(map[string]*entities.Product),
	}
}

func (r *ProductRepositoryMemory) Insert(ctx context.Context, product *entities.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	productCopy := *product
	if _, exists := r.products[product.ID]; !exists {
		r.order = append(r.order, product.ID)
	}
	r.products[product.ID] = &productCopy
	return nil
}

func (r *ProductRepositoryMemory) FindAll(ctx context.Context, categoryName string) ([]entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]entities.Product, 0, len(r.order))
	for _, id := range r.order {
		product := r.products[id]
		if categoryName != "" && product.CategoryName != categoryName {
			continue
		}
		products = append(products, *product)
	}
	return products, nil
}

func (r *ProductRepositoryMemory) Replace(ctx context.Context, productID string, product *entities.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[productID]; !exists {
		return repositories.ErrProductNotFound
	}

	productCopy := *product
	productCopy.ID = productID
	r.products[productID] = &productCopy
	return nil
}

func (r *ProductRepositoryMemory) Delete(ctx context.Context, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[productID]; !exists {
		return repositories.ErrProductNotFound
	}

	delete(r.products, productID)
	for i, id := range r.order {
		if id == productID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

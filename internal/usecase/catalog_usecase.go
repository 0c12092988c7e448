package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/suprimaaldino/pempek-domino/internal/domain/entities"
	"github.com/suprimaaldino/pempek-domino/internal/domain/repositories"
)

var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidProduct  = errors.New("invalid product")
)

type CatalogUseCase struct {
	categoryRepo repositories.CategoryRepository
	productRepo  repositories.ProductRepository
}

func NewCatalogUseCase(categoryRepo repositories.CategoryRepository, productRepo repositories.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

func (uc *CatalogUseCase) ListCategories(ctx context.Context) ([]entities.Category, error) {
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (uc *CatalogUseCase) CreateCategory(ctx context.Context, category *entities.Category) (*entities.Category, error) {
	if category.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidCategory)
	}

	if category.ID == "" {
		category.ID = uuid.New().String()
	}

	if err := uc.categoryRepo.Insert(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

// ListProducts filters on the category_name snapshot; an empty filter
// returns the whole catalog. An unknown category name yields an empty
// list, not an error.
func (uc *CatalogUseCase) ListProducts(ctx context.Context, categoryName string) ([]entities.Product, error) {
	products, err := uc.productRepo.FindAll(ctx, categoryName)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (uc *CatalogUseCase) CreateProduct(ctx context.Context, product *entities.Product) (*entities.Product, error) {
	if product.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if product.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidProduct)
	}

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if product.Stock == 0 {
		product.Stock = entities.DefaultStock
	}

	if err := uc.productRepo.Insert(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// UpdateProduct replaces the stored document wholesale; the path id wins
// over whatever id the body carries.
func (uc *CatalogUseCase) UpdateProduct(ctx context.Context, productID string, product *entities.Product) error {
	if productID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidProduct)
	}
	if product.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if product.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidProduct)
	}

	product.ID = productID

	if err := uc.productRepo.Replace(ctx, productID, product); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return err
		}
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

func (uc *CatalogUseCase) DeleteProduct(ctx context.Context, productID string) error {
	if productID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidProduct)
	}

	if err := uc.productRepo.Delete(ctx, productID); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

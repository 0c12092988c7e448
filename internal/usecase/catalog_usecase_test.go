package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/suprimaaldino/pempek-domino/internal/domain/entities"
	"github.com/suprimaaldino/pempek-domino/internal/domain/repositories"
	"github.com/suprimaaldino/pempek-domino/internal/infrastructure/memory"
)

func newTestCatalog() (*CatalogUseCase, *memory.CategoryRepositoryMemory, *memory.ProductRepositoryMemory) {
	categoryRepo := memory.NewCategoryRepositoryMemory()
	productRepo := memory.NewProductRepositoryMemory()
	return NewCatalogUseCase(categoryRepo, productRepo), categoryRepo, productRepo
}

func TestCatalogUseCase_CreateCategory(t *testing.T) {
	catalog, categoryRepo, _ := newTestCatalog()
	ctx := context.Background()

	created, err := catalog.CreateCategory(ctx, &entities.Category{Name: "Minuman", Description: "Teh dan kopi"})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	categories, _ := categoryRepo.FindAll(ctx)
	assert.Len(t, categories, 1)
	assert.Equal(t, "Minuman", categories[0].Name)
}

func TestCatalogUseCase_CreateCategory_MissingName(t *testing.T) {
	catalog, _, _ := newTestCatalog()

	created, err := catalog.CreateCategory(context.Background(), &entities.Category{Description: "tanpa nama"})
	assert.ErrorIs(t, err, ErrInvalidCategory)
	assert.Nil(t, created)
}

func TestCatalogUseCase_CreateProduct_Defaults(t *testing.T) {
	catalog, _, _ := newTestCatalog()

	created, err := catalog.CreateProduct(context.Background(), &entities.Product{
		Name:         "Pempek Panggang",
		Price:        7000,
		CategoryID:   "cat-1",
		CategoryName: "Pempek Goreng",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, entities.DefaultStock, created.Stock)
}

func TestCatalogUseCase_CreateProduct_Invalid(t *testing.T) {
	catalog, _, _ := newTestCatalog()
	ctx := context.Background()

	_, err := catalog.CreateProduct(ctx, &entities.Product{Price: 1000})
	assert.ErrorIs(t, err, ErrInvalidProduct)

	_, err = catalog.CreateProduct(ctx, &entities.Product{Name: "Pempek", Price: -1})
	assert.ErrorIs(t, err, ErrInvalidProduct)
}

func TestCatalogUseCase_UpdateProduct(t *testing.T) {
	catalog, _, productRepo := newTestCatalog()
	ctx := context.Background()

	created, err := catalog.CreateProduct(ctx, &entities.Product{Name: "Pempek Lenjer", Price: 8000})
	assert.NoError(t, err)

	// The path id wins over whatever id the body carries.
	err = catalog.UpdateProduct(ctx, created.ID, &entities.Product{
		ID:    "smuggled-id",
		Name:  "Pempek Lenjer Besar",
		Price: 12000,
	})
	assert.NoError(t, err)

	products, _ := productRepo.FindAll(ctx, "")
	assert.Len(t, products, 1)
	assert.Equal(t, created.ID, products[0].ID)
	assert.Equal(t, "Pempek Lenjer Besar", products[0].Name)
	assert.Equal(t, 12000, products[0].Price)
}

func TestCatalogUseCase_UpdateProduct_NotFound(t *testing.T) {
	catalog, _, _ := newTestCatalog()

	err := catalog.UpdateProduct(context.Background(), "missing", &entities.Product{Name: "X", Price: 1})
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}

func TestCatalogUseCase_DeleteProduct(t *testing.T) {
	catalog, _, productRepo := newTestCatalog()
	ctx := context.Background()

	created, err := catalog.CreateProduct(ctx, &entities.Product{Name: "Pempek Adaan", Price: 5000})
	assert.NoError(t, err)

	assert.NoError(t, catalog.DeleteProduct(ctx, created.ID))

	products, _ := productRepo.FindAll(ctx, "")
	assert.Empty(t, products)
}

func TestCatalogUseCase_DeleteProduct_NotFound(t *testing.T) {
	catalog, _, productRepo := newTestCatalog()
	ctx := context.Background()

	created, err := catalog.CreateProduct(ctx, &entities.Product{Name: "Pempek Kulit", Price: 10000})
	assert.NoError(t, err)

	err = catalog.DeleteProduct(ctx, "missing")
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	// The miss leaves the collection untouched.
	products, _ := productRepo.FindAll(ctx, "")
	assert.Len(t, products, 1)
	assert.Equal(t, created.ID, products[0].ID)
}

func TestCatalogUseCase_ListProducts_Filter(t *testing.T) {
	catalog, _, _ := newTestCatalog()
	ctx := context.Background()

	_, err := catalog.CreateProduct(ctx, &entities.Product{Name: "Pempek Kapal Selam", Price: 15000, CategoryName: "Pempek Goreng"})
	assert.NoError(t, err)
	_, err = catalog.CreateProduct(ctx, &entities.Product{Name: "Tekwan", Price: 12000, CategoryName: "Pempek Kuah"})
	assert.NoError(t, err)

	all, err := catalog.ListProducts(ctx, "")
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	goreng, err := catalog.ListProducts(ctx, "Pempek Goreng")
	assert.NoError(t, err)
	assert.Len(t, goreng, 1)
	assert.Equal(t, "Pempek Kapal Selam", goreng[0].Name)

	unknown, err := catalog.ListProducts(ctx, "Sate")
	assert.NoError(t, err)
	assert.Empty(t, unknown)
}

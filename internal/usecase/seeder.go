package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/suprimaaldino/pempek-domino/internal/domain/entities"
	"github.com/suprimaaldino/pempek-domino/internal/domain/repositories"
	"github.com/suprimaaldino/pempek-domino/internal/infrastructure/logger"
)

// Seeder populates an empty store with the default catalog. It only acts
// when the categories collection is empty, so repeated startups against
// an already-seeded store leave it untouched. Ids are generated fresh on
// every seeding run.
type Seeder struct {
	categoryRepo repositories.CategoryRepository
	productRepo  repositories.ProductRepository
	logger       *logger.Logger
}

func NewSeeder(categoryRepo repositories.CategoryRepository, productRepo repositories.ProductRepository, logger *logger.Logger) *Seeder {
	return &Seeder{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

type seedProduct struct {
	name        string
	price       int
	category    int
	imageURL    string
	stock       int
	description string
}

var seedCategories = []entities.Category{
	{Name: "Pempek Goreng", Description: "Pempek yang digoreng"},
	{Name: "Pempek Kuah", Description: "Pempek dengan kuah cuko"},
	{Name: "Snack", Description: "Cemilan pelengkap"},
}

var seedProducts = []seedProduct{
	{"Pempek Kapal Selam", 15000, 0, "https://images.unsplash.com/photo-1587907988134-94b4d1c3e40e", 50, "Pempek isi telur yang digoreng"},
	{"Pempek Lenjer", 8000, 0, "https://images.unsplash.com/photo-1540100716001-4b432820e37f", 100, "Pempek bulat panjang yang digoreng"},
	{"Pempek Adaan", 5000, 0, "https://images.unsplash.com/photo-1642744901889-9efbec703430", 80, "Pempek kecil bulat"},
	{"Pempek Kulit", 10000, 0, "https://images.pexels.com/photos/8858693/pexels-photo-8858693.jpeg", 30, "Pempek dari kulit ikan"},
	{"Tekwan", 12000, 1, "https://images.pexels.com/photos/1343537/pexels-photo-1343537.jpeg", 40, "Pempek kecil dalam kuah kaldu"},
	{"Kemplang", 25000, 2, "https://images.unsplash.com/photo-1619265554876-cbdaeb033aeb", 20, "Kerupuk khas Palembang"},
	{"Getas", 20000, 2, "https://images.unsplash.com/photo-1700513971573-4f941ab7d282", 15, "Cemilan renyah khas Palembang"},
}

func (s *Seeder) Run(ctx context.Context) error {
	count, err := s.categoryRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check categories: %w", err)
	}
	if count > 0 {
		s.logger.Info("Catalog already seeded, skipping", "categories", count)
		return nil
	}

	categories := make([]entities.Category, len(seedCategories))
	for i, c := range seedCategories {
		categories[i] = entities.Category{
			ID:          uuid.New().String(),
			Name:        c.Name,
			Description: c.Description,
		}
		if err := s.categoryRepo.Insert(ctx, &categories[i]); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", c.Name, err)
		}
	}

	for _, p := range seedProducts {
		product := entities.Product{
			ID:           uuid.New().String(),
			Name:         p.name,
			Price:        p.price,
			CategoryID:   categories[p.category].ID,
			CategoryName: categories[p.category].Name,
			ImageURL:     p.imageURL,
			Stock:        p.stock,
			Description:  p.description,
		}
		if err := s.productRepo.Insert(ctx, &product); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", p.name, err)
		}
	}

	s.logger.Info("Catalog seeded", "categories", len(categories), "products", len(seedProducts))
	return nil
}

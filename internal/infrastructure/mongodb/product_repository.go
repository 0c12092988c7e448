package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/suprimaaldino/pempek-domino/internal/domain/entities"
	"github.com/suprimaaldino/pempek-domino/internal/domain/repositories"
	"github.com/suprimaaldino/pempek-domino/internal/infrastructure/logger"
)

type ProductRepositoryMongo struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func (r *ProductRepositoryMongo) Insert(ctx context.Context, product *entities.Product) error {
	_, err := r.collection.InsertOne(ctx, toProductDocument(product))
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

func (r *ProductRepositoryMongo) FindAll(ctx context.Context, categoryName string) ([]entities.Product, error) {
	filter := bson.M{}
	if categoryName != "" {
		filter["category_name"] = categoryName
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []ProductDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	products := make([]entities.Product, len(docs))
	for i := range docs {
		products[i] = toProductEntity(&docs[i])
	}
	return products, nil
}

// Replace swaps the whole document for the one matching productID. Zero
// matched documents means the id does not exist; a matched-but-unmodified
// replace (identical content) is still a success.
func (r *ProductRepositoryMongo) Replace(ctx context.Context, productID string, product *entities.Product) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"id": productID}, toProductDocument(product))
	if err != nil {
		return fmt.Errorf("failed to replace product: %w", err)
	}

	if result.MatchedCount == 0 {
		return repositories.ErrProductNotFound
	}

	r.logger.Info("Product replaced",
		"product_id", productID,
		"matched_count", result.MatchedCount,
		"modified_count", result.ModifiedCount)
	return nil
}

func (r *ProductRepositoryMongo) Delete(ctx context.Context, productID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": productID})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if result.DeletedCount == 0 {
		return repositories.ErrProductNotFound
	}

	return nil
}

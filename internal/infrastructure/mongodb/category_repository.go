package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/suprimaaldino/pempek-domino/internal/domain/entities"
	"github.com/suprimaaldino/pempek-domino/internal/infrastructure/logger"
)

type CategoryRepositoryMongo struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func (r *CategoryRepositoryMongo) Insert(ctx context.Context, category *entities.Category) error {
	_, err := r.collection.InsertOne(ctx, toCategoryDocument(category))
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepositoryMongo) FindAll(ctx context.Context) ([]entities.Category, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find categories: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []CategoryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}

	categories := make([]entities.Category, len(docs))
	for i := range docs {
		categories[i] = toCategoryEntity(&docs[i])
	}
	return categories, nil
}

func (r *CategoryRepositoryMongo) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return count, nil
}

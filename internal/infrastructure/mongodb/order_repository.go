package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/suprimaaldino/pempek-domino/internal/domain/entities"
	"github.com/suprimaaldino/pempek-domino/internal/infrastructure/logger"
)

type OrderRepositoryMongo struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func (r *OrderRepositoryMongo) Insert(ctx context.Context, order *entities.Order) error {
	_, err := r.collection.InsertOne(ctx, toOrderDocument(order))
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

// FindAllNewestFirst sorts on the created_at string; RFC3339 timestamps
// sort lexicographically in chronological order.
func (r *OrderRepositoryMongo) FindAllNewestFirst(ctx context.Context) ([]entities.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []OrderDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	orders := make([]entities.Order, len(docs))
	for i := range docs {
		orders[i] = toOrderEntity(&docs[i])
	}
	return orders, nil
}

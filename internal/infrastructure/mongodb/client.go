package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/suprimaaldino/pempek-domino/internal/infrastructure/logger"
)

// Store wraps the shared Mongo client and the three collections the
// service persists to.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	logger *logger.Logger
}

func NewStore(uri, dbName string, logger *logger.Logger) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(dbName)

	for _, name := range []string{"categories", "products", "orders"} {
		_, err = db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create index on %s: %w", name, err)
		}
	}

	return &Store{
		client: client,
		db:     db,
		logger: logger,
	}, nil
}

func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (s *Store) Categories() *CategoryRepositoryMongo {
	return &CategoryRepositoryMongo{collection: s.db.Collection("categories"), logger: s.logger}
}

func (s *Store) Products() *ProductRepositoryMongo {
	return &ProductRepositoryMongo{collection: s.db.Collection("products"), logger: s.logger}
}

func (s *Store) Orders() *OrderRepositoryMongo {
	return &OrderRepositoryMongo{collection: s.db.Collection("orders"), logger: s.logger}
}

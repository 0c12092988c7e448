package mongodb

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/suprimaaldino/pempek-domino/internal/domain/entities"
)

type CategoryDocument struct {
	MongoID     primitive.ObjectID `bson:"_id,omitempty"`
	ID          string             `bson:"id"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
}

type ProductDocument struct {
	MongoID      primitive.ObjectID `bson:"_id,omitempty"`
	ID           string             `bson:"id"`
	Name         string             `bson:"name"`
	Price        int                `bson:"price"`
	CategoryID   string             `bson:"category_id"`
	CategoryName string             `bson:"category_name"`
	ImageURL     string             `bson:"image_url"`
	Stock        int                `bson:"stock"`
	Description  string             `bson:"description"`
}

type OrderDocument struct {
	MongoID         primitive.ObjectID  `bson:"_id,omitempty"`
	ID              string              `bson:"id"`
	CustomerName    string              `bson:"customer_name"`
	CustomerPhone   string              `bson:"customer_phone"`
	CustomerAddress string              `bson:"customer_address"`
	Items           []OrderItemDocument `bson:"items"`
	TotalAmount     int                 `bson:"total_amount"`
	Status          string              `bson:"status"`
	CreatedAt       string              `bson:"created_at"`
}

type OrderItemDocument struct {
	ID       string `bson:"id"`
	Name     string `bson:"name"`
	Price    int    `bson:"price"`
	Quantity int    `bson:"quantity"`
	Subtotal int    `bson:"subtotal"`
}

func toCategoryDocument(category *entities.Category) *CategoryDocument {
	return &CategoryDocument{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}
}

func toCategoryEntity(doc *CategoryDocument) entities.Category {
	return entities.Category{
		ID:          doc.ID,
		Name:        doc.Name,
		Description: doc.Description,
	}
}

func toProductDocument(product *entities.Product) *ProductDocument {
	return &ProductDocument{
		ID:           product.ID,
		Name:         product.Name,
		Price:        product.Price,
		CategoryID:   product.CategoryID,
		CategoryName: product.CategoryName,
		ImageURL:     product.ImageURL,
		Stock:        product.Stock,
		Description:  product.Description,
	}
}

func toProductEntity(doc *ProductDocument) entities.Product {
	return entities.Product{
		ID:           doc.ID,
		Name:         doc.Name,
		Price:        doc.Price,
		CategoryID:   doc.CategoryID,
		CategoryName: doc.CategoryName,
		ImageURL:     doc.ImageURL,
		Stock:        doc.Stock,
		Description:  doc.Description,
	}
}

func toOrderDocument(order *entities.Order) *OrderDocument {
	doc := &OrderDocument{
		ID:              order.ID,
		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		CustomerAddress: order.CustomerAddress,
		TotalAmount:     order.TotalAmount,
		Status:          order.Status,
		CreatedAt:       order.CreatedAt,
		Items:           make([]OrderItemDocument, len(order.Items)),
	}

	for i, item := range order.Items {
		doc.Items[i] = OrderItemDocument{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Subtotal: item.Subtotal,
		}
	}

	return doc
}

func toOrderEntity(doc *OrderDocument) entities.Order {
	items := make([]entities.OrderItem, len(doc.Items))
	for i, item := range doc.Items {
		items[i] = entities.OrderItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Subtotal: item.Subtotal,
		}
	}

	return entities.Order{
		ID:              doc.ID,
		CustomerName:    doc.CustomerName,
		CustomerPhone:   doc.CustomerPhone,
		CustomerAddress: doc.CustomerAddress,
		Items:           items,
		TotalAmount:     doc.TotalAmount,
		Status:          doc.Status,
		CreatedAt:       doc.CreatedAt,
	}
}

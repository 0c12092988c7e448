package entities

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Product carries a denormalized CategoryName snapshot taken at creation
// time. It is never re-synced when the referenced Category changes.
type Product struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Price        int    `json:"price"`
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	ImageURL     string `json:"image_url"`
	Stock        int    `json:"stock"`
	Description  string `json:"description"`
}

const DefaultStock = 100

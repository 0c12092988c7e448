package entities

// Order items are caller-supplied and never cross-checked against the
// product catalog; price, subtotal and total integrity is the caller's
// responsibility.
type Order struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	CustomerAddress string      `json:"customer_address"`
	Items           []OrderItem `json:"items"`
	TotalAmount     int         `json:"total_amount"`
	Status          string      `json:"status"`
	CreatedAt       string      `json:"created_at"`
}

type OrderItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
	Subtotal int    `json:"subtotal"`
}

const StatusPending = "pending"

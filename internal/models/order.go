package models

import "time"

// Order представляет заказ покупателя. Total — производная величина:
// после каждой вставки позиции он пересчитывается как сумма subtotal
// всех позиций заказа и самостоятельной ценности не имеет.
type Order struct {
	ID           int       `json:"id"`
	CustomerID   int       `json:"customer_id"`
	CustomerName string    `json:"customer_name,omitempty"`
	OrderDate    time.Time `json:"order_date"`
	Status       string    `json:"status"`
	Total        float64   `json:"total"`
}

// LineItem представляет одну позицию заказа.
// Subtotal всегда равен Quantity × UnitPrice.
type LineItem struct {
	ID          int     `json:"id"`
	OrderID     int     `json:"order_id"`
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
}

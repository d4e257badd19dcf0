package models

// Product представляет товар каталога. Неактивные товары не видны
// в публичной выдаче, но остаются в базе для истории заказов.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Active      bool    `json:"active"`
}

package domain

import "time"

// Product — товар, который заводит персонал через форму/CLI.
// ID присваивается на стороне сервиса при создании.
type Product struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

package products

import "time"

type Product struct {
	ID          string
	Name        string
	Description string
	SKU         string // único
	Category    string
	Price       float64
	Stock       int

	CreatedAt time.Time
	UpdatedAt time.Time
}

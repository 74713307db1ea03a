package products

import (
	"context"

	"pet-shop-api/internal/platform/pagination"
)

type ListFilter struct {
	Category string
	Query    string // nombre o sku
	InStock  bool
	Page     pagination.Params
}

type Repository interface {
	Create(ctx context.Context, p Product) error
	Update(ctx context.Context, p Product) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Product, error)
	List(ctx context.Context, f ListFilter) ([]Product, int, error)
}

package catalog

import (
	"context"

	"pet-shop-api/internal/platform/pagination"
)

type ListFilter struct {
	Category        string
	Query           string
	IncludeInactive bool
	Page            pagination.Params
}

// Repository: name es único; un duplicado sale como error de conflicto.
type Repository interface {
	Create(ctx context.Context, it Item) error
	Update(ctx context.Context, it Item) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Item, error)
	List(ctx context.Context, f ListFilter) ([]Item, int, error)
}

package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"pet-shop-api/internal/domain/products"
	"pet-shop-api/internal/platform/pagination"
)

type ProductsRepo struct {
	mu   sync.RWMutex
	byID map[string]products.Product
}

func NewProductsRepo() *ProductsRepo {
	return &ProductsRepo{byID: make(map[string]products.Product)}
}

func (r *ProductsRepo) skuTaken(sku, exceptID string) bool {
	for _, p := range r.byID {
		if p.ID != exceptID && p.SKU == sku {
			return true
		}
	}
	return false
}

func (r *ProductsRepo) Create(ctx context.Context, p products.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.skuTaken(p.SKU, p.ID) {
		return errDuplicate("sku")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *ProductsRepo) Update(ctx context.Context, p products.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; !exists {
		return ErrNotFound
	}
	if r.skuTaken(p.SKU, p.ID) {
		return errDuplicate("sku")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *ProductsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *ProductsRepo) GetByID(ctx context.Context, id string) (products.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return products.Product{}, ErrNotFound
	}
	return p, nil
}

func (r *ProductsRepo) List(ctx context.Context, f products.ListFilter) ([]products.Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]products.Product, 0)
	for _, p := range r.byID {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.InStock && p.Stock <= 0 {
			continue
		}
		if f.Query != "" && !containsFold(p.Name, f.Query) && !containsFold(p.SKU, f.Query) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name) })

	return pagination.Window(out, f.Page), len(out), nil
}

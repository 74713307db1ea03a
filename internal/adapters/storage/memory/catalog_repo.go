package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-shop-api/internal/domain/catalog"
	"pet-shop-api/internal/platform/apperr"
	"pet-shop-api/internal/platform/pagination"
)

type CatalogRepo struct {
	mu   sync.RWMutex
	byID map[string]catalog.Item

	// appointments emula la FK appointments.service_id al borrar.
	appointments *AppointmentsRepo
}

func NewCatalogRepo(appointments *AppointmentsRepo) *CatalogRepo {
	return &CatalogRepo{
		byID:         make(map[string]catalog.Item),
		appointments: appointments,
	}
}

func (r *CatalogRepo) nameTaken(name, exceptID string) bool {
	for _, it := range r.byID {
		if it.ID != exceptID && strings.EqualFold(it.Name, name) {
			return true
		}
	}
	return false
}

func (r *CatalogRepo) Create(ctx context.Context, it catalog.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nameTaken(it.Name, it.ID) {
		return errDuplicate("name")
	}
	r.byID[it.ID] = it
	return nil
}

func (r *CatalogRepo) Update(ctx context.Context, it catalog.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[it.ID]; !exists {
		return ErrNotFound
	}
	if r.nameTaken(it.Name, it.ID) {
		return errDuplicate("name")
	}
	r.byID[it.ID] = it
	return nil
}

func (r *CatalogRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	if r.appointments != nil && r.appointments.referencesService(id) {
		return apperr.Conflict("referenced record does not exist", errors.New("memory: service has appointments"))
	}
	delete(r.byID, id)
	return nil
}

func (r *CatalogRepo) GetByID(ctx context.Context, id string) (catalog.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.byID[id]
	if !ok {
		return catalog.Item{}, ErrNotFound
	}
	return it, nil
}

func (r *CatalogRepo) List(ctx context.Context, f catalog.ListFilter) ([]catalog.Item, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Item, 0)
	for _, it := range r.byID {
		if !it.IsActive && !f.IncludeInactive {
			continue
		}
		if f.Category != "" && it.Category != f.Category {
			continue
		}
		if f.Query != "" && !containsFold(it.Name, f.Query) {
			continue
		}
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name) })

	return pagination.Window(out, f.Page), len(out), nil
}

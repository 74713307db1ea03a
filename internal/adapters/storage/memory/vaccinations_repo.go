package memory

import (
	"context"
	"sort"
	"sync"

	"pet-shop-api/internal/domain/vaccinations"
)

type VaccinationsRepo struct {
	mu   sync.RWMutex
	byID map[string]vaccinations.Vaccination
}

func NewVaccinationsRepo() *VaccinationsRepo {
	return &VaccinationsRepo{byID: make(map[string]vaccinations.Vaccination)}
}

func (r *VaccinationsRepo) Create(ctx context.Context, v vaccinations.Vaccination) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[v.ID]; exists {
		return errDuplicate("id")
	}
	r.byID[v.ID] = v
	return nil
}

func (r *VaccinationsRepo) Update(ctx context.Context, v vaccinations.Vaccination) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[v.ID]; !exists {
		return ErrNotFound
	}
	r.byID[v.ID] = v
	return nil
}

func (r *VaccinationsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *VaccinationsRepo) GetByID(ctx context.Context, id string) (vaccinations.Vaccination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	if !ok {
		return vaccinations.Vaccination{}, ErrNotFound
	}
	return v, nil
}

func (r *VaccinationsRepo) ListByPet(ctx context.Context, petID string, limit, offset int) ([]vaccinations.Vaccination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]vaccinations.Vaccination, 0)
	for _, v := range r.byID {
		if v.PetID == petID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AdministeredDate.Equal(out[j].AdministeredDate) {
			return out[i].ID < out[j].ID
		}
		return out[i].AdministeredDate.After(out[j].AdministeredDate)
	})
	return window(out, limit, offset), nil
}

func (r *VaccinationsRepo) CountByPet(ctx context.Context, petID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, v := range r.byID {
		if v.PetID == petID {
			n++
		}
	}
	return n, nil
}

package memory

import (
	"context"
	"sort"
	"sync"

	"pet-shop-api/internal/domain/grooming"
)

type GroomingRepo struct {
	mu   sync.RWMutex
	byID map[string]grooming.Session
}

func NewGroomingRepo() *GroomingRepo {
	return &GroomingRepo{byID: make(map[string]grooming.Session)}
}

func (r *GroomingRepo) Create(ctx context.Context, s grooming.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[s.ID]; exists {
		return errDuplicate("id")
	}
	s.ServicesPerformed = append([]string(nil), s.ServicesPerformed...)
	r.byID[s.ID] = s
	return nil
}

func (r *GroomingRepo) Update(ctx context.Context, s grooming.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[s.ID]; !exists {
		return ErrNotFound
	}
	s.ServicesPerformed = append([]string(nil), s.ServicesPerformed...)
	r.byID[s.ID] = s
	return nil
}

func (r *GroomingRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *GroomingRepo) GetByID(ctx context.Context, id string) (grooming.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return grooming.Session{}, ErrNotFound
	}
	return s, nil
}

// byPet requiere RLock. Orden session_date DESC.
func (r *GroomingRepo) byPet(petID string) []grooming.Session {
	out := make([]grooming.Session, 0)
	for _, s := range r.byID {
		if s.PetID == petID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SessionDate.Equal(out[j].SessionDate) {
			return out[i].ID < out[j].ID
		}
		return out[i].SessionDate.After(out[j].SessionDate)
	})
	return out
}

func (r *GroomingRepo) ListByPet(ctx context.Context, petID string, limit, offset int) ([]grooming.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return window(r.byPet(petID), limit, offset), nil
}

func (r *GroomingRepo) CountByPet(ctx context.Context, petID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byPet(petID)), nil
}

func (r *GroomingRepo) CostsByPet(ctx context.Context, petID string) ([]float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := r.byPet(petID)
	out := make([]float64, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, s.ServiceCost)
	}
	return out, nil
}

package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"pet-shop-api/internal/domain/pets"
	"pet-shop-api/internal/platform/pagination"
)

type PetsRepo struct {
	mu    sync.RWMutex
	byID  map[string]pets.Pet
	users *UsersRepo
}

func NewPetsRepo(users *UsersRepo) *PetsRepo {
	return &PetsRepo{
		byID:  make(map[string]pets.Pet),
		users: users,
	}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errDuplicate("id")
	}
	p.Owner = nil
	p.BehaviorNotes = append([]string(nil), p.BehaviorNotes...)
	r.byID[p.ID] = p
	return nil
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, exists := r.byID[p.ID]
	if !exists || !cur.IsActive {
		return ErrNotFound
	}
	p.Owner = nil
	p.IsActive = cur.IsActive
	p.BehaviorNotes = append([]string(nil), p.BehaviorNotes...)
	r.byID[p.ID] = p
	return nil
}

// active es el único lugar donde se aplica el filtro de activos.
func active(p pets.Pet, opts pets.LoadOptions) bool {
	return p.IsActive || opts.IncludeInactive
}

func (r *PetsRepo) GetByID(ctx context.Context, id string, opts pets.LoadOptions) (pets.Pet, error) {
	r.mu.RLock()
	p, ok := r.byID[id]
	r.mu.RUnlock()

	if !ok || !active(p, opts) {
		return pets.Pet{}, ErrNotFound
	}
	if opts.Owner && r.users != nil {
		p.Owner = r.users.summary(p.OwnerUserID)
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context, f pets.ListFilter) ([]pets.Pet, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.byID {
		if !active(p, pets.LoadOptions{}) {
			continue
		}
		if f.OwnerUserID != "" && p.OwnerUserID != f.OwnerUserID {
			continue
		}
		if f.Species != "" && p.Species != f.Species {
			continue
		}
		if f.Query != "" && !containsFold(p.Name, f.Query) {
			continue
		}
		out = append(out, p)
	}

	// Orden estable por created_at asc, igual que postgres.
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return pagination.Window(out, f.Page), len(out), nil
}

func (r *PetsRepo) Deactivate(ctx context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok || !p.IsActive {
		return ErrNotFound
	}
	p.IsActive = false
	p.UpdatedAt = at
	r.byID[id] = p
	return nil
}

package memory

import (
	"context"
	"sort"
	"sync"

	"pet-shop-api/internal/domain/appointments"
	"pet-shop-api/internal/platform/pagination"
)

type AppointmentsRepo struct {
	mu   sync.RWMutex
	byID map[string]appointments.Appointment
}

func NewAppointmentsRepo() *AppointmentsRepo {
	return &AppointmentsRepo{byID: make(map[string]appointments.Appointment)}
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; exists {
		return errDuplicate("id")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *AppointmentsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; !exists {
		return ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *AppointmentsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return appointments.Appointment{}, ErrNotFound
	}
	return a, nil
}

func sortByDate(out []appointments.Appointment, desc bool) {
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID < out[j].ID
		}
		if desc {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].Date.Before(out[j].Date)
	})
}

func (r *AppointmentsRepo) List(ctx context.Context, f appointments.ListFilter) ([]appointments.Appointment, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]appointments.Appointment, 0)
	for _, a := range r.byID {
		if f.CustomerID != "" && a.CustomerID != f.CustomerID {
			continue
		}
		if f.PetID != "" && a.PetID != f.PetID {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if f.From != nil && a.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && a.Date.After(*f.To) {
			continue
		}
		out = append(out, a)
	}
	sortByDate(out, false)

	return pagination.Window(out, f.Page), len(out), nil
}

func (r *AppointmentsRepo) ListByPet(ctx context.Context, petID string, rng appointments.PetRange) ([]appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]appointments.Appointment, 0)
	for _, a := range r.byID {
		if a.PetID != petID {
			continue
		}
		if rng.From != nil && a.Date.Before(*rng.From) {
			continue
		}
		if rng.Before != nil && !a.Date.Before(*rng.Before) {
			continue
		}
		out = append(out, a)
	}
	sortByDate(out, rng.Descending)

	return window(out, rng.Limit, 0), nil
}

func (r *AppointmentsRepo) CountByPet(ctx context.Context, petID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, a := range r.byID {
		if a.PetID == petID {
			n++
		}
	}
	return n, nil
}

func (r *AppointmentsRepo) referencesService(serviceID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.byID {
		if a.ServiceID == serviceID {
			return true
		}
	}
	return false
}

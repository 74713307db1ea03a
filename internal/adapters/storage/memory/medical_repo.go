package memory

import (
	"context"
	"sort"
	"sync"

	"pet-shop-api/internal/domain/medical"
)

type MedicalRepo struct {
	mu   sync.RWMutex
	byID map[string]medical.Record
}

func NewMedicalRepo() *MedicalRepo {
	return &MedicalRepo{byID: make(map[string]medical.Record)}
}

func (r *MedicalRepo) Create(ctx context.Context, rec medical.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[rec.ID]; exists {
		return errDuplicate("id")
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *MedicalRepo) Update(ctx context.Context, rec medical.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[rec.ID]; !exists {
		return ErrNotFound
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *MedicalRepo) GetByID(ctx context.Context, id string) (medical.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return medical.Record{}, ErrNotFound
	}
	return rec, nil
}

// byPet devuelve los registros de la mascota por visit_date DESC. Requiere RLock.
func (r *MedicalRepo) byPet(petID string) []medical.Record {
	out := make([]medical.Record, 0)
	for _, rec := range r.byID {
		if rec.PetID == petID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].VisitDate.Equal(out[j].VisitDate) {
			return out[i].ID < out[j].ID
		}
		return out[i].VisitDate.After(out[j].VisitDate)
	})
	return out
}

func (r *MedicalRepo) ListByPet(ctx context.Context, petID string, limit, offset int) ([]medical.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return window(r.byPet(petID), limit, offset), nil
}

func (r *MedicalRepo) CountByPet(ctx context.Context, petID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, rec := range r.byID {
		if rec.PetID == petID {
			n++
		}
	}
	return n, nil
}

func (r *MedicalRepo) MetricsByPet(ctx context.Context, petID string) ([]medical.Metric, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recs := r.byPet(petID)
	out := make([]medical.Metric, 0, len(recs))
	for _, rec := range recs {
		out = append(out, medical.Metric{
			VisitDate:     rec.VisitDate,
			WeightAtVisit: rec.WeightAtVisit,
			ServiceCost:   rec.ServiceCost,
		})
	}
	return out, nil
}

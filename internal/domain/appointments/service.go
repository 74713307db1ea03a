package appointments

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-shop-api/internal/domain/access"
	"pet-shop-api/internal/domain/catalog"
	"pet-shop-api/internal/platform/apperr"
	"pet-shop-api/internal/platform/logger"
	"pet-shop-api/internal/platform/pagination"
)

const maxNotesLen = 1000

type PetOwnerLookup interface {
	OwnerOf(ctx context.Context, petID string) (string, error)
}

type CatalogLookup interface {
	ActiveItem(ctx context.Context, id string) (catalog.Item, error)
}

type Service struct {
	repo    Repository
	pets    PetOwnerLookup
	catalog CatalogLookup
	log     logger.Logger
	now     func() time.Time
}

func NewService(repo Repository, pets PetOwnerLookup, cat CatalogLookup, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:    repo,
		pets:    pets,
		catalog: cat,
		log:     log,
		now:     time.Now,
	}
}

type CreateInput struct {
	PetID     string
	ServiceID string
	Date      time.Time
	Notes     string
}

// Create agenda un turno. El cliente del turno es siempre el dueño de la mascota,
// aunque lo agende staff.
func (s *Service) Create(ctx context.Context, p access.Principal, in CreateInput) (Appointment, error) {
	petID, err := apperr.ParseID("pet_id", in.PetID)
	if err != nil {
		return Appointment{}, err
	}
	serviceID, err := apperr.ParseID("service_id", in.ServiceID)
	if err != nil {
		return Appointment{}, err
	}

	ownerID, err := s.pets.OwnerOf(ctx, petID)
	if err != nil {
		return Appointment{}, err
	}
	if err := access.CheckOwner(p, ownerID); err != nil {
		return Appointment{}, err
	}
	if _, err := s.catalog.ActiveItem(ctx, serviceID); err != nil {
		return Appointment{}, err
	}

	now := s.now()
	a := Appointment{
		ID:         uuid.NewString(),
		PetID:      petID,
		ServiceID:  serviceID,
		CustomerID: ownerID,
		Date:       in.Date,
		Status:     StatusPending,
		Notes:      strings.TrimSpace(in.Notes),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := validate(a); err != nil {
		return Appointment{}, err
	}
	if !a.Date.After(now) {
		return Appointment{}, apperr.Validation("date must be in the future")
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Appointment{}, apperr.FromStorage(s.log, "appointments.create", err)
	}

	s.log.Info("appointment created", map[string]any{
		"appointment_id": a.ID,
		"pet_id":         a.PetID,
		"service_id":     a.ServiceID,
	})
	return a, nil
}

// List: un usuario común solo ve sus turnos; staff ve todos.
func (s *Service) List(ctx context.Context, p access.Principal, f ListFilter) (pagination.Result[Appointment], error) {
	if strings.TrimSpace(p.ID) == "" {
		return pagination.Result[Appointment]{}, apperr.Unauthorized("unauthorized")
	}
	if scope := access.OwnerScope(p); scope != "" {
		f.CustomerID = scope
	}
	if f.PetID != "" {
		id, err := apperr.ParseID("pet_id", f.PetID)
		if err != nil {
			return pagination.Result[Appointment]{}, err
		}
		f.PetID = id
	}
	if f.Status != "" && !f.Status.Valid() {
		return pagination.Result[Appointment]{}, apperr.Validation("status must be one of pending, confirmed, completed, cancelled")
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return pagination.Result[Appointment]{}, apperr.Validation("to must be after from")
	}
	f.Page = f.Page.Normalize()

	items, total, err := s.repo.List(ctx, f)
	if err != nil {
		return pagination.Result[Appointment]{}, apperr.FromStorage(s.log, "appointments.list", err)
	}
	return pagination.NewResult(items, total, f.Page), nil
}

func (s *Service) Get(ctx context.Context, p access.Principal, id string) (Appointment, error) {
	a, err := s.load(ctx, id)
	if err != nil {
		return Appointment{}, err
	}
	if err := access.CheckOwner(p, a.CustomerID); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

type UpdateInput struct {
	Date   *time.Time
	Status *Status
	Notes  *string
}

// Update: el cliente puede reprogramar, cambiar notas o cancelar.
// Confirmar o completar es de staff.
func (s *Service) Update(ctx context.Context, p access.Principal, id string, in UpdateInput) (Appointment, error) {
	a, err := s.Get(ctx, p, id)
	if err != nil {
		return Appointment{}, err
	}

	if in.Status != nil {
		st := Status(strings.ToLower(strings.TrimSpace(string(*in.Status))))
		if !st.Valid() {
			return Appointment{}, apperr.Validation("status must be one of pending, confirmed, completed, cancelled")
		}
		if st != a.Status && st != StatusCancelled && !p.IsElevated() {
			return Appointment{}, apperr.Forbidden()
		}
		a.Status = st
	}
	now := s.now()
	if in.Date != nil {
		if !in.Date.After(now) {
			return Appointment{}, apperr.Validation("date must be in the future")
		}
		a.Date = *in.Date
	}
	if in.Notes != nil {
		a.Notes = strings.TrimSpace(*in.Notes)
	}
	a.UpdatedAt = now

	if err := validate(a); err != nil {
		return Appointment{}, err
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return Appointment{}, apperr.FromStorage(s.log, "appointments.update", err)
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, p access.Principal, id string) error {
	a, err := s.Get(ctx, p, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, a.ID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.NotFound("appointment")
		}
		return apperr.FromStorage(s.log, "appointments.delete", err)
	}
	return nil
}

func (s *Service) load(ctx context.Context, id string) (Appointment, error) {
	id, err := apperr.ParseID("appointmentID", id)
	if err != nil {
		return Appointment{}, err
	}
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Appointment{}, apperr.NotFound("appointment")
		}
		return Appointment{}, apperr.FromStorage(s.log, "appointments.get", err)
	}
	return a, nil
}

func validate(a Appointment) error {
	if a.Date.IsZero() {
		return apperr.Validation("date is required")
	}
	if !a.Status.Valid() {
		return apperr.Validation("status must be one of pending, confirmed, completed, cancelled")
	}
	if len(a.Notes) > maxNotesLen {
		return apperr.Validation("notes is too long")
	}
	return nil
}

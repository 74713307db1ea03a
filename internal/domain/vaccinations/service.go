package vaccinations

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-shop-api/internal/domain/access"
	"pet-shop-api/internal/platform/apperr"
	"pet-shop-api/internal/platform/logger"
	"pet-shop-api/internal/platform/nullable"
	"pet-shop-api/internal/platform/pagination"
)

const maxVaccineName = 120

type PetOwnerLookup interface {
	OwnerOf(ctx context.Context, petID string) (string, error)
	HistoricalOwnerOf(ctx context.Context, petID string) (string, error)
}

type Service struct {
	repo Repository
	pets PetOwnerLookup
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, pets PetOwnerLookup, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{repo: repo, pets: pets, log: log, now: time.Now}
}

// Now expone el reloj del servicio; el handler lo usa para derivar status.
func (s *Service) Now() time.Time { return s.now() }

type CreateInput struct {
	VaccineName      string
	BatchNumber      string
	AdministeredDate time.Time
	NextDueDate      *time.Time
	Notes            string
}

func (s *Service) Create(ctx context.Context, p access.Principal, petID string, in CreateInput) (Vaccination, error) {
	petID, err := apperr.ParseID("petID", petID)
	if err != nil {
		return Vaccination{}, err
	}
	if err := access.RequireElevated(p); err != nil {
		return Vaccination{}, err
	}
	if _, err := s.pets.OwnerOf(ctx, petID); err != nil {
		return Vaccination{}, err
	}

	now := s.now()
	v := Vaccination{
		ID:               uuid.NewString(),
		PetID:            petID,
		VeterinarianID:   p.ID,
		VaccineName:      strings.TrimSpace(in.VaccineName),
		BatchNumber:      strings.TrimSpace(in.BatchNumber),
		AdministeredDate: in.AdministeredDate,
		NextDueDate:      in.NextDueDate,
		Notes:            strings.TrimSpace(in.Notes),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := validate(v); err != nil {
		return Vaccination{}, err
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return Vaccination{}, apperr.FromStorage(s.log, "vaccinations.create", err)
	}
	return v, nil
}

func (s *Service) ListByPet(ctx context.Context, p access.Principal, petID string, page pagination.Params) (pagination.Result[Vaccination], error) {
	petID, err := apperr.ParseID("petID", petID)
	if err != nil {
		return pagination.Result[Vaccination]{}, err
	}
	ownerID, err := s.pets.OwnerOf(ctx, petID)
	if err != nil {
		return pagination.Result[Vaccination]{}, err
	}
	if err := access.CheckOwner(p, ownerID); err != nil {
		return pagination.Result[Vaccination]{}, err
	}

	page = page.Normalize()
	items, err := s.repo.ListByPet(ctx, petID, page.Limit, page.Offset())
	if err != nil {
		return pagination.Result[Vaccination]{}, apperr.FromStorage(s.log, "vaccinations.list", err)
	}
	total, err := s.repo.CountByPet(ctx, petID)
	if err != nil {
		return pagination.Result[Vaccination]{}, apperr.FromStorage(s.log, "vaccinations.count", err)
	}
	return pagination.NewResult(items, total, page), nil
}

func (s *Service) Get(ctx context.Context, p access.Principal, petID, id string) (Vaccination, error) {
	v, err := s.load(ctx, petID, id)
	if err != nil {
		return Vaccination{}, err
	}
	ownerID, err := s.pets.HistoricalOwnerOf(ctx, v.PetID)
	if err != nil {
		return Vaccination{}, err
	}
	if err := access.CheckOwner(p, ownerID); err != nil {
		return Vaccination{}, err
	}
	return v, nil
}

type UpdateInput struct {
	VaccineName      *string
	BatchNumber      *string
	AdministeredDate *time.Time
	Notes            *string

	NextDueDate nullable.Value[time.Time]
}

func (s *Service) Update(ctx context.Context, p access.Principal, petID, id string, in UpdateInput) (Vaccination, error) {
	if err := access.RequireElevated(p); err != nil {
		return Vaccination{}, err
	}
	v, err := s.load(ctx, petID, id)
	if err != nil {
		return Vaccination{}, err
	}

	if in.VaccineName != nil {
		v.VaccineName = strings.TrimSpace(*in.VaccineName)
	}
	if in.BatchNumber != nil {
		v.BatchNumber = strings.TrimSpace(*in.BatchNumber)
	}
	if in.AdministeredDate != nil {
		v.AdministeredDate = *in.AdministeredDate
	}
	if in.Notes != nil {
		v.Notes = strings.TrimSpace(*in.Notes)
	}
	v.NextDueDate = in.NextDueDate.Apply(v.NextDueDate)
	v.UpdatedAt = s.now()

	if err := validate(v); err != nil {
		return Vaccination{}, err
	}
	if err := s.repo.Update(ctx, v); err != nil {
		return Vaccination{}, apperr.FromStorage(s.log, "vaccinations.update", err)
	}
	return v, nil
}

func (s *Service) Delete(ctx context.Context, p access.Principal, petID, id string) error {
	if err := access.RequireElevated(p); err != nil {
		return err
	}
	v, err := s.load(ctx, petID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, v.ID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.NotFound("vaccination")
		}
		return apperr.FromStorage(s.log, "vaccinations.delete", err)
	}
	return nil
}

func (s *Service) load(ctx context.Context, petID, id string) (Vaccination, error) {
	petID, err := apperr.ParseID("petID", petID)
	if err != nil {
		return Vaccination{}, err
	}
	id, err = apperr.ParseID("vaccinationID", id)
	if err != nil {
		return Vaccination{}, err
	}

	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Vaccination{}, apperr.NotFound("vaccination")
		}
		return Vaccination{}, apperr.FromStorage(s.log, "vaccinations.get", err)
	}
	if v.PetID != petID {
		return Vaccination{}, apperr.NotFound("vaccination")
	}
	return v, nil
}

func validate(v Vaccination) error {
	if v.VaccineName == "" {
		return apperr.Validation("vaccine_name is required")
	}
	if len(v.VaccineName) > maxVaccineName {
		return apperr.Validation("vaccine_name is too long")
	}
	if v.AdministeredDate.IsZero() {
		return apperr.Validation("administered_date is required")
	}
	if v.NextDueDate != nil && v.NextDueDate.Before(v.AdministeredDate) {
		return apperr.Validation("next_due_date cannot be before administered_date")
	}
	return nil
}

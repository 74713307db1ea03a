package medical

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

// PetOwnerLookup evita importar el paquete pets (rompe ciclos).
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
	return &Service{
		repo: repo,
		pets: pets,
		log:  log,
		now:  time.Now,
	}
}

type CreateInput struct {
	VisitDate     time.Time
	VisitType     VisitType
	Reason        string
	Diagnosis     string
	Treatment     string
	Notes         string
	WeightAtVisit *float64
	ServiceCost   float64
}

// Create registra una visita. Solo staff (rol elevado); el veterinario es el principal.
func (s *Service) Create(ctx context.Context, p access.Principal, petID string, in CreateInput) (Record, error) {
	petID, err := apperr.ParseID("petID", petID)
	if err != nil {
		return Record{}, err
	}
	if err := access.RequireElevated(p); err != nil {
		return Record{}, err
	}
	if _, err := s.pets.OwnerOf(ctx, petID); err != nil {
		return Record{}, err
	}

	now := s.now()
	rec := Record{
		ID:             uuid.NewString(),
		PetID:          petID,
		VeterinarianID: p.ID,
		VisitDate:      in.VisitDate,
		VisitType:      in.VisitType,
		Reason:         strings.TrimSpace(in.Reason),
		Diagnosis:      strings.TrimSpace(in.Diagnosis),
		Treatment:      strings.TrimSpace(in.Treatment),
		Notes:          strings.TrimSpace(in.Notes),
		WeightAtVisit:  in.WeightAtVisit,
		ServiceCost:    in.ServiceCost,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := validate(rec); err != nil {
		return Record{}, err
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return Record{}, apperr.FromStorage(s.log, "medical.create", err)
	}
	return rec, nil
}

func (s *Service) ListByPet(ctx context.Context, p access.Principal, petID string, page pagination.Params) (pagination.Result[Record], error) {
	petID, err := apperr.ParseID("petID", petID)
	if err != nil {
		return pagination.Result[Record]{}, err
	}
	ownerID, err := s.pets.OwnerOf(ctx, petID)
	if err != nil {
		return pagination.Result[Record]{}, err
	}
	if err := access.CheckOwner(p, ownerID); err != nil {
		return pagination.Result[Record]{}, err
	}

	page = page.Normalize()
	items, err := s.repo.ListByPet(ctx, petID, page.Limit, page.Offset())
	if err != nil {
		return pagination.Result[Record]{}, apperr.FromStorage(s.log, "medical.list", err)
	}
	total, err := s.repo.CountByPet(ctx, petID)
	if err != nil {
		return pagination.Result[Record]{}, apperr.FromStorage(s.log, "medical.count", err)
	}
	return pagination.NewResult(items, total, page), nil
}

// Get sigue funcionando aunque la mascota esté dada de baja.
func (s *Service) Get(ctx context.Context, p access.Principal, petID, recordID string) (Record, error) {
	rec, err := s.load(ctx, petID, recordID)
	if err != nil {
		return Record{}, err
	}
	ownerID, err := s.pets.HistoricalOwnerOf(ctx, rec.PetID)
	if err != nil {
		return Record{}, err
	}
	if err := access.CheckOwner(p, ownerID); err != nil {
		return Record{}, err
	}
	return rec, nil
}

type AmendInput struct {
	VisitDate   *time.Time
	VisitType   *VisitType
	Reason      *string
	Diagnosis   *string
	Treatment   *string
	Notes       *string
	ServiceCost *float64

	WeightAtVisit nullable.Value[float64]
}

// Amend corrige una entrada existente. Solo staff.
func (s *Service) Amend(ctx context.Context, p access.Principal, petID, recordID string, in AmendInput) (Record, error) {
	if err := access.RequireElevated(p); err != nil {
		return Record{}, err
	}
	rec, err := s.load(ctx, petID, recordID)
	if err != nil {
		return Record{}, err
	}

	if in.VisitDate != nil {
		rec.VisitDate = *in.VisitDate
	}
	if in.VisitType != nil {
		rec.VisitType = *in.VisitType
	}
	if in.Reason != nil {
		rec.Reason = strings.TrimSpace(*in.Reason)
	}
	if in.Diagnosis != nil {
		rec.Diagnosis = strings.TrimSpace(*in.Diagnosis)
	}
	if in.Treatment != nil {
		rec.Treatment = strings.TrimSpace(*in.Treatment)
	}
	if in.Notes != nil {
		rec.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.ServiceCost != nil {
		rec.ServiceCost = *in.ServiceCost
	}
	rec.WeightAtVisit = in.WeightAtVisit.Apply(rec.WeightAtVisit)
	rec.UpdatedAt = s.now()

	if err := validate(rec); err != nil {
		return Record{}, err
	}
	if err := s.repo.Update(ctx, rec); err != nil {
		return Record{}, apperr.FromStorage(s.log, "medical.update", err)
	}
	return rec, nil
}

func (s *Service) load(ctx context.Context, petID, recordID string) (Record, error) {
	petID, err := apperr.ParseID("petID", petID)
	if err != nil {
		return Record{}, err
	}
	recordID, err = apperr.ParseID("recordID", recordID)
	if err != nil {
		return Record{}, err
	}

	rec, err := s.repo.GetByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Record{}, apperr.NotFound("medical record")
		}
		return Record{}, apperr.FromStorage(s.log, "medical.get", err)
	}
	// El registro tiene que pertenecer a la mascota de la ruta.
	if rec.PetID != petID {
		return Record{}, apperr.NotFound("medical record")
	}
	return rec, nil
}

func validate(rec Record) error {
	if rec.VisitDate.IsZero() {
		return apperr.Validation("visit_date is required")
	}
	if !rec.VisitType.Valid() {
		return apperr.Validation("visit_type must be one of consultation, vaccination, surgery, emergency, checkup")
	}
	if rec.Reason == "" {
		return apperr.Validation("reason is required")
	}
	if rec.WeightAtVisit != nil && *rec.WeightAtVisit <= 0 {
		return apperr.Validation("weight_at_visit must be positive")
	}
	if rec.ServiceCost < 0 {
		return apperr.Validation("service_cost cannot be negative")
	}
	return nil
}

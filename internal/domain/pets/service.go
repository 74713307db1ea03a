package pets

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

const (
	maxNameLen      = 100
	maxBehaviorNote = 500
	maxWeightKg     = 500
)

type Service struct {
	repo Repository
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

type CreateInput struct {
	OwnerUserID     string // solo roles elevados pueden crear a nombre de otro
	Name            string
	Species         Species
	Breed           string
	Gender          Gender
	BirthDate       *time.Time
	Weight          *float64
	MicrochipNumber string
	Temperament     string
	BehaviorNotes   []string
}

func (s *Service) Create(ctx context.Context, p access.Principal, in CreateInput) (Pet, error) {
	ownerID := p.ID
	if strings.TrimSpace(in.OwnerUserID) != "" && in.OwnerUserID != p.ID {
		if err := access.RequireElevated(p); err != nil {
			return Pet{}, err
		}
		id, err := apperr.ParseID("owner_user_id", in.OwnerUserID)
		if err != nil {
			return Pet{}, err
		}
		ownerID = id
	}
	if strings.TrimSpace(ownerID) == "" {
		return Pet{}, apperr.Unauthorized("unauthorized")
	}

	gender := in.Gender
	if gender == "" {
		gender = GenderUnknown
	}

	now := s.now()
	pet := Pet{
		ID:              uuid.NewString(),
		OwnerUserID:     ownerID,
		Name:            strings.TrimSpace(in.Name),
		Species:         Species(strings.ToLower(strings.TrimSpace(string(in.Species)))),
		Breed:           strings.TrimSpace(in.Breed),
		Gender:          gender,
		BirthDate:       in.BirthDate,
		Weight:          in.Weight,
		MicrochipNumber: strings.TrimSpace(in.MicrochipNumber),
		Temperament:     strings.TrimSpace(in.Temperament),
		BehaviorNotes:   cleanNotes(in.BehaviorNotes),
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.validate(pet); err != nil {
		return Pet{}, err
	}

	if err := s.repo.Create(ctx, pet); err != nil {
		return Pet{}, apperr.FromStorage(s.log, "pets.create", err)
	}
	return pet, nil
}

// List aplica el scope de ownership: un usuario común solo ve sus mascotas.
func (s *Service) List(ctx context.Context, p access.Principal, f ListFilter) (pagination.Result[Pet], error) {
	if strings.TrimSpace(p.ID) == "" {
		return pagination.Result[Pet]{}, apperr.Unauthorized("unauthorized")
	}
	if scope := access.OwnerScope(p); scope != "" {
		f.OwnerUserID = scope
	}
	if f.Species != "" && !f.Species.Valid() {
		return pagination.Result[Pet]{}, apperr.Validation("unknown species %q", f.Species)
	}
	f.Page = f.Page.Normalize()

	items, total, err := s.repo.List(ctx, f)
	if err != nil {
		return pagination.Result[Pet]{}, apperr.FromStorage(s.log, "pets.list", err)
	}
	return pagination.NewResult(items, total, f.Page), nil
}

// Get: primero existencia (NotFound), después ownership (Forbidden).
func (s *Service) Get(ctx context.Context, p access.Principal, id string) (Pet, error) {
	pet, err := s.load(ctx, id, LoadOptions{Owner: true})
	if err != nil {
		return Pet{}, err
	}
	if err := access.CheckOwner(p, pet.OwnerUserID); err != nil {
		return Pet{}, err
	}
	return pet, nil
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Name            *string
	Species         *Species
	Breed           *string
	Gender          *Gender
	MicrochipNumber *string
	Temperament     *string
	BehaviorNotes   *[]string

	// Campos que admiten null para limpiar.
	BirthDate nullable.Value[time.Time]
	Weight    nullable.Value[float64]
}

func (s *Service) Update(ctx context.Context, p access.Principal, id string, in UpdateInput) (Pet, error) {
	pet, err := s.load(ctx, id, LoadOptions{})
	if err != nil {
		return Pet{}, err
	}
	if err := access.CheckOwner(p, pet.OwnerUserID); err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		pet.Name = strings.TrimSpace(*in.Name)
	}
	if in.Species != nil {
		pet.Species = Species(strings.ToLower(strings.TrimSpace(string(*in.Species))))
	}
	if in.Breed != nil {
		pet.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Gender != nil {
		pet.Gender = *in.Gender
	}
	if in.MicrochipNumber != nil {
		pet.MicrochipNumber = strings.TrimSpace(*in.MicrochipNumber)
	}
	if in.Temperament != nil {
		pet.Temperament = strings.TrimSpace(*in.Temperament)
	}
	if in.BehaviorNotes != nil {
		pet.BehaviorNotes = cleanNotes(*in.BehaviorNotes)
	}
	pet.BirthDate = in.BirthDate.Apply(pet.BirthDate)
	pet.Weight = in.Weight.Apply(pet.Weight)
	pet.UpdatedAt = s.now()

	if err := s.validate(pet); err != nil {
		return Pet{}, err
	}
	if err := s.repo.Update(ctx, pet); err != nil {
		return Pet{}, apperr.FromStorage(s.log, "pets.update", err)
	}
	return s.load(ctx, pet.ID, LoadOptions{Owner: true})
}

// Delete es soft delete: la mascota desaparece de las consultas normales pero
// su historial (visitas, vacunas, etc.) queda intacto.
func (s *Service) Delete(ctx context.Context, p access.Principal, id string) error {
	pet, err := s.load(ctx, id, LoadOptions{})
	if err != nil {
		return err
	}
	if err := access.CheckOwner(p, pet.OwnerUserID); err != nil {
		return err
	}
	if err := s.repo.Deactivate(ctx, pet.ID, s.now()); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.NotFound("pet")
		}
		return apperr.FromStorage(s.log, "pets.deactivate", err)
	}
	return nil
}

// OwnerOf expone el owner de una mascota activa.
// Se usa para evitar ciclos de imports entre módulos (pets <-> medical, appointments, ...).
func (s *Service) OwnerOf(ctx context.Context, petID string) (string, error) {
	pet, err := s.load(ctx, petID, LoadOptions{})
	if err != nil {
		return "", err
	}
	return pet.OwnerUserID, nil
}

// HistoricalOwnerOf incluye mascotas dadas de baja: los registros históricos
// siguen siendo consultables por id.
func (s *Service) HistoricalOwnerOf(ctx context.Context, petID string) (string, error) {
	pet, err := s.load(ctx, petID, LoadOptions{IncludeInactive: true})
	if err != nil {
		return "", err
	}
	return pet.OwnerUserID, nil
}

func (s *Service) load(ctx context.Context, id string, opts LoadOptions) (Pet, error) {
	id, err := apperr.ParseID("petID", id)
	if err != nil {
		return Pet{}, err
	}
	pet, err := s.repo.GetByID(ctx, id, opts)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Pet{}, apperr.NotFound("pet")
		}
		return Pet{}, apperr.FromStorage(s.log, "pets.get", err)
	}
	return pet, nil
}

func (s *Service) validate(p Pet) error {
	if p.Name == "" {
		return apperr.Validation("name is required")
	}
	if len(p.Name) > maxNameLen {
		return apperr.Validation("name must have at most %d characters", maxNameLen)
	}
	if !p.Species.Valid() {
		return apperr.Validation("species must be one of dog, cat, bird, rabbit, rodent, reptile, other")
	}
	if !p.Gender.Valid() {
		return apperr.Validation("gender must be one of male, female, unknown")
	}
	if p.BirthDate != nil && p.BirthDate.After(s.now()) {
		return apperr.Validation("birth_date cannot be in the future")
	}
	if p.Weight != nil && (*p.Weight <= 0 || *p.Weight > maxWeightKg) {
		return apperr.Validation("weight must be between 0 and %d kg", maxWeightKg)
	}
	for _, n := range p.BehaviorNotes {
		if len(n) > maxBehaviorNote {
			return apperr.Validation("behavior notes must have at most %d characters each", maxBehaviorNote)
		}
	}
	return nil
}

func cleanNotes(in []string) []string {
	out := make([]string, 0, len(in))
	for _, n := range in {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

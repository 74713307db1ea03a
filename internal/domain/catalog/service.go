package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-shop-api/internal/domain/access"
	"pet-shop-api/internal/platform/apperr"
	"pet-shop-api/internal/platform/logger"
	"pet-shop-api/internal/platform/pagination"
)

const maxNameLen = 120

type Service struct {
	repo Repository
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{repo: repo, log: log, now: time.Now}
}

type CreateInput struct {
	Name            string
	Description     string
	Category        string
	Price           float64
	DurationMinutes int
}

func (s *Service) Create(ctx context.Context, p access.Principal, in CreateInput) (Item, error) {
	if err := access.RequireElevated(p); err != nil {
		return Item{}, err
	}

	now := s.now()
	it := Item{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(in.Name),
		Description:     strings.TrimSpace(in.Description),
		Category:        strings.ToLower(strings.TrimSpace(in.Category)),
		Price:           in.Price,
		DurationMinutes: in.DurationMinutes,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := validate(it); err != nil {
		return Item{}, err
	}

	if err := s.repo.Create(ctx, it); err != nil {
		return Item{}, apperr.FromStorage(s.log, "catalog.create", err)
	}
	return it, nil
}

// List es público; los inactivos solo los ve staff.
func (s *Service) List(ctx context.Context, p access.Principal, f ListFilter) (pagination.Result[Item], error) {
	f.Page = f.Page.Normalize()
	f.Category = strings.ToLower(strings.TrimSpace(f.Category))
	f.Query = strings.TrimSpace(f.Query)
	if !p.IsElevated() {
		f.IncludeInactive = false
	}

	items, total, err := s.repo.List(ctx, f)
	if err != nil {
		return pagination.Result[Item]{}, apperr.FromStorage(s.log, "catalog.list", err)
	}
	return pagination.NewResult(items, total, f.Page), nil
}

func (s *Service) Get(ctx context.Context, p access.Principal, id string) (Item, error) {
	it, err := s.load(ctx, id)
	if err != nil {
		return Item{}, err
	}
	if !it.IsActive && !p.IsElevated() {
		return Item{}, apperr.NotFound("service")
	}
	return it, nil
}

// ActiveItem lo usan las citas: el servicio tiene que existir y estar activo.
func (s *Service) ActiveItem(ctx context.Context, id string) (Item, error) {
	it, err := s.load(ctx, id)
	if err != nil {
		return Item{}, err
	}
	if !it.IsActive {
		return Item{}, apperr.NotFound("service")
	}
	return it, nil
}

type UpdateInput struct {
	Name            *string
	Description     *string
	Category        *string
	Price           *float64
	DurationMinutes *int
	IsActive        *bool
}

func (s *Service) Update(ctx context.Context, p access.Principal, id string, in UpdateInput) (Item, error) {
	if err := access.RequireElevated(p); err != nil {
		return Item{}, err
	}
	it, err := s.load(ctx, id)
	if err != nil {
		return Item{}, err
	}

	if in.Name != nil {
		it.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		it.Description = strings.TrimSpace(*in.Description)
	}
	if in.Category != nil {
		it.Category = strings.ToLower(strings.TrimSpace(*in.Category))
	}
	if in.Price != nil {
		it.Price = *in.Price
	}
	if in.DurationMinutes != nil {
		it.DurationMinutes = *in.DurationMinutes
	}
	if in.IsActive != nil {
		it.IsActive = *in.IsActive
	}
	it.UpdatedAt = s.now()

	if err := validate(it); err != nil {
		return Item{}, err
	}
	if err := s.repo.Update(ctx, it); err != nil {
		return Item{}, apperr.FromStorage(s.log, "catalog.update", err)
	}
	return it, nil
}

// Delete es físico; si hay citas que lo referencian la FK lo impide (409).
func (s *Service) Delete(ctx context.Context, p access.Principal, id string) error {
	if err := access.RequireElevated(p); err != nil {
		return err
	}
	it, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, it.ID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.NotFound("service")
		}
		err = apperr.FromStorage(s.log, "catalog.delete", err)
		if errors.Is(err, apperr.ErrConflict) {
			return apperr.Conflict("service has appointments", err)
		}
		return err
	}
	return nil
}

func (s *Service) load(ctx context.Context, id string) (Item, error) {
	id, err := apperr.ParseID("serviceID", id)
	if err != nil {
		return Item{}, err
	}
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Item{}, apperr.NotFound("service")
		}
		return Item{}, apperr.FromStorage(s.log, "catalog.get", err)
	}
	return it, nil
}

func validate(it Item) error {
	if it.Name == "" {
		return apperr.Validation("name is required")
	}
	if len(it.Name) > maxNameLen {
		return apperr.Validation("name is too long")
	}
	if it.Price < 0 {
		return apperr.Validation("price cannot be negative")
	}
	if it.DurationMinutes < 0 {
		return apperr.Validation("duration_minutes cannot be negative")
	}
	return nil
}

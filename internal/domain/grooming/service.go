package grooming

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

const (
	maxServices    = 20
	maxDurationMin = 24 * 60
)

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

type CreateInput struct {
	SessionDate       time.Time
	ServicesPerformed []string
	ServiceCost       float64
	DurationMinutes   int
	Notes             string
}

func (s *Service) Create(ctx context.Context, p access.Principal, petID string, in CreateInput) (Session, error) {
	petID, err := apperr.ParseID("petID", petID)
	if err != nil {
		return Session{}, err
	}
	if err := access.RequireElevated(p); err != nil {
		return Session{}, err
	}
	if _, err := s.pets.OwnerOf(ctx, petID); err != nil {
		return Session{}, err
	}

	now := s.now()
	sess := Session{
		ID:                uuid.NewString(),
		PetID:             petID,
		GroomerID:         p.ID,
		SessionDate:       in.SessionDate,
		ServicesPerformed: cleanServices(in.ServicesPerformed),
		ServiceCost:       in.ServiceCost,
		DurationMinutes:   in.DurationMinutes,
		Notes:             strings.TrimSpace(in.Notes),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := validate(sess); err != nil {
		return Session{}, err
	}

	if err := s.repo.Create(ctx, sess); err != nil {
		return Session{}, apperr.FromStorage(s.log, "grooming.create", err)
	}
	return sess, nil
}

func (s *Service) ListByPet(ctx context.Context, p access.Principal, petID string, page pagination.Params) (pagination.Result[Session], error) {
	petID, err := apperr.ParseID("petID", petID)
	if err != nil {
		return pagination.Result[Session]{}, err
	}
	ownerID, err := s.pets.OwnerOf(ctx, petID)
	if err != nil {
		return pagination.Result[Session]{}, err
	}
	if err := access.CheckOwner(p, ownerID); err != nil {
		return pagination.Result[Session]{}, err
	}

	page = page.Normalize()
	items, err := s.repo.ListByPet(ctx, petID, page.Limit, page.Offset())
	if err != nil {
		return pagination.Result[Session]{}, apperr.FromStorage(s.log, "grooming.list", err)
	}
	total, err := s.repo.CountByPet(ctx, petID)
	if err != nil {
		return pagination.Result[Session]{}, apperr.FromStorage(s.log, "grooming.count", err)
	}
	return pagination.NewResult(items, total, page), nil
}

func (s *Service) Get(ctx context.Context, p access.Principal, petID, id string) (Session, error) {
	sess, err := s.load(ctx, petID, id)
	if err != nil {
		return Session{}, err
	}
	ownerID, err := s.pets.HistoricalOwnerOf(ctx, sess.PetID)
	if err != nil {
		return Session{}, err
	}
	if err := access.CheckOwner(p, ownerID); err != nil {
		return Session{}, err
	}
	return sess, nil
}

type UpdateInput struct {
	SessionDate       *time.Time
	ServicesPerformed *[]string
	ServiceCost       *float64
	DurationMinutes   *int
	Notes             *string
}

func (s *Service) Update(ctx context.Context, p access.Principal, petID, id string, in UpdateInput) (Session, error) {
	if err := access.RequireElevated(p); err != nil {
		return Session{}, err
	}
	sess, err := s.load(ctx, petID, id)
	if err != nil {
		return Session{}, err
	}

	if in.SessionDate != nil {
		sess.SessionDate = *in.SessionDate
	}
	if in.ServicesPerformed != nil {
		sess.ServicesPerformed = cleanServices(*in.ServicesPerformed)
	}
	if in.ServiceCost != nil {
		sess.ServiceCost = *in.ServiceCost
	}
	if in.DurationMinutes != nil {
		sess.DurationMinutes = *in.DurationMinutes
	}
	if in.Notes != nil {
		sess.Notes = strings.TrimSpace(*in.Notes)
	}
	sess.UpdatedAt = s.now()

	if err := validate(sess); err != nil {
		return Session{}, err
	}
	if err := s.repo.Update(ctx, sess); err != nil {
		return Session{}, apperr.FromStorage(s.log, "grooming.update", err)
	}
	return sess, nil
}

func (s *Service) Delete(ctx context.Context, p access.Principal, petID, id string) error {
	if err := access.RequireElevated(p); err != nil {
		return err
	}
	sess, err := s.load(ctx, petID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, sess.ID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.NotFound("grooming session")
		}
		return apperr.FromStorage(s.log, "grooming.delete", err)
	}
	return nil
}

func (s *Service) load(ctx context.Context, petID, id string) (Session, error) {
	petID, err := apperr.ParseID("petID", petID)
	if err != nil {
		return Session{}, err
	}
	id, err = apperr.ParseID("sessionID", id)
	if err != nil {
		return Session{}, err
	}

	sess, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Session{}, apperr.NotFound("grooming session")
		}
		return Session{}, apperr.FromStorage(s.log, "grooming.get", err)
	}
	if sess.PetID != petID {
		return Session{}, apperr.NotFound("grooming session")
	}
	return sess, nil
}

func validate(sess Session) error {
	if sess.SessionDate.IsZero() {
		return apperr.Validation("session_date is required")
	}
	if len(sess.ServicesPerformed) == 0 {
		return apperr.Validation("services_performed must have at least one item")
	}
	if len(sess.ServicesPerformed) > maxServices {
		return apperr.Validation("services_performed has too many items")
	}
	if sess.ServiceCost < 0 {
		return apperr.Validation("service_cost cannot be negative")
	}
	if sess.DurationMinutes < 0 || sess.DurationMinutes > maxDurationMin {
		return apperr.Validation("duration_minutes out of range")
	}
	return nil
}

func cleanServices(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

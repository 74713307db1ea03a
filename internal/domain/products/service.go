package products

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-shop-api/internal/domain/access"
	"pet-shop-api/internal/platform/apperr"
	"pet-shop-api/internal/platform/logger"
	"pet-shop-api/internal/platform/pagination"
)

const maxNameLen = 150

var skuPattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9\-]{1,63}$`)

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
	Name        string
	Description string
	SKU         string
	Category    string
	Price       float64
	Stock       int
}

func (s *Service) Create(ctx context.Context, p access.Principal, in CreateInput) (Product, error) {
	if err := access.RequireElevated(p); err != nil {
		return Product{}, err
	}

	now := s.now()
	prod := Product{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		SKU:         normalizeSKU(in.SKU),
		Category:    strings.ToLower(strings.TrimSpace(in.Category)),
		Price:       in.Price,
		Stock:       in.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := validate(prod); err != nil {
		return Product{}, err
	}

	if err := s.repo.Create(ctx, prod); err != nil {
		return Product{}, s.storageErr("products.create", err)
	}
	return prod, nil
}

func (s *Service) List(ctx context.Context, f ListFilter) (pagination.Result[Product], error) {
	f.Page = f.Page.Normalize()
	f.Category = strings.ToLower(strings.TrimSpace(f.Category))
	f.Query = strings.TrimSpace(f.Query)

	items, total, err := s.repo.List(ctx, f)
	if err != nil {
		return pagination.Result[Product]{}, apperr.FromStorage(s.log, "products.list", err)
	}
	return pagination.NewResult(items, total, f.Page), nil
}

func (s *Service) Get(ctx context.Context, id string) (Product, error) {
	id, err := apperr.ParseID("productID", id)
	if err != nil {
		return Product{}, err
	}
	prod, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Product{}, apperr.NotFound("product")
		}
		return Product{}, apperr.FromStorage(s.log, "products.get", err)
	}
	return prod, nil
}

type UpdateInput struct {
	Name        *string
	Description *string
	SKU         *string
	Category    *string
	Price       *float64
	Stock       *int
}

func (s *Service) Update(ctx context.Context, p access.Principal, id string, in UpdateInput) (Product, error) {
	if err := access.RequireElevated(p); err != nil {
		return Product{}, err
	}
	prod, err := s.Get(ctx, id)
	if err != nil {
		return Product{}, err
	}

	if in.Name != nil {
		prod.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		prod.Description = strings.TrimSpace(*in.Description)
	}
	if in.SKU != nil {
		prod.SKU = normalizeSKU(*in.SKU)
	}
	if in.Category != nil {
		prod.Category = strings.ToLower(strings.TrimSpace(*in.Category))
	}
	if in.Price != nil {
		prod.Price = *in.Price
	}
	if in.Stock != nil {
		prod.Stock = *in.Stock
	}
	prod.UpdatedAt = s.now()

	if err := validate(prod); err != nil {
		return Product{}, err
	}
	if err := s.repo.Update(ctx, prod); err != nil {
		return Product{}, s.storageErr("products.update", err)
	}
	return prod, nil
}

func (s *Service) Delete(ctx context.Context, p access.Principal, id string) error {
	if err := access.RequireElevated(p); err != nil {
		return err
	}
	prod, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, prod.ID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.NotFound("product")
		}
		return apperr.FromStorage(s.log, "products.delete", err)
	}
	return nil
}

// storageErr da un mensaje específico al sku duplicado.
func (s *Service) storageErr(op string, err error) error {
	err = apperr.FromStorage(s.log, op, err)
	if errors.Is(err, apperr.ErrConflict) && apperr.PublicMessage(err) == "duplicate value" {
		return apperr.Conflict("sku already exists", err)
	}
	return err
}

func normalizeSKU(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func validate(p Product) error {
	if p.Name == "" {
		return apperr.Validation("name is required")
	}
	if len(p.Name) > maxNameLen {
		return apperr.Validation("name is too long")
	}
	if !skuPattern.MatchString(p.SKU) {
		return apperr.Validation("sku must be 2-64 characters of A-Z, 0-9 or '-'")
	}
	if p.Price < 0 {
		return apperr.Validation("price cannot be negative")
	}
	if p.Stock < 0 {
		return apperr.Validation("stock cannot be negative")
	}
	return nil
}

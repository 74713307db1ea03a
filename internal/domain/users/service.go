package users

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"pet-shop-api/internal/platform/apperr"
	"pet-shop-api/internal/platform/logger"
	"pet-shop-api/internal/ports/auth"
)

const minPasswordLen = 8

// TokenIssuer firma tokens de acceso (lo implementa jwtauth.Manager).
type TokenIssuer interface {
	Issue(userID, email string, role auth.Role) (string, time.Time, error)
}

type Service struct {
	repo   Repository
	tokens TokenIssuer
	log    logger.Logger
	now    func() time.Time
	cost   int
}

func NewService(repo Repository, tokens TokenIssuer, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:   repo,
		tokens: tokens,
		log:    log,
		now:    time.Now,
		cost:   bcrypt.DefaultCost,
	}
}

type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

type Session struct {
	User      User
	Token     string
	ExpiresAt time.Time
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (Session, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return Session{}, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Session{}, apperr.Validation("name is required")
	}
	if len(in.Password) < minPasswordLen {
		return Session{}, apperr.Validation("password must have at least %d characters", minPasswordLen)
	}

	u, err := s.create(ctx, email, name, in.Password, auth.RoleUser)
	if err != nil {
		return Session{}, err
	}
	return s.session(u)
}

func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return Session{}, apperr.Validation("email and password are required")
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Session{}, apperr.Unauthorized("invalid credentials")
		}
		return Session{}, apperr.FromStorage(s.log, "users.get_by_email", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return Session{}, apperr.Unauthorized("invalid credentials")
	}
	return s.session(u)
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	u, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return User{}, apperr.NotFound("user")
		}
		return User{}, apperr.FromStorage(s.log, "users.get", err)
	}
	return u, nil
}

// EnsureAdmin crea (o promueve) la cuenta admin de bootstrap. Idempotente.
func (s *Service) EnsureAdmin(ctx context.Context, email, password string) (User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return User{}, err
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role.IsElevated() {
			return existing, nil
		}
		existing.Role = auth.RoleAdmin
		existing.UpdatedAt = s.now()
		if err := s.repo.UpdateRole(ctx, existing.ID, existing.Role, existing.UpdatedAt); err != nil {
			return User{}, apperr.FromStorage(s.log, "users.update_role", err)
		}
		s.log.Info("bootstrap admin promoted", map[string]any{"user_id": existing.ID})
		return existing, nil
	case errors.Is(err, apperr.ErrNotFound):
		if len(password) < minPasswordLen {
			return User{}, apperr.Validation("admin password must have at least %d characters", minPasswordLen)
		}
		u, err := s.create(ctx, email, "Administrator", password, auth.RoleAdmin)
		if err != nil {
			return User{}, err
		}
		s.log.Info("bootstrap admin created", map[string]any{"user_id": u.ID})
		return u, nil
	default:
		return User{}, apperr.FromStorage(s.log, "users.get_by_email", err)
	}
}

func (s *Service) create(ctx context.Context, email, name, password string, role auth.Role) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return User{}, apperr.Internal(err)
	}

	now := s.now()
	u := User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, apperr.FromStorage(s.log, "users.create", err)
	}
	return u, nil
}

func (s *Service) session(u User) (Session, error) {
	if s.tokens == nil {
		return Session{}, apperr.Internal(errors.New("token issuer not configured"))
	}
	token, exp, err := s.tokens.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		return Session{}, apperr.Internal(err)
	}
	return Session{User: u, Token: token, ExpiresAt: exp}, nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", apperr.Validation("email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", apperr.Validation("email is invalid")
	}
	return email, nil
}

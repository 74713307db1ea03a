// Package apperr define la taxonomía de errores compartida por los servicios
// y la clasificación de fallas de storage en tipos visibles para el cliente.
package apperr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"pet-shop-api/internal/platform/logger"
)

var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInternal     = errors.New("internal error")
)

// Error lleva un Kind (uno de los sentinels), un mensaje apto para el cliente
// y una causa opcional que nunca se expone.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Kind != ErrInternal {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func Validation(format string, args ...any) error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(resource string) error {
	return &Error{Kind: ErrNotFound, Message: resource + " not found"}
}

func Forbidden() error {
	return &Error{Kind: ErrForbidden, Message: "forbidden"}
}

func Unauthorized(msg string) error {
	return &Error{Kind: ErrUnauthorized, Message: msg}
}

func Conflict(msg string, cause error) error {
	return &Error{Kind: ErrConflict, Message: msg, Err: cause}
}

func Internal(cause error) error {
	return &Error{Kind: ErrInternal, Message: "internal error", Err: cause}
}

// Kind devuelve el sentinel al que pertenece err; lo no clasificado es interno.
func Kind(err error) error {
	for _, k := range []error{ErrValidation, ErrUnauthorized, ErrForbidden, ErrNotFound, ErrConflict, ErrInternal} {
		if errors.Is(err, k) {
			return k
		}
	}
	return ErrInternal
}

// PublicMessage es lo que ve el cliente.
func PublicMessage(err error) string {
	var ae *Error
	if errors.As(err, &ae) && ae.Kind != ErrInternal {
		return ae.Message
	}
	switch Kind(err) {
	case ErrInternal:
		return "internal error"
	default:
		return Kind(err).Error()
	}
}

// sqlStater lo cumple *pgconn.PgError.
type sqlStater interface {
	SQLState() string
}

// FromStorage clasifica un error de repositorio en el borde del servicio.
// Los errores ya clasificados pasan tal cual y las violaciones de constraint
// pasan a Conflict. El resto se loguea con detalle y sale como Internal.
func FromStorage(log logger.Logger, op string, err error) error {
	if err == nil {
		return nil
	}
	if Kind(err) != ErrInternal || isClassified(err) {
		return err
	}

	var st sqlStater
	if errors.As(err, &st) {
		if msg, ok := constraintMessages[st.SQLState()]; ok {
			if log != nil {
				log.Warn("storage constraint violation", map[string]any{"op": op, "sqlstate": st.SQLState(), "error": err})
			}
			return Conflict(msg, err)
		}
	}

	if log != nil {
		log.Error("storage failure", map[string]any{"op": op, "error": err})
	}
	return Internal(err)
}

var constraintMessages = map[string]string{
	"23505": "duplicate value",
	"23503": "referenced record does not exist",
	"23502": "missing required value",
	"23514": "value out of allowed range",
}

func isClassified(err error) bool {
	var ae *Error
	return errors.As(err, &ae)
}

// ParseID valida que raw sea un UUID; se usa antes de tocar storage.
func ParseID(field, raw string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", Validation("%s must be a valid uuid", field)
	}
	return id.String(), nil
}

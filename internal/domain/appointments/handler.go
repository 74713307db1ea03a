package appointments

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-shop-api/internal/middleware"
	"pet-shop-api/internal/platform/httpx"
	"pet-shop-api/internal/platform/pagination"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/appointments", func(ar chi.Router) {
		ar.Post("/", createAppointmentHandler(svc))
		ar.Get("/", listAppointmentsHandler(svc))
		ar.Get("/{appointmentID}", getAppointmentHandler(svc))
		ar.Patch("/{appointmentID}", updateAppointmentHandler(svc))
		ar.Delete("/{appointmentID}", deleteAppointmentHandler(svc))
	})
}

type createAppointmentRequest struct {
	PetID     string `json:"pet_id"`
	ServiceID string `json:"service_id"`
	Date      string `json:"date"` // RFC3339
	Notes     string `json:"notes"`
}

type updateAppointmentRequest struct {
	Date   *string `json:"date"`
	Status *Status `json:"status" enums:"pending,confirmed,completed,cancelled"`
	Notes  *string `json:"notes"`
}

type AppointmentResponse struct {
	ID         string    `json:"id"`
	PetID      string    `json:"pet_id"`
	ServiceID  string    `json:"service_id"`
	CustomerID string    `json:"customer_id"`
	Date       time.Time `json:"date"`
	Status     Status    `json:"status"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// createAppointmentHandler godoc
// @Summary Agendar turno
// @Description La mascota debe ser del usuario (salvo staff) y el servicio debe existir y estar activo. El turno arranca en `pending`.
// @Tags appointments
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param payload body createAppointmentRequest true "Datos del turno"
// @Success 201 {object} AppointmentResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /appointments [post]
func createAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := middleware.RequirePrincipal(r)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		var req createAppointmentRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		var date time.Time
		if strings.TrimSpace(req.Date) != "" {
			date, err = httpx.ParseDate("date", req.Date)
			if err != nil {
				httpx.WriteError(w, err)
				return
			}
		}

		a, err := svc.Create(r.Context(), p, CreateInput{
			PetID:     req.PetID,
			ServiceID: req.ServiceID,
			Date:      date,
			Notes:     req.Notes,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, ToResponse(a))
	}
}

// listAppointmentsHandler godoc
// @Summary Listar turnos
// @Description Un usuario común ve solo sus turnos. Orden por fecha ascendente.
// @Tags appointments
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param pet_id query string false "Filtrar por mascota"
// @Param status query string false "pending|confirmed|completed|cancelled"
// @Param from query string false "Desde (RFC3339 o YYYY-MM-DD)"
// @Param to query string false "Hasta (RFC3339 o YYYY-MM-DD)"
// @Param page query int false "Página (default 1)"
// @Param limit query int false "Tamaño de página (1-100, default 20)"
// @Success 200 {object} pagination.Result[AppointmentResponse]
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /appointments [get]
func listAppointmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := middleware.RequirePrincipal(r)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		q := r.URL.Query()
		f := ListFilter{
			PetID:  strings.TrimSpace(q.Get("pet_id")),
			Status: Status(strings.ToLower(strings.TrimSpace(q.Get("status")))),
			Page:   pagination.FromQuery(q),
		}
		from, to := q.Get("from"), q.Get("to")
		if f.From, err = httpx.ParseOptionalDate("from", &from); err != nil {
			httpx.WriteError(w, err)
			return
		}
		if f.To, err = httpx.ParseOptionalDate("to", &to); err != nil {
			httpx.WriteError(w, err)
			return
		}

		res, err := svc.List(r.Context(), p, f)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, pagination.Map(res, ToResponse))
	}
}

// getAppointmentHandler godoc
// @Summary Obtener turno
// @Tags appointments
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param appointmentID path string true "ID del turno (uuid)"
// @Success 200 {object} AppointmentResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /appointments/{appointmentID} [get]
func getAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := middleware.RequirePrincipal(r)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		a, err := svc.Get(r.Context(), p, chi.URLParam(r, "appointmentID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, ToResponse(a))
	}
}

// updateAppointmentHandler godoc
// @Summary Actualizar turno
// @Description El cliente puede reprogramar o cancelar; confirmar y completar es de staff.
// @Tags appointments
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param appointmentID path string true "ID del turno (uuid)"
// @Param payload body updateAppointmentRequest true "Campos a modificar"
// @Success 200 {object} AppointmentResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /appointments/{appointmentID} [patch]
func updateAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := middleware.RequirePrincipal(r)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		var req updateAppointmentRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		in := UpdateInput{Status: req.Status, Notes: req.Notes}
		if req.Date != nil {
			t, err := httpx.ParseDate("date", *req.Date)
			if err != nil {
				httpx.WriteError(w, err)
				return
			}
			in.Date = &t
		}

		a, err := svc.Update(r.Context(), p, chi.URLParam(r, "appointmentID"), in)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, ToResponse(a))
	}
}

// deleteAppointmentHandler godoc
// @Summary Eliminar turno
// @Tags appointments
// @Param Authorization header string false "Bearer token"
// @Param appointmentID path string true "ID del turno (uuid)"
// @Success 204
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /appointments/{appointmentID} [delete]
func deleteAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := middleware.RequirePrincipal(r)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		if err := svc.Delete(r.Context(), p, chi.URLParam(r, "appointmentID")); err != nil {
			httpx.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ToResponse(a Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:         a.ID,
		PetID:      a.PetID,
		ServiceID:  a.ServiceID,
		CustomerID: a.CustomerID,
		Date:       a.Date,
		Status:     a.Status,
		Notes:      a.Notes,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

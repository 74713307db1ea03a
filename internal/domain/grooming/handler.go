package grooming

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
	r.Route("/pets/{petID}/grooming", func(gr chi.Router) {
		gr.Post("/", createSessionHandler(svc))
		gr.Get("/", listSessionsHandler(svc))
		gr.Get("/{sessionID}", getSessionHandler(svc))
		gr.Patch("/{sessionID}", updateSessionHandler(svc))
		gr.Delete("/{sessionID}", deleteSessionHandler(svc))
	})
}

type createSessionRequest struct {
	SessionDate       string   `json:"session_date"`
	ServicesPerformed []string `json:"services_performed"`
	ServiceCost       float64  `json:"service_cost"`
	DurationMinutes   int      `json:"duration_minutes"`
	Notes             string   `json:"notes"`
}

type updateSessionRequest struct {
	SessionDate       *string   `json:"session_date"`
	ServicesPerformed *[]string `json:"services_performed"`
	ServiceCost       *float64  `json:"service_cost"`
	DurationMinutes   *int      `json:"duration_minutes"`
	Notes             *string   `json:"notes"`
}

type SessionResponse struct {
	ID                string    `json:"id"`
	PetID             string    `json:"pet_id"`
	GroomerID         string    `json:"groomer_id"`
	SessionDate       time.Time `json:"session_date"`
	ServicesPerformed []string  `json:"services_performed"`
	ServiceCost       float64   `json:"service_cost"`
	DurationMinutes   int       `json:"duration_minutes"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// createSessionHandler godoc
// @Summary Registrar sesión de grooming
// @Description Solo staff. El groomer queda registrado como el usuario autenticado.
// @Tags grooming
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param petID path string true "ID de la mascota (uuid)"
// @Param payload body createSessionRequest true "Datos de la sesión"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /pets/{petID}/grooming [post]
func createSessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := middleware.RequirePrincipal(r)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		var req createSessionRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		var date time.Time
		if strings.TrimSpace(req.SessionDate) != "" {
			date, err = httpx.ParseDate("session_date", req.SessionDate)
			if err != nil {
				httpx.WriteError(w, err)
				return
			}
		}

		sess, err := svc.Create(r.Context(), p, chi.URLParam(r, "petID"), CreateInput{
			SessionDate:       date,
			ServicesPerformed: req.ServicesPerformed,
			ServiceCost:       req.ServiceCost,
			DurationMinutes:   req.DurationMinutes,
			Notes:             req.Notes,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, ToResponse(sess))
	}
}

// listSessionsHandler godoc
// @Summary Historial de grooming
// @Tags grooming
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param petID path string true "ID de la mascota (uuid)"
// @Param page query int false "Página (default 1)"
// @Param limit query int false "Tamaño de página (1-100, default 20)"
// @Success 200 {object} pagination.Result[SessionResponse]
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /pets/{petID}/grooming [get]
func listSessionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := middleware.RequirePrincipal(r)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		res, err := svc.ListByPet(r.Context(), p, chi.URLParam(r, "petID"), pagination.FromQuery(r.URL.Query()))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, pagination.Map(res, ToResponse))
	}
}

// getSessionHandler godoc
// @Summary Obtener sesión de grooming
// @Tags grooming
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param petID path string true "ID de la mascota (uuid)"
// @Param sessionID path string true "ID de la sesión (uuid)"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /pets/{petID}/grooming/{sessionID} [get]
func getSessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := middleware.RequirePrincipal(r)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		sess, err := svc.Get(r.Context(), p, chi.URLParam(r, "petID"), chi.URLParam(r, "sessionID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, ToResponse(sess))
	}
}

// updateSessionHandler godoc
// @Summary Actualizar sesión de grooming
// @Tags grooming
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param petID path string true "ID de la mascota (uuid)"
// @Param sessionID path string true "ID de la sesión (uuid)"
// @Param payload body updateSessionRequest true "Campos a modificar"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /pets/{petID}/grooming/{sessionID} [patch]
func updateSessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := middleware.RequirePrincipal(r)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		var req updateSessionRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		in := UpdateInput{
			ServicesPerformed: req.ServicesPerformed,
			ServiceCost:       req.ServiceCost,
			DurationMinutes:   req.DurationMinutes,
			Notes:             req.Notes,
		}
		if req.SessionDate != nil {
			t, err := httpx.ParseDate("session_date", *req.SessionDate)
			if err != nil {
				httpx.WriteError(w, err)
				return
			}
			in.SessionDate = &t
		}

		sess, err := svc.Update(r.Context(), p, chi.URLParam(r, "petID"), chi.URLParam(r, "sessionID"), in)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, ToResponse(sess))
	}
}

// deleteSessionHandler godoc
// @Summary Eliminar sesión de grooming
// @Tags grooming
// @Param Authorization header string false "Bearer token"
// @Param petID path string true "ID de la mascota (uuid)"
// @Param sessionID path string true "ID de la sesión (uuid)"
// @Success 204
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /pets/{petID}/grooming/{sessionID} [delete]
func deleteSessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := middleware.RequirePrincipal(r)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		if err := svc.Delete(r.Context(), p, chi.URLParam(r, "petID"), chi.URLParam(r, "sessionID")); err != nil {
			httpx.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ToResponse(s Session) SessionResponse {
	services := s.ServicesPerformed
	if services == nil {
		services = []string{}
	}
	return SessionResponse{
		ID:                s.ID,
		PetID:             s.PetID,
		GroomerID:         s.GroomerID,
		SessionDate:       s.SessionDate,
		ServicesPerformed: services,
		ServiceCost:       s.ServiceCost,
		DurationMinutes:   s.DurationMinutes,
		Notes:             s.Notes,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

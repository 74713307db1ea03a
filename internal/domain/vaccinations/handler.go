package vaccinations

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-shop-api/internal/middleware"
	"pet-shop-api/internal/platform/httpx"
	"pet-shop-api/internal/platform/nullable"
	"pet-shop-api/internal/platform/pagination"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets/{petID}/vaccinations", func(vr chi.Router) {
		vr.Post("/", createVaccinationHandler(svc))
		vr.Get("/", listVaccinationsHandler(svc))
		vr.Get("/{vaccinationID}", getVaccinationHandler(svc))
		vr.Patch("/{vaccinationID}", updateVaccinationHandler(svc))
		vr.Delete("/{vaccinationID}", deleteVaccinationHandler(svc))
	})
}

type createVaccinationRequest struct {
	VaccineName      string `json:"vaccine_name"`
	BatchNumber      string `json:"batch_number"`
	AdministeredDate string `json:"administered_date"`
	NextDueDate      string `json:"next_due_date"` // opcional
	Notes            string `json:"notes"`
}

type updateVaccinationRequest struct {
	VaccineName      *string `json:"vaccine_name"`
	BatchNumber      *string `json:"batch_number"`
	AdministeredDate *string `json:"administered_date"`
	Notes            *string `json:"notes"`

	NextDueDate nullable.Value[string] `json:"next_due_date" swaggertype:"string"`
}

type VaccinationResponse struct {
	ID               string     `json:"id"`
	PetID            string     `json:"pet_id"`
	VeterinarianID   string     `json:"veterinarian_id"`
	VaccineName      string     `json:"vaccine_name"`
	BatchNumber      string     `json:"batch_number,omitempty"`
	AdministeredDate time.Time  `json:"administered_date"`
	NextDueDate      *time.Time `json:"next_due_date,omitempty"`
	Status           Status     `json:"status" enums:"up_to_date,due_soon,overdue"`
	Notes            string     `json:"notes,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// createVaccinationHandler godoc
// @Summary Registrar vacuna
// @Description Solo staff.
// @Tags vaccinations
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param petID path string true "ID de la mascota (uuid)"
// @Param payload body createVaccinationRequest true "Datos de la vacuna"
// @Success 201 {object} VaccinationResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /pets/{petID}/vaccinations [post]
func createVaccinationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := middleware.RequirePrincipal(r)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		var req createVaccinationRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		var administered time.Time
		if strings.TrimSpace(req.AdministeredDate) != "" {
			administered, err = httpx.ParseDate("administered_date", req.AdministeredDate)
			if err != nil {
				httpx.WriteError(w, err)
				return
			}
		}
		next, err := httpx.ParseOptionalDate("next_due_date", &req.NextDueDate)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		v, err := svc.Create(r.Context(), p, chi.URLParam(r, "petID"), CreateInput{
			VaccineName:      req.VaccineName,
			BatchNumber:      req.BatchNumber,
			AdministeredDate: administered,
			NextDueDate:      next,
			Notes:            req.Notes,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, ToResponse(v, svc.Now()))
	}
}

// listVaccinationsHandler godoc
// @Summary Listar vacunas
// @Description Más recientes primero, con status derivado. Owner o admin.
// @Tags vaccinations
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param petID path string true "ID de la mascota (uuid)"
// @Param page query int false "Página (default 1)"
// @Param limit query int false "Tamaño de página (1-100, default 20)"
// @Success 200 {object} pagination.Result[VaccinationResponse]
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /pets/{petID}/vaccinations [get]
func listVaccinationsHandler(svc *Service) http.HandlerFunc {
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

		now := svc.Now()
		httpx.WriteJSON(w, http.StatusOK, pagination.Map(res, func(v Vaccination) VaccinationResponse {
			return ToResponse(v, now)
		}))
	}
}

// getVaccinationHandler godoc
// @Summary Obtener vacuna
// @Tags vaccinations
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param petID path string true "ID de la mascota (uuid)"
// @Param vaccinationID path string true "ID de la vacuna (uuid)"
// @Success 200 {object} VaccinationResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /pets/{petID}/vaccinations/{vaccinationID} [get]
func getVaccinationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := middleware.RequirePrincipal(r)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		v, err := svc.Get(r.Context(), p, chi.URLParam(r, "petID"), chi.URLParam(r, "vaccinationID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, ToResponse(v, svc.Now()))
	}
}

// updateVaccinationHandler godoc
// @Summary Actualizar vacuna
// @Description Solo staff. `next_due_date` acepta null para quitar el refuerzo.
// @Tags vaccinations
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param petID path string true "ID de la mascota (uuid)"
// @Param vaccinationID path string true "ID de la vacuna (uuid)"
// @Param payload body updateVaccinationRequest true "Campos a modificar"
// @Success 200 {object} VaccinationResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /pets/{petID}/vaccinations/{vaccinationID} [patch]
func updateVaccinationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := middleware.RequirePrincipal(r)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		var req updateVaccinationRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		in := UpdateInput{
			VaccineName: req.VaccineName,
			BatchNumber: req.BatchNumber,
			Notes:       req.Notes,
		}
		if req.AdministeredDate != nil {
			t, err := httpx.ParseDate("administered_date", *req.AdministeredDate)
			if err != nil {
				httpx.WriteError(w, err)
				return
			}
			in.AdministeredDate = &t
		}
		if req.NextDueDate.Set {
			next, err := httpx.ParseOptionalDate("next_due_date", req.NextDueDate.V)
			if err != nil {
				httpx.WriteError(w, err)
				return
			}
			in.NextDueDate = nullable.Value[time.Time]{Set: true, V: next}
		}

		v, err := svc.Update(r.Context(), p, chi.URLParam(r, "petID"), chi.URLParam(r, "vaccinationID"), in)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, ToResponse(v, svc.Now()))
	}
}

// deleteVaccinationHandler godoc
// @Summary Eliminar vacuna
// @Tags vaccinations
// @Param Authorization header string false "Bearer token"
// @Param petID path string true "ID de la mascota (uuid)"
// @Param vaccinationID path string true "ID de la vacuna (uuid)"
// @Success 204
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /pets/{petID}/vaccinations/{vaccinationID} [delete]
func deleteVaccinationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := middleware.RequirePrincipal(r)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		if err := svc.Delete(r.Context(), p, chi.URLParam(r, "petID"), chi.URLParam(r, "vaccinationID")); err != nil {
			httpx.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ToResponse(v Vaccination, now time.Time) VaccinationResponse {
	return VaccinationResponse{
		ID:               v.ID,
		PetID:            v.PetID,
		VeterinarianID:   v.VeterinarianID,
		VaccineName:      v.VaccineName,
		BatchNumber:      v.BatchNumber,
		AdministeredDate: v.AdministeredDate,
		NextDueDate:      v.NextDueDate,
		Status:           v.StatusAt(now),
		Notes:            v.Notes,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

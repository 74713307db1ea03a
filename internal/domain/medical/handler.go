package medical

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
	r.Route("/pets/{petID}/medical-records", func(mr chi.Router) {
		mr.Post("/", createRecordHandler(svc))
		mr.Get("/", listRecordsHandler(svc))
		mr.Get("/{recordID}", getRecordHandler(svc))
		mr.Patch("/{recordID}", amendRecordHandler(svc))
	})
}

type createRecordRequest struct {
	VisitDate     string    `json:"visit_date"` // RFC3339 o YYYY-MM-DD
	VisitType     VisitType `json:"visit_type" enums:"consultation,vaccination,surgery,emergency,checkup"`
	Reason        string    `json:"reason"`
	Diagnosis     string    `json:"diagnosis"`
	Treatment     string    `json:"treatment"`
	Notes         string    `json:"notes"`
	WeightAtVisit *float64  `json:"weight_at_visit"`
	ServiceCost   float64   `json:"service_cost"`
}

type amendRecordRequest struct {
	VisitDate   *string    `json:"visit_date"`
	VisitType   *VisitType `json:"visit_type"`
	Reason      *string    `json:"reason"`
	Diagnosis   *string    `json:"diagnosis"`
	Treatment   *string    `json:"treatment"`
	Notes       *string    `json:"notes"`
	ServiceCost *float64   `json:"service_cost"`

	WeightAtVisit nullable.Value[float64] `json:"weight_at_visit" swaggertype:"number"`
}

type RecordResponse struct {
	ID             string    `json:"id"`
	PetID          string    `json:"pet_id"`
	VeterinarianID string    `json:"veterinarian_id"`
	VisitDate      time.Time `json:"visit_date"`
	VisitType      VisitType `json:"visit_type"`
	Reason         string    `json:"reason"`
	Diagnosis      string    `json:"diagnosis,omitempty"`
	Treatment      string    `json:"treatment,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	WeightAtVisit  *float64  `json:"weight_at_visit,omitempty"`
	ServiceCost    float64   `json:"service_cost"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// createRecordHandler godoc
// @Summary Registrar visita
// @Description Solo staff. El veterinario queda registrado como el usuario autenticado.
// @Tags medical-records
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param petID path string true "ID de la mascota (uuid)"
// @Param payload body createRecordRequest true "Datos de la visita"
// @Success 201 {object} RecordResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /pets/{petID}/medical-records [post]
func createRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := middleware.RequirePrincipal(r)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		var req createRecordRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		var visit time.Time
		if strings.TrimSpace(req.VisitDate) != "" {
			visit, err = httpx.ParseDate("visit_date", req.VisitDate)
			if err != nil {
				httpx.WriteError(w, err)
				return
			}
		}

		rec, err := svc.Create(r.Context(), p, chi.URLParam(r, "petID"), CreateInput{
			VisitDate:     visit,
			VisitType:     VisitType(strings.ToLower(strings.TrimSpace(string(req.VisitType)))),
			Reason:        req.Reason,
			Diagnosis:     req.Diagnosis,
			Treatment:     req.Treatment,
			Notes:         req.Notes,
			WeightAtVisit: req.WeightAtVisit,
			ServiceCost:   req.ServiceCost,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, ToResponse(rec))
	}
}

// listRecordsHandler godoc
// @Summary Historia clínica
// @Description Visitas de la mascota, más recientes primero. Owner o admin.
// @Tags medical-records
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param petID path string true "ID de la mascota (uuid)"
// @Param page query int false "Página (default 1)"
// @Param limit query int false "Tamaño de página (1-100, default 20)"
// @Success 200 {object} pagination.Result[RecordResponse]
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /pets/{petID}/medical-records [get]
func listRecordsHandler(svc *Service) http.HandlerFunc {
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

// getRecordHandler godoc
// @Summary Obtener visita
// @Tags medical-records
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param petID path string true "ID de la mascota (uuid)"
// @Param recordID path string true "ID del registro (uuid)"
// @Success 200 {object} RecordResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /pets/{petID}/medical-records/{recordID} [get]
func getRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := middleware.RequirePrincipal(r)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		rec, err := svc.Get(r.Context(), p, chi.URLParam(r, "petID"), chi.URLParam(r, "recordID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, ToResponse(rec))
	}
}

// amendRecordHandler godoc
// @Summary Enmendar visita
// @Description Solo staff. PATCH parcial; `weight_at_visit` acepta null.
// @Tags medical-records
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param petID path string true "ID de la mascota (uuid)"
// @Param recordID path string true "ID del registro (uuid)"
// @Param payload body amendRecordRequest true "Campos a corregir"
// @Success 200 {object} RecordResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /pets/{petID}/medical-records/{recordID} [patch]
func amendRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := middleware.RequirePrincipal(r)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		var req amendRecordRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		in := AmendInput{
			VisitType:     req.VisitType,
			Reason:        req.Reason,
			Diagnosis:     req.Diagnosis,
			Treatment:     req.Treatment,
			Notes:         req.Notes,
			ServiceCost:   req.ServiceCost,
			WeightAtVisit: req.WeightAtVisit,
		}
		if req.VisitDate != nil {
			t, err := httpx.ParseDate("visit_date", *req.VisitDate)
			if err != nil {
				httpx.WriteError(w, err)
				return
			}
			in.VisitDate = &t
		}

		rec, err := svc.Amend(r.Context(), p, chi.URLParam(r, "petID"), chi.URLParam(r, "recordID"), in)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, ToResponse(rec))
	}
}

// ToResponse también lo usa el perfil consolidado.
func ToResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:             rec.ID,
		PetID:          rec.PetID,
		VeterinarianID: rec.VeterinarianID,
		VisitDate:      rec.VisitDate,
		VisitType:      rec.VisitType,
		Reason:         rec.Reason,
		Diagnosis:      rec.Diagnosis,
		Treatment:      rec.Treatment,
		Notes:          rec.Notes,
		WeightAtVisit:  rec.WeightAtVisit,
		ServiceCost:    rec.ServiceCost,
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}
}

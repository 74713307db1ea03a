package pets

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-shop-api/internal/domain/users"
	"pet-shop-api/internal/middleware"
	"pet-shop-api/internal/platform/httpx"
	"pet-shop-api/internal/platform/nullable"
	"pet-shop-api/internal/platform/pagination"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))

		// Perfil de mascota (owner o admin)
		pr.Get("/{petID}", getPetHandler(svc))
		pr.Patch("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

type createPetRequest struct {
	OwnerUserID     string   `json:"owner_user_id"` // solo admin
	Name            string   `json:"name"`
	Species         Species  `json:"species" enums:"dog,cat,bird,rabbit,rodent,reptile,other"`
	Breed           string   `json:"breed"`
	Gender          Gender   `json:"gender" enums:"male,female,unknown"`
	BirthDate       string   `json:"birth_date"` // YYYY-MM-DD opcional
	Weight          *float64 `json:"weight"`
	MicrochipNumber string   `json:"microchip_number"`
	Temperament     string   `json:"temperament"`
	BehaviorNotes   []string `json:"behavior_notes"`
}

type updatePetRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name            *string   `json:"name"`
	Species         *Species  `json:"species"`
	Breed           *string   `json:"breed"`
	Gender          *Gender   `json:"gender"`
	MicrochipNumber *string   `json:"microchip_number"`
	Temperament     *string   `json:"temperament"`
	BehaviorNotes   *[]string `json:"behavior_notes"`

	// Admiten null para limpiar.
	BirthDate nullable.Value[string]  `json:"birth_date" swaggertype:"string"`
	Weight    nullable.Value[float64] `json:"weight" swaggertype:"number"`
}

type petResponse struct {
	ID              string         `json:"id"`
	OwnerUserID     string         `json:"owner_user_id"`
	Owner           *users.Summary `json:"owner,omitempty"`
	Name            string         `json:"name"`
	Species         Species        `json:"species"`
	Breed           string         `json:"breed"`
	Gender          Gender         `json:"gender"`
	BirthDate       *time.Time     `json:"birth_date,omitempty"`
	Weight          *float64       `json:"weight,omitempty"`
	MicrochipNumber string         `json:"microchip_number,omitempty"`
	Temperament     string         `json:"temperament,omitempty"`
	BehaviorNotes   []string       `json:"behavior_notes"`
	IsActive        bool           `json:"is_active"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Crea una mascota para el usuario autenticado. Un admin puede indicar `owner_user_id`.
// @Tags pets
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param payload body createPetRequest true "Datos de la mascota; birth_date en formato YYYY-MM-DD"
// @Success 201 {object} petResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := middleware.RequirePrincipal(r)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		var req createPetRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		var bd *time.Time
		if strings.TrimSpace(req.BirthDate) != "" {
			t, err := httpx.ParseDate("birth_date", req.BirthDate)
			if err != nil {
				httpx.WriteError(w, err)
				return
			}
			bd = &t
		}

		pet, err := svc.Create(r.Context(), p, CreateInput{
			OwnerUserID:     req.OwnerUserID,
			Name:            req.Name,
			Species:         req.Species,
			Breed:           req.Breed,
			Gender:          req.Gender,
			BirthDate:       bd,
			Weight:          req.Weight,
			MicrochipNumber: req.MicrochipNumber,
			Temperament:     req.Temperament,
			BehaviorNotes:   req.BehaviorNotes,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toPetResponse(pet))
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Un usuario común ve solo sus mascotas activas; un admin ve todas y puede filtrar por `owner_id`.
// @Tags pets
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param owner_id query string false "Filtrar por dueño (solo admin)"
// @Param species query string false "Filtrar por especie"
// @Param q query string false "Búsqueda por nombre"
// @Param page query int false "Página (default 1)"
// @Param limit query int false "Tamaño de página (1-100, default 20)"
// @Success 200 {object} pagination.Result[petResponse]
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := middleware.RequirePrincipal(r)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		q := r.URL.Query()
		res, err := svc.List(r.Context(), p, ListFilter{
			OwnerUserID: strings.TrimSpace(q.Get("owner_id")),
			Species:     Species(strings.ToLower(strings.TrimSpace(q.Get("species")))),
			Query:       strings.TrimSpace(q.Get("q")),
			Page:        pagination.FromQuery(q),
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, pagination.Map(res, toPetResponse))
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param petID path string true "ID de la mascota (uuid)"
// @Success 200 {object} petResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := middleware.RequirePrincipal(r)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		pet, err := svc.Get(r.Context(), p, chi.URLParam(r, "petID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toPetResponse(pet))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description PATCH parcial. `birth_date` y `weight` aceptan null para limpiar el valor.
// @Tags pets
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param petID path string true "ID de la mascota (uuid)"
// @Param payload body updatePetRequest true "Campos a modificar"
// @Success 200 {object} petResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /pets/{petID} [patch]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := middleware.RequirePrincipal(r)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		var req updatePetRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		in := UpdateInput{
			Name:            req.Name,
			Species:         req.Species,
			Breed:           req.Breed,
			Gender:          req.Gender,
			MicrochipNumber: req.MicrochipNumber,
			Temperament:     req.Temperament,
			BehaviorNotes:   req.BehaviorNotes,
			Weight:          req.Weight,
		}
		if req.BirthDate.Set {
			bd, err := httpx.ParseOptionalDate("birth_date", req.BirthDate.V)
			if err != nil {
				httpx.WriteError(w, err)
				return
			}
			in.BirthDate = nullable.Value[time.Time]{Set: true, V: bd}
		}

		updated, err := svc.Update(r.Context(), p, chi.URLParam(r, "petID"), in)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toPetResponse(updated))
	}
}

// deletePetHandler godoc
// @Summary Dar de baja mascota
// @Description Soft delete: la mascota deja de aparecer en listados pero su historial se conserva.
// @Tags pets
// @Param Authorization header string false "Bearer token"
// @Param petID path string true "ID de la mascota (uuid)"
// @Success 204
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := middleware.RequirePrincipal(r)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		if err := svc.Delete(r.Context(), p, chi.URLParam(r, "petID")); err != nil {
			httpx.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toPetResponse(p Pet) petResponse {
	notes := p.BehaviorNotes
	if notes == nil {
		notes = []string{}
	}
	return petResponse{
		ID:              p.ID,
		OwnerUserID:     p.OwnerUserID,
		Owner:           p.Owner,
		Name:            p.Name,
		Species:         p.Species,
		Breed:           p.Breed,
		Gender:          p.Gender,
		BirthDate:       p.BirthDate,
		Weight:          p.Weight,
		MicrochipNumber: p.MicrochipNumber,
		Temperament:     p.Temperament,
		BehaviorNotes:   notes,
		IsActive:        p.IsActive,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

package catalog

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
	r.Route("/services", func(sr chi.Router) {
		// Lecturas públicas
		sr.Get("/", listItemsHandler(svc))
		sr.Get("/{serviceID}", getItemHandler(svc))

		// Staff
		sr.Post("/", createItemHandler(svc))
		sr.Patch("/{serviceID}", updateItemHandler(svc))
		sr.Delete("/{serviceID}", deleteItemHandler(svc))
	})
}

type createItemRequest struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
}

type updateItemRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Category        *string  `json:"category"`
	Price           *float64 `json:"price"`
	DurationMinutes *int     `json:"duration_minutes"`
	IsActive        *bool    `json:"is_active"`
}

type itemResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Category        string    `json:"category,omitempty"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"duration_minutes"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// listItemsHandler godoc
// @Summary Listar servicios
// @Description Público. Staff puede pedir `include_inactive=true`.
// @Tags services
// @Produce json
// @Param category query string false "Filtrar por categoría"
// @Param q query string false "Búsqueda por nombre"
// @Param include_inactive query bool false "Incluir inactivos (solo staff)"
// @Param page query int false "Página (default 1)"
// @Param limit query int false "Tamaño de página (1-100, default 20)"
// @Success 200 {object} pagination.Result[itemResponse]
// @Router /services [get]
func listItemsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, _ := middleware.OptionalPrincipal(r)

		q := r.URL.Query()
		res, err := svc.List(r.Context(), p, ListFilter{
			Category:        q.Get("category"),
			Query:           q.Get("q"),
			IncludeInactive: strings.EqualFold(q.Get("include_inactive"), "true"),
			Page:            pagination.FromQuery(q),
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, pagination.Map(res, toItemResponse))
	}
}

// getItemHandler godoc
// @Summary Obtener servicio
// @Tags services
// @Produce json
// @Param serviceID path string true "ID del servicio (uuid)"
// @Success 200 {object} itemResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /services/{serviceID} [get]
func getItemHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, _ := middleware.OptionalPrincipal(r)

		it, err := svc.Get(r.Context(), p, chi.URLParam(r, "serviceID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toItemResponse(it))
	}
}

// createItemHandler godoc
// @Summary Crear servicio
// @Tags services
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param payload body createItemRequest true "Datos del servicio"
// @Success 201 {object} itemResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse "nombre duplicado"
// @Router /services [post]
func createItemHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := middleware.RequirePrincipal(r)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		var req createItemRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		it, err := svc.Create(r.Context(), p, CreateInput{
			Name:            req.Name,
			Description:     req.Description,
			Category:        req.Category,
			Price:           req.Price,
			DurationMinutes: req.DurationMinutes,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toItemResponse(it))
	}
}

// updateItemHandler godoc
// @Summary Actualizar servicio
// @Tags services
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param serviceID path string true "ID del servicio (uuid)"
// @Param payload body updateItemRequest true "Campos a modificar"
// @Success 200 {object} itemResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /services/{serviceID} [patch]
func updateItemHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := middleware.RequirePrincipal(r)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		var req updateItemRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		it, err := svc.Update(r.Context(), p, chi.URLParam(r, "serviceID"), UpdateInput{
			Name:            req.Name,
			Description:     req.Description,
			Category:        req.Category,
			Price:           req.Price,
			DurationMinutes: req.DurationMinutes,
			IsActive:        req.IsActive,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toItemResponse(it))
	}
}

// deleteItemHandler godoc
// @Summary Eliminar servicio
// @Tags services
// @Param Authorization header string false "Bearer token"
// @Param serviceID path string true "ID del servicio (uuid)"
// @Success 204
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse "tiene citas asociadas"
// @Router /services/{serviceID} [delete]
func deleteItemHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := middleware.RequirePrincipal(r)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		if err := svc.Delete(r.Context(), p, chi.URLParam(r, "serviceID")); err != nil {
			httpx.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toItemResponse(it Item) itemResponse {
	return itemResponse{
		ID:              it.ID,
		Name:            it.Name,
		Description:     it.Description,
		Category:        it.Category,
		Price:           it.Price,
		DurationMinutes: it.DurationMinutes,
		IsActive:        it.IsActive,
		CreatedAt:       it.CreatedAt,
		UpdatedAt:       it.UpdatedAt,
	}
}

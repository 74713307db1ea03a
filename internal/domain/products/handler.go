package products

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
	r.Route("/products", func(pr chi.Router) {
		pr.Get("/", listProductsHandler(svc))
		pr.Get("/{productID}", getProductHandler(svc))

		pr.Post("/", createProductHandler(svc))
		pr.Patch("/{productID}", updateProductHandler(svc))
		pr.Delete("/{productID}", deleteProductHandler(svc))
	})
}

type createProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	SKU         string  `json:"sku"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	SKU         *string  `json:"sku"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
}

type productResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	SKU         string    `json:"sku"`
	Category    string    `json:"category,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// listProductsHandler godoc
// @Summary Listar productos
// @Tags products
// @Produce json
// @Param category query string false "Filtrar por categoría"
// @Param q query string false "Búsqueda por nombre o sku"
// @Param in_stock query bool false "Solo con stock"
// @Param page query int false "Página (default 1)"
// @Param limit query int false "Tamaño de página (1-100, default 20)"
// @Success 200 {object} pagination.Result[productResponse]
// @Router /products [get]
func listProductsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		res, err := svc.List(r.Context(), ListFilter{
			Category: q.Get("category"),
			Query:    q.Get("q"),
			InStock:  strings.EqualFold(q.Get("in_stock"), "true"),
			Page:     pagination.FromQuery(q),
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, pagination.Map(res, toProductResponse))
	}
}

// getProductHandler godoc
// @Summary Obtener producto
// @Tags products
// @Produce json
// @Param productID path string true "ID del producto (uuid)"
// @Success 200 {object} productResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /products/{productID} [get]
func getProductHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prod, err := svc.Get(r.Context(), chi.URLParam(r, "productID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toProductResponse(prod))
	}
}

// createProductHandler godoc
// @Summary Crear producto
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param payload body createProductRequest true "Datos del producto"
// @Success 201 {object} productResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse "sku duplicado"
// @Router /products [post]
func createProductHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := middleware.RequirePrincipal(r)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		var req createProductRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		prod, err := svc.Create(r.Context(), p, CreateInput{
			Name:        req.Name,
			Description: req.Description,
			SKU:         req.SKU,
			Category:    req.Category,
			Price:       req.Price,
			Stock:       req.Stock,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toProductResponse(prod))
	}
}

// updateProductHandler godoc
// @Summary Actualizar producto
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param productID path string true "ID del producto (uuid)"
// @Param payload body updateProductRequest true "Campos a modificar"
// @Success 200 {object} productResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse "sku duplicado"
// @Router /products/{productID} [patch]
func updateProductHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := middleware.RequirePrincipal(r)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		var req updateProductRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		prod, err := svc.Update(r.Context(), p, chi.URLParam(r, "productID"), UpdateInput{
			Name:        req.Name,
			Description: req.Description,
			SKU:         req.SKU,
			Category:    req.Category,
			Price:       req.Price,
			Stock:       req.Stock,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toProductResponse(prod))
	}
}

// deleteProductHandler godoc
// @Summary Eliminar producto
// @Tags products
// @Param Authorization header string false "Bearer token"
// @Param productID path string true "ID del producto (uuid)"
// @Success 204
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /products/{productID} [delete]
func deleteProductHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := middleware.RequirePrincipal(r)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		if err := svc.Delete(r.Context(), p, chi.URLParam(r, "productID")); err != nil {
			httpx.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toProductResponse(p Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		SKU:         p.SKU,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

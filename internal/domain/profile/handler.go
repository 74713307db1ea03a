package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-shop-api/internal/middleware"
	"pet-shop-api/internal/platform/httpx"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/pets/{petID}/complete-profile", completeProfileHandler(svc))
}

// completeProfileHandler godoc
// @Summary Perfil completo de la mascota
// @Description Historia clínica reciente, vacunas con estado, serie de peso, grooming, turnos y resumen. Owner o admin.
// @Tags pets
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param petID path string true "ID de la mascota (uuid)"
// @Success 200 {object} Profile
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /pets/{petID}/complete-profile [get]
func completeProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := middleware.RequirePrincipal(r)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		prof, err := svc.CompleteProfile(r.Context(), p, chi.URLParam(r, "petID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, prof)
	}
}

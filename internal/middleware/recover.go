package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"pet-shop-api/internal/platform/httpx"
	"pet-shop-api/internal/platform/logger"
)

// Recover reemplaza chimw.Recoverer: loguea el panic con el logger de la app
// y responde 500 en JSON en vez de texto plano.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error("panic recovered", map[string]any{
					"panic":      rec,
					"request_id": chimw.GetReqID(r.Context()),
					"path":       r.URL.Path,
				})
				httpx.WriteJSON(w, http.StatusInternalServerError, httpx.ErrorResponse{Error: "internal error"})
			}()
			next.ServeHTTP(w, r)
		})
	}
}

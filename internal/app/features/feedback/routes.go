// internal/app/features/feedback/routes.go
package feedback

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleSubmit)
	r.Get("/", h.HandleList)
	return r
}

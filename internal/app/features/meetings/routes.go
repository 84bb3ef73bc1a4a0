// internal/app/features/meetings/routes.go
package meetings

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleList)
	r.Post("/", h.HandleSchedule)
	return r
}

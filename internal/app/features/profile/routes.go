// internal/app/features/profile/routes.go
package profile

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{email}", h.HandleGet)
	r.Put("/{email}", h.HandleUpdate)
	return r
}

// internal/app/features/progress/routes.go
package progress

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{email}", h.HandleGet)
	r.Put("/{email}", h.HandleReplace)

	r.Post("/{email}/academic", h.HandleAddAcademic)
	r.Patch("/{email}/academic/{id}", h.HandleEditAcademic)
	r.Delete("/{email}/academic/{id}", h.HandleDeleteAcademic)

	r.Post("/{email}/personal", h.HandleAddPersonal)
	r.Patch("/{email}/personal/{id}", h.HandleEditPersonal)
	r.Delete("/{email}/personal/{id}", h.HandleDeletePersonal)

	r.Put("/{email}/semester-series", h.HandleSetSemesterSeries)
	r.Post("/{email}/events", h.HandleUpsertMonthlyEvents)
	return r
}

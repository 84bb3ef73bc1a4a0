// internal/app/features/progress/handler.go

// Package progress serves the per-user progress document and its
// sub-resource mutations: academic records, personal-development goals, the
// semester dashboard series, and monthly event counts.
package progress

import (
	"context"
	"net/http"
	"time"

	progressstore "github.com/dalemusser/mentorhub/internal/app/store/progress"
	"github.com/dalemusser/mentorhub/internal/app/system/apperrors"
	"github.com/dalemusser/mentorhub/internal/app/system/httpjson"
	"github.com/dalemusser/mentorhub/internal/app/system/timeouts"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the progress endpoints.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

// NewHandler constructs a Handler bound to the given Mongo database.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

func (h *Handler) respond(w http.ResponseWriter, p *models.Progress, failMsg string, err error) {
	if err == progressstore.ErrNotFound {
		httpjson.Fail(w, h.Log, apperrors.NotFound("Progress not found"))
		return
	}
	if err != nil {
		httpjson.Fail(w, h.Log, apperrors.Storage(failMsg, err))
		return
	}
	httpjson.OK(w, map[string]any{
		"success":  true,
		"progress": p,
	})
}

// HandleGet serves GET /api/progress/{email}, seeding a default document on
// the first read.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p, err := progressstore.New(h.DB).GetOrCreate(ctx, email)
	h.respond(w, p, "Error fetching progress", err)
}

// HandleReplace serves PUT /api/progress/{email}: an upsert of the provided
// top-level fields that always refreshes lastUpdated.
func (h *Handler) HandleReplace(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	var upd progressstore.DocumentUpdate
	if err := httpjson.Decode(r, &upd); err != nil {
		httpjson.Fail(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p, err := progressstore.New(h.DB).Replace(ctx, email, upd)
	if err != nil {
		httpjson.Fail(w, h.Log, apperrors.Storage("Error updating progress", err))
		return
	}
	httpjson.OK(w, map[string]any{
		"success":  true,
		"message":  "Progress updated successfully",
		"progress": p,
	})
}

type academicRequest struct {
	Subject    string   `json:"subject"`
	Marks      *float64 `json:"marks"`
	TotalMarks *float64 `json:"totalMarks"`
	Percentage *float64 `json:"percentage"`
	Semester   string   `json:"semester"`
	Year       string   `json:"year"`
}

// HandleAddAcademic serves POST /api/progress/{email}/academic. Subject,
// marks, totalMarks, and percentage are required, but zero is a valid
// value for the numeric fields; only an absent field fails validation.
func (h *Handler) HandleAddAcademic(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	var req academicRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Fail(w, h.Log, err)
		return
	}
	if req.Subject == "" || req.Marks == nil || req.TotalMarks == nil || req.Percentage == nil {
		httpjson.Fail(w, h.Log, apperrors.Validation("subject, marks, totalMarks and percentage are required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := progressstore.New(h.DB).AddAcademic(ctx, email, models.AcademicEntry{
		Subject:    req.Subject,
		Marks:      *req.Marks,
		TotalMarks: *req.TotalMarks,
		Percentage: *req.Percentage,
		Semester:   req.Semester,
		Year:       req.Year,
	})
	h.respond(w, p, "Error adding academic record", err)
}

// HandleEditAcademic serves PATCH /api/progress/{email}/academic/{id}.
// Only the supplied keys change; an unknown id returns the document
// unchanged.
func (h *Handler) HandleEditAcademic(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	id, aerr := elementID(r)
	if aerr != nil {
		httpjson.Fail(w, h.Log, aerr)
		return
	}

	var upd progressstore.AcademicUpdate
	if err := httpjson.Decode(r, &upd); err != nil {
		httpjson.Fail(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := progressstore.New(h.DB).EditAcademic(ctx, email, id, upd)
	h.respond(w, p, "Error updating academic record", err)
}

// HandleDeleteAcademic serves DELETE /api/progress/{email}/academic/{id}.
func (h *Handler) HandleDeleteAcademic(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	id, aerr := elementID(r)
	if aerr != nil {
		httpjson.Fail(w, h.Log, aerr)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := progressstore.New(h.DB).DeleteAcademic(ctx, email, id)
	h.respond(w, p, "Error deleting academic record", err)
}

type personalRequest struct {
	Goal          string     `json:"goal"`
	Status        string     `json:"status"`
	Description   string     `json:"description"`
	CompletedDate *time.Time `json:"completedDate"`
}

// HandleAddPersonal serves POST /api/progress/{email}/personal. Only the
// goal text is required; an unspecified status defaults to "completed".
func (h *Handler) HandleAddPersonal(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	var req personalRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Fail(w, h.Log, err)
		return
	}
	if req.Goal == "" {
		httpjson.Fail(w, h.Log, apperrors.Validation("goal is required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := progressstore.New(h.DB).AddPersonal(ctx, email, models.PersonalGoal{
		Goal:          req.Goal,
		Status:        req.Status,
		Description:   req.Description,
		CompletedDate: req.CompletedDate,
	})
	h.respond(w, p, "Error adding personal goal", err)
}

// HandleEditPersonal serves PATCH /api/progress/{email}/personal/{id}.
func (h *Handler) HandleEditPersonal(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	id, aerr := elementID(r)
	if aerr != nil {
		httpjson.Fail(w, h.Log, aerr)
		return
	}

	var upd progressstore.PersonalUpdate
	if err := httpjson.Decode(r, &upd); err != nil {
		httpjson.Fail(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := progressstore.New(h.DB).EditPersonal(ctx, email, id, upd)
	h.respond(w, p, "Error updating personal goal", err)
}

// HandleDeletePersonal serves DELETE /api/progress/{email}/personal/{id}.
func (h *Handler) HandleDeletePersonal(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	id, aerr := elementID(r)
	if aerr != nil {
		httpjson.Fail(w, h.Log, aerr)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := progressstore.New(h.DB).DeletePersonal(ctx, email, id)
	h.respond(w, p, "Error deleting personal goal", err)
}

type semesterSeriesRequest struct {
	Series []models.SemesterScore `json:"series"`
}

// HandleSetSemesterSeries serves PUT /api/progress/{email}/semester-series.
// The series replaces the stored one wholesale. It must be non-empty; the
// intended length of five is not enforced.
func (h *Handler) HandleSetSemesterSeries(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	var req semesterSeriesRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Fail(w, h.Log, err)
		return
	}
	if len(req.Series) == 0 {
		httpjson.Fail(w, h.Log, apperrors.Validation("series must be a non-empty list"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := progressstore.New(h.DB).SetSemesterSeries(ctx, email, req.Series)
	h.respond(w, p, "Error updating semester series", err)
}

type monthlyEventsRequest struct {
	Month  string `json:"month"`
	Year   *int   `json:"year"`
	Events *int   `json:"events"`
}

// HandleUpsertMonthlyEvents serves POST /api/progress/{email}/events. The
// count for the (month, year) pair is last-write-wins: a second call for
// the same pair replaces the first entry rather than accumulating.
func (h *Handler) HandleUpsertMonthlyEvents(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	var req monthlyEventsRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Fail(w, h.Log, err)
		return
	}
	if req.Month == "" || req.Year == nil || req.Events == nil {
		httpjson.Fail(w, h.Log, apperrors.Validation("month, year and events are required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p, err := progressstore.New(h.DB).UpsertMonthlyEvents(ctx, email, req.Month, *req.Year, *req.Events)
	h.respond(w, p, "Error updating monthly events", err)
}

// elementID parses the {id} URL segment into an ObjectID.
func elementID(r *http.Request) (primitive.ObjectID, *apperrors.Error) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return primitive.NilObjectID, apperrors.Validation("Invalid entry id")
	}
	return id, nil
}

// internal/app/features/relationships/handler.go

// Package relationships derives mentor-mentee associations from the users
// collection. There is no dedicated relationship collection: a mentee
// carries its mentor reference, canonically by mentorId and historically by
// the mentor display string.
package relationships

import (
	"context"
	"net/http"

	userstore "github.com/dalemusser/mentorhub/internal/app/store/users"
	"github.com/dalemusser/mentorhub/internal/app/system/apperrors"
	"github.com/dalemusser/mentorhub/internal/app/system/httpjson"
	"github.com/dalemusser/mentorhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the relationship lookup endpoints.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

// NewHandler constructs a Handler bound to the given Mongo database.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

// HandleMentees serves GET /api/mentees/{mentorEmail}. Mentees stored
// against the mentor's id, name, or email all match.
func (h *Handler) HandleMentees(w http.ResponseWriter, r *http.Request) {
	mentorEmail := chi.URLParam(r, "mentorEmail")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	mentees, err := userstore.New(h.DB).MenteesOf(ctx, mentorEmail)
	if err != nil {
		httpjson.Fail(w, h.Log, apperrors.Storage("Error fetching mentees", err))
		return
	}

	httpjson.OK(w, map[string]any{
		"success": true,
		"mentees": mentees,
	})
}

// HandleMentor serves GET /api/mentor/{menteeEmail}.
func (h *Handler) HandleMentor(w http.ResponseWriter, r *http.Request) {
	menteeEmail := chi.URLParam(r, "menteeEmail")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	mentor, err := userstore.New(h.DB).MentorOf(ctx, menteeEmail)
	if err == userstore.ErrNotFound {
		httpjson.Fail(w, h.Log, apperrors.NotFound("Mentor not assigned"))
		return
	}
	if err != nil {
		httpjson.Fail(w, h.Log, apperrors.Storage("Error fetching mentor", err))
		return
	}

	httpjson.OK(w, map[string]any{
		"success": true,
		"mentor":  mentor,
	})
}

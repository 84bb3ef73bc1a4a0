// internal/app/features/profile/handler.go

// Package profile serves reading and partially updating a user's profile
// document, addressed by email.
package profile

import (
	"context"
	"net/http"

	userstore "github.com/dalemusser/mentorhub/internal/app/store/users"
	"github.com/dalemusser/mentorhub/internal/app/system/apperrors"
	"github.com/dalemusser/mentorhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/mentorhub/internal/app/system/httpjson"
	"github.com/dalemusser/mentorhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the profile endpoints.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

// NewHandler constructs a Handler bound to the given Mongo database.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

// HandleGet serves GET /api/user/{email}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := userstore.New(h.DB).GetByEmail(ctx, email)
	if err == userstore.ErrNotFound {
		httpjson.Fail(w, h.Log, apperrors.NotFound("User not found"))
		return
	}
	if err != nil {
		httpjson.Fail(w, h.Log, apperrors.Storage("Error fetching user profile", err))
		return
	}

	httpjson.OK(w, map[string]any{
		"success": true,
		"user":    user,
	})
}

// HandleUpdate serves PUT /api/user/{email}. Only the fields present in the
// body change; the updatable set is the explicit allow-list in
// userstore.ProfileUpdate, so identity and credential fields cannot be
// altered through this endpoint.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	var upd userstore.ProfileUpdate
	if err := httpjson.Decode(r, &upd); err != nil {
		httpjson.Fail(w, h.Log, err)
		return
	}
	if upd.AboutMe != nil {
		clean := htmlsanitize.Sanitize(*upd.AboutMe)
		upd.AboutMe = &clean
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := userstore.New(h.DB).UpdateProfile(ctx, email, upd)
	if err == userstore.ErrNotFound {
		httpjson.Fail(w, h.Log, apperrors.NotFound("User not found"))
		return
	}
	if err != nil {
		httpjson.Fail(w, h.Log, apperrors.Storage("Error updating profile", err))
		return
	}

	httpjson.OK(w, map[string]any{
		"success": true,
		"message": "Profile updated successfully",
		"user":    user,
	})
}

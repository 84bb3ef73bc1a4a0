// internal/app/features/feedback/handler.go

// Package feedback serves append-only feedback submission and listing.
package feedback

import (
	"context"
	"net/http"

	feedbackstore "github.com/dalemusser/mentorhub/internal/app/store/feedback"
	"github.com/dalemusser/mentorhub/internal/app/system/apperrors"
	"github.com/dalemusser/mentorhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/mentorhub/internal/app/system/httpjson"
	"github.com/dalemusser/mentorhub/internal/app/system/timeouts"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the feedback endpoints.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

// NewHandler constructs a Handler bound to the given Mongo database.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

type submitRequest struct {
	MentorRating  *float64 `json:"mentor_rating"`
	WebsiteRating *float64 `json:"website_rating"`
	OverallRating *float64 `json:"overall_rating"`
	FeedbackText  string   `json:"feedback_text"`
}

// HandleSubmit serves POST /api/feedback. Every field is optional; the
// free text is sanitized before it is stored.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Fail(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if _, err := feedbackstore.New(h.DB).Create(ctx, models.Feedback{
		MentorRating:  req.MentorRating,
		WebsiteRating: req.WebsiteRating,
		OverallRating: req.OverallRating,
		FeedbackText:  htmlsanitize.Sanitize(req.FeedbackText),
	}); err != nil {
		httpjson.Fail(w, h.Log, apperrors.Storage("Error submitting feedback", err))
		return
	}

	httpjson.OK(w, map[string]any{
		"success": true,
		"message": "Feedback submitted successfully!",
	})
}

// HandleList serves GET /api/feedback, newest submissions first.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	feedbacks, err := feedbackstore.New(h.DB).List(ctx)
	if err != nil {
		httpjson.Fail(w, h.Log, apperrors.Storage("Error fetching feedback", err))
		return
	}

	httpjson.OK(w, map[string]any{
		"success":   true,
		"feedbacks": feedbacks,
	})
}

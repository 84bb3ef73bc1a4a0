// internal/app/features/meetings/handler.go

// Package meetings serves meeting scheduling and per-participant listing.
package meetings

import (
	"context"
	"net/http"
	"time"

	meetingstore "github.com/dalemusser/mentorhub/internal/app/store/meetings"
	"github.com/dalemusser/mentorhub/internal/app/system/apperrors"
	"github.com/dalemusser/mentorhub/internal/app/system/httpjson"
	"github.com/dalemusser/mentorhub/internal/app/system/timeouts"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the meeting endpoints.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

// NewHandler constructs a Handler bound to the given Mongo database.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

// HandleList serves GET /api/meetings?role=&name=. Mentors are matched on
// the mentor field, everyone else on the mentee field; results come back
// ordered ascending by date. The response body is the bare meeting array.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	role := r.URL.Query().Get("role")
	name := r.URL.Query().Get("name")
	if role == "" || name == "" {
		httpjson.Fail(w, h.Log, apperrors.Validation("Missing role or name"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	meetings, err := meetingstore.New(h.DB).ListByParticipant(ctx, role, name)
	if err != nil {
		httpjson.Fail(w, h.Log, apperrors.Storage("Error fetching meetings", err))
		return
	}
	httpjson.OK(w, meetings)
}

type scheduleRequest struct {
	Mentor string    `json:"mentor"`
	Mentee string    `json:"mentee"`
	Topic  string    `json:"topic"`
	Date   time.Time `json:"date"`
	Link   string    `json:"link"`
}

// HandleSchedule serves POST /api/meetings. All fields are required; the
// new meeting starts out "upcoming".
func (h *Handler) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Fail(w, h.Log, err)
		return
	}
	if req.Mentor == "" || req.Mentee == "" || req.Topic == "" || req.Date.IsZero() || req.Link == "" {
		httpjson.Fail(w, h.Log, apperrors.Validation("All fields required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if _, err := meetingstore.New(h.DB).Create(ctx, models.Meeting{
		Mentor: req.Mentor,
		Mentee: req.Mentee,
		Topic:  req.Topic,
		Date:   req.Date,
		Link:   req.Link,
	}); err != nil {
		httpjson.Fail(w, h.Log, apperrors.Storage("Error scheduling meeting", err))
		return
	}

	httpjson.OK(w, map[string]any{
		"success": true,
		"message": "Meeting scheduled!",
	})
}

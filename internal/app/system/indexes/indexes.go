// internal/app/system/indexes/indexes.go

// Package indexes reconciles the Mongo indexes the API depends on.
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
Problems are aggregated so every failing collection is visible and startup
can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureMeetings(ctx, db); err != nil {
		problems = append(problems, "meetings: "+err.Error())
	}
	if err := ensureProgress(ctx, db); err != nil {
		problems = append(problems, "progress: "+err.Error())
	}
	if err := ensureFeedback(ctx, db); err != nil {
		problems = append(problems, "feedback: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// Accounts are unique per (email, role): the same email may register once
// as a mentor and once as a mentee.
func ensureUsers(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("users"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}, {Key: "role", Value: 1}},
			Options: options.Index().SetName("idx_users_email_role").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "mentorId", Value: 1}},
			Options: options.Index().SetName("idx_users_mentor_id"),
		},
		{
			Keys:    bson.D{{Key: "mentor", Value: 1}},
			Options: options.Index().SetName("idx_users_mentor"),
		},
	})
}

// Meetings are listed per participant, sorted by date.
func ensureMeetings(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("meetings"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "mentor", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("idx_meetings_mentor_date"),
		},
		{
			Keys:    bson.D{{Key: "mentee", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("idx_meetings_mentee_date"),
		},
	})
}

// At most one progress document per user email.
func ensureProgress(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("progress"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userEmail", Value: 1}},
			Options: options.Index().SetName("idx_progress_user_email").SetUnique(true),
		},
	})
}

// Feedback is listed newest-first.
func ensureFeedback(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("feedback"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "submitted_at", Value: -1}},
			Options: options.Index().SetName("idx_feedback_submitted_at"),
		},
	})
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	var errs []string
	for _, m := range models {
		name := ""
		if m.Options != nil && m.Options.Name != nil {
			name = *m.Options.Name
		}
		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			// An index with the same keys may already exist under another
			// name or with different options; tolerate and report.
			if isOptionsConflictErr(err) {
				zap.L().Warn("index exists with conflicting options",
					zap.String("collection", coll.Name()),
					zap.String("name", name),
					zap.Error(err))
				continue
			}
			errs = append(errs, name+": "+err.Error())
			continue
		}
		zap.L().Info("ensured index",
			zap.String("collection", coll.Name()),
			zap.String("name", name))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func isOptionsConflictErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "IndexOptionsConflict") ||
		strings.Contains(err.Error(), "IndexKeySpecsConflict")
}

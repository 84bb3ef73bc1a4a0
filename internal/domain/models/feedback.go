// internal/domain/models/feedback.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback is an append-only portal feedback submission. All rating fields
// are optional; SubmittedAt defaults to the time of submission.
type Feedback struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MentorRating  *float64           `bson:"mentor_rating,omitempty" json:"mentor_rating,omitempty"`
	WebsiteRating *float64           `bson:"website_rating,omitempty" json:"website_rating,omitempty"`
	OverallRating *float64           `bson:"overall_rating,omitempty" json:"overall_rating,omitempty"`
	FeedbackText  string             `bson:"feedback_text,omitempty" json:"feedback_text,omitempty"`
	SubmittedAt   time.Time          `bson:"submitted_at" json:"submitted_at"`
}

// internal/domain/models/meeting.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Meeting statuses.
const (
	MeetingUpcoming  = "upcoming"
	MeetingCompleted = "completed"
	MeetingMissed    = "missed"
)

// Meeting is a scheduled mentor-mentee session. Participants are stored by
// display name, which is also how the list endpoint filters them.
type Meeting struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Mentor string             `bson:"mentor" json:"mentor"`
	Mentee string             `bson:"mentee" json:"mentee"`
	Topic  string             `bson:"topic" json:"topic"`
	Date   time.Time          `bson:"date" json:"date"`
	Status string             `bson:"status" json:"status"`
	Link   string             `bson:"link" json:"link"`
}

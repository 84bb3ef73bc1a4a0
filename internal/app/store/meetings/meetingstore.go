// internal/app/store/meetings/meetingstore.go
package meetingstore

import (
	"context"

	"github.com/dalemusser/mentorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("meetings")}
}

// Create inserts a meeting. Status defaults to "upcoming" when unset.
// Meetings are never updated or deleted once scheduled.
func (s *Store) Create(ctx context.Context, m models.Meeting) (models.Meeting, error) {
	m.ID = primitive.NewObjectID()
	if m.Status == "" {
		m.Status = models.MeetingUpcoming
	}
	if _, err := s.c.InsertOne(ctx, m); err != nil {
		return models.Meeting{}, err
	}
	return m, nil
}

// ListByParticipant returns meetings where the named participant appears on
// the given side ("mentor" matches the mentor field, anything else the
// mentee field), ordered ascending by date.
func (s *Store) ListByParticipant(ctx context.Context, role, name string) ([]models.Meeting, error) {
	filter := bson.M{"mentee": name}
	if role == "mentor" {
		filter = bson.M{"mentor": name}
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	meetings := []models.Meeting{}
	if err := cur.All(ctx, &meetings); err != nil {
		return nil, err
	}
	return meetings, nil
}

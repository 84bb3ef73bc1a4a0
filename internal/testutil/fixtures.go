// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/mentorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user with the given identity and a bcrypt hash of
// password. Returns the created user with its generated ID.
func (f *Fixtures) CreateUser(ctx context.Context, name, email, role, password string) models.User {
	f.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("failed to hash fixture password: %v", err)
	}

	u := models.User{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Email:        email,
		Role:         role,
		Password:     string(hash),
		ProfileImage: models.DefaultProfileImage,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateMentee inserts a mentee whose legacy mentor field holds the given
// reference (the mentor's name or email, depending on the scenario).
func (f *Fixtures) CreateMentee(ctx context.Context, name, email, mentorRef string) models.User {
	f.t.Helper()

	u := f.CreateUser(ctx, name, email, "mentee", "pw")
	if mentorRef != "" {
		_, err := f.db.Collection("users").UpdateOne(ctx,
			map[string]any{"_id": u.ID},
			map[string]any{"$set": map[string]any{"mentor": mentorRef}})
		if err != nil {
			f.t.Fatalf("failed to set mentor reference: %v", err)
		}
		u.Mentor = mentorRef
	}
	return u
}

// CreateMeeting inserts a meeting between the named participants.
func (f *Fixtures) CreateMeeting(ctx context.Context, mentor, mentee, topic string, date time.Time) models.Meeting {
	f.t.Helper()

	m := models.Meeting{
		ID:     primitive.NewObjectID(),
		Mentor: mentor,
		Mentee: mentee,
		Topic:  topic,
		Date:   date,
		Status: models.MeetingUpcoming,
		Link:   "https://meet.example.com/" + topic,
	}
	if _, err := f.db.Collection("meetings").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("failed to create test meeting: %v", err)
	}
	return m
}

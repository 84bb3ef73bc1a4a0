package meetingstore_test

import (
	"testing"
	"time"

	meetingstore "github.com/dalemusser/mentorhub/internal/app/store/meetings"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"github.com/dalemusser/mentorhub/internal/testutil"
)

func TestStore_Create_DefaultStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := meetingstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Meeting{
		Mentor: "Dr. Rao",
		Mentee: "Ravi",
		Date:   time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC),
		Topic:  "Project review",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Status != models.MeetingUpcoming {
		t.Errorf("status: got %q, want %q", created.Status, models.MeetingUpcoming)
	}
}

func TestStore_Create_KeepsExplicitStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := meetingstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Meeting{
		Mentor: "Dr. Rao",
		Mentee: "Ravi",
		Date:   time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC),
		Topic:  "Retro",
		Status: models.MeetingCompleted,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Status != models.MeetingCompleted {
		t.Errorf("status: got %q, want %q", created.Status, models.MeetingCompleted)
	}
}

func TestStore_ListByParticipant(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := meetingstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Inserted out of date order on purpose.
	fixtures.CreateMeeting(ctx, "Dr. Rao", "Ravi", "Later", time.Date(2026, 9, 20, 9, 0, 0, 0, time.UTC))
	fixtures.CreateMeeting(ctx, "Dr. Rao", "Ravi", "Earlier", time.Date(2026, 9, 5, 9, 0, 0, 0, time.UTC))
	fixtures.CreateMeeting(ctx, "Dr. Iyer", "Ravi", "Other mentor", time.Date(2026, 9, 12, 9, 0, 0, 0, time.UTC))

	mentorView, err := store.ListByParticipant(ctx, "mentor", "Dr. Rao")
	if err != nil {
		t.Fatalf("ListByParticipant(mentor) failed: %v", err)
	}
	if len(mentorView) != 2 {
		t.Fatalf("mentor view: expected 2 meetings, got %d", len(mentorView))
	}
	if mentorView[0].Topic != "Earlier" || mentorView[1].Topic != "Later" {
		t.Errorf("expected date-ascending order, got %q then %q", mentorView[0].Topic, mentorView[1].Topic)
	}

	menteeView, err := store.ListByParticipant(ctx, "mentee", "Ravi")
	if err != nil {
		t.Fatalf("ListByParticipant(mentee) failed: %v", err)
	}
	if len(menteeView) != 3 {
		t.Fatalf("mentee view: expected 3 meetings, got %d", len(menteeView))
	}
}

func TestStore_ListByParticipant_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := meetingstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	meetings, err := store.ListByParticipant(ctx, "mentee", "Nobody")
	if err != nil {
		t.Fatalf("ListByParticipant failed: %v", err)
	}
	if meetings == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(meetings) != 0 {
		t.Fatalf("expected no meetings, got %d", len(meetings))
	}
}

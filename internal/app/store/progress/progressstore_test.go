package progressstore_test

import (
	"testing"
	"time"

	progressstore "github.com/dalemusser/mentorhub/internal/app/store/progress"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"github.com/dalemusser/mentorhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testEmail = "ravi@example.com"

func floatp(v float64) *float64 { return &v }
func strp(v string) *string     { return &v }

func TestStore_GetOrCreate_SeedsDefaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := progressstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p, err := store.GetOrCreate(ctx, testEmail)
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}

	if p.UserEmail != testEmail {
		t.Errorf("userEmail: got %q, want %q", p.UserEmail, testEmail)
	}
	if got := len(p.AcademicProgress); got != 2 {
		t.Errorf("academicProgress: got %d entries, want 2", got)
	}
	if got := len(p.PersonalDevelopment); got != 3 {
		t.Errorf("personalDevelopment: got %d entries, want 3", got)
	}
	if got := len(p.MonthlyActivity); got != 12 {
		t.Errorf("monthlyActivity: got %d entries, want 12", got)
	}
	if got := len(p.YearlyProgress); got != 4 {
		t.Errorf("yearlyProgress: got %d entries, want 4", got)
	}
	if got := len(p.SemesterSeries); got != 5 {
		t.Errorf("semesterSeries: got %d entries, want 5", got)
	}
	if got := len(p.EventsParticipatedMonthly); got != 12 {
		t.Errorf("eventsParticipatedMonthly: got %d entries, want 12", got)
	}
	if p.AttendanceRate != 73 {
		t.Errorf("attendanceRate: got %v, want 73", p.AttendanceRate)
	}
	if p.CommunicationRate != 48 {
		t.Errorf("communicationRate: got %v, want 48", p.CommunicationRate)
	}
	if p.LastUpdated.IsZero() {
		t.Error("lastUpdated should be set")
	}

	// Every array element gets an id so it is addressable later.
	for _, e := range p.AcademicProgress {
		if e.ID.IsZero() {
			t.Error("academic entry missing id")
		}
	}
	for _, g := range p.PersonalDevelopment {
		if g.ID.IsZero() {
			t.Error("personal goal missing id")
		}
	}
}

func TestStore_GetOrCreate_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := progressstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first, err := store.GetOrCreate(ctx, testEmail)
	if err != nil {
		t.Fatalf("first GetOrCreate failed: %v", err)
	}
	second, err := store.GetOrCreate(ctx, testEmail)
	if err != nil {
		t.Fatalf("second GetOrCreate failed: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("expected the same document, got %s then %s", first.ID.Hex(), second.ID.Hex())
	}
}

func TestStore_Replace_PartialFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := progressstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	before, err := store.GetOrCreate(ctx, testEmail)
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}

	// Stored dates have millisecond precision; make sure the clock moves.
	time.Sleep(5 * time.Millisecond)

	after, err := store.Replace(ctx, testEmail, progressstore.DocumentUpdate{
		AttendanceRate: floatp(90),
	})
	if err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	if after.AttendanceRate != 90 {
		t.Errorf("attendanceRate: got %v, want 90", after.AttendanceRate)
	}
	if after.CommunicationRate != before.CommunicationRate {
		t.Errorf("communicationRate changed: got %v, want %v", after.CommunicationRate, before.CommunicationRate)
	}
	if len(after.AcademicProgress) != len(before.AcademicProgress) {
		t.Errorf("academicProgress changed: got %d entries, want %d", len(after.AcademicProgress), len(before.AcademicProgress))
	}
	if !after.LastUpdated.After(before.LastUpdated) {
		t.Error("lastUpdated should advance on replace")
	}
}

func TestStore_Replace_AssignsElementIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := progressstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	rows := []models.AcademicEntry{{Subject: "Networks", Marks: 40, TotalMarks: 50, Percentage: 80}}
	after, err := store.Replace(ctx, testEmail, progressstore.DocumentUpdate{
		AcademicProgress: &rows,
	})
	if err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if len(after.AcademicProgress) != 1 {
		t.Fatalf("academicProgress: got %d entries, want 1", len(after.AcademicProgress))
	}
	if after.AcademicProgress[0].ID.IsZero() {
		t.Error("replaced entry should have been assigned an id")
	}
}

func TestStore_AddEditDeleteAcademic(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := progressstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	seeded, err := store.GetOrCreate(ctx, testEmail)
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	baseCount := len(seeded.AcademicProgress)

	added, err := store.AddAcademic(ctx, testEmail, models.AcademicEntry{
		Subject: "Operating Systems", Marks: 42, TotalMarks: 50, Percentage: 84,
	})
	if err != nil {
		t.Fatalf("AddAcademic failed: %v", err)
	}
	if len(added.AcademicProgress) != baseCount+1 {
		t.Fatalf("academicProgress: got %d entries, want %d", len(added.AcademicProgress), baseCount+1)
	}
	entry := added.AcademicProgress[len(added.AcademicProgress)-1]
	if entry.ID.IsZero() {
		t.Fatal("added entry should have an id")
	}

	// Edit touches only the supplied keys.
	edited, err := store.EditAcademic(ctx, testEmail, entry.ID, progressstore.AcademicUpdate{
		Marks: floatp(45),
	})
	if err != nil {
		t.Fatalf("EditAcademic failed: %v", err)
	}
	var found *models.AcademicEntry
	for i := range edited.AcademicProgress {
		if edited.AcademicProgress[i].ID == entry.ID {
			found = &edited.AcademicProgress[i]
		}
	}
	if found == nil {
		t.Fatal("edited entry disappeared")
	}
	if found.Marks != 45 {
		t.Errorf("marks: got %v, want 45", found.Marks)
	}
	if found.Subject != "Operating Systems" {
		t.Errorf("subject changed: got %q", found.Subject)
	}
	if found.Percentage != 84 {
		t.Errorf("percentage changed: got %v", found.Percentage)
	}

	deleted, err := store.DeleteAcademic(ctx, testEmail, entry.ID)
	if err != nil {
		t.Fatalf("DeleteAcademic failed: %v", err)
	}
	if len(deleted.AcademicProgress) != baseCount {
		t.Errorf("academicProgress after delete: got %d entries, want %d", len(deleted.AcademicProgress), baseCount)
	}
	for _, e := range deleted.AcademicProgress {
		if e.ID == entry.ID {
			t.Error("deleted entry still present")
		}
	}
}

func TestStore_EditAcademic_UnknownIDIsNoop(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := progressstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	before, err := store.GetOrCreate(ctx, testEmail)
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}

	after, err := store.EditAcademic(ctx, testEmail, primitive.NewObjectID(), progressstore.AcademicUpdate{
		Subject: strp("Nope"),
	})
	if err != nil {
		t.Fatalf("EditAcademic failed: %v", err)
	}
	if len(after.AcademicProgress) != len(before.AcademicProgress) {
		t.Fatalf("entry count changed: got %d, want %d", len(after.AcademicProgress), len(before.AcademicProgress))
	}
	for i := range after.AcademicProgress {
		if after.AcademicProgress[i].Subject != before.AcademicProgress[i].Subject {
			t.Errorf("entry %d subject changed to %q", i, after.AcademicProgress[i].Subject)
		}
	}
}

func TestStore_EditAcademic_MissingDocument(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := progressstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.EditAcademic(ctx, "nobody@example.com", primitive.NewObjectID(), progressstore.AcademicUpdate{
		Subject: strp("Nope"),
	})
	if err != progressstore.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_AddPersonal_DefaultsStatusCompleted(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := progressstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	after, err := store.AddPersonal(ctx, testEmail, models.PersonalGoal{Goal: "Read one paper a week"})
	if err != nil {
		t.Fatalf("AddPersonal failed: %v", err)
	}
	goal := after.PersonalDevelopment[len(after.PersonalDevelopment)-1]
	if goal.Status != models.GoalCompleted {
		t.Errorf("status: got %q, want %q", goal.Status, models.GoalCompleted)
	}
}

func TestStore_EditDeletePersonal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := progressstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	added, err := store.AddPersonal(ctx, testEmail, models.PersonalGoal{
		Goal: "Join the robotics club", Status: models.GoalPending,
	})
	if err != nil {
		t.Fatalf("AddPersonal failed: %v", err)
	}
	goal := added.PersonalDevelopment[len(added.PersonalDevelopment)-1]
	total := len(added.PersonalDevelopment)

	edited, err := store.EditPersonal(ctx, testEmail, goal.ID, progressstore.PersonalUpdate{
		Status: strp(models.GoalInProgress),
	})
	if err != nil {
		t.Fatalf("EditPersonal failed: %v", err)
	}
	for _, g := range edited.PersonalDevelopment {
		if g.ID == goal.ID {
			if g.Status != models.GoalInProgress {
				t.Errorf("status: got %q, want %q", g.Status, models.GoalInProgress)
			}
			if g.Goal != "Join the robotics club" {
				t.Errorf("goal text changed: got %q", g.Goal)
			}
		}
	}

	deleted, err := store.DeletePersonal(ctx, testEmail, goal.ID)
	if err != nil {
		t.Fatalf("DeletePersonal failed: %v", err)
	}
	if len(deleted.PersonalDevelopment) != total-1 {
		t.Errorf("personalDevelopment after delete: got %d entries, want %d", len(deleted.PersonalDevelopment), total-1)
	}
}

func TestStore_SetSemesterSeries(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := progressstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.GetOrCreate(ctx, testEmail); err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}

	series := []models.SemesterScore{
		{Semester: "Sem I", Score: 61},
		{Semester: "Sem II", Score: 67},
		{Semester: "Sem III", Score: 72},
	}
	after, err := store.SetSemesterSeries(ctx, testEmail, series)
	if err != nil {
		t.Fatalf("SetSemesterSeries failed: %v", err)
	}
	if len(after.SemesterSeries) != 3 {
		t.Fatalf("semesterSeries: got %d entries, want 3", len(after.SemesterSeries))
	}
	if after.SemesterSeries[0].Semester != "Sem I" || after.SemesterSeries[0].Score != 61 {
		t.Errorf("first entry: got %+v", after.SemesterSeries[0])
	}
	for _, s := range after.SemesterSeries {
		if s.ID.IsZero() {
			t.Error("series entry missing id")
		}
	}
}

func TestStore_UpsertMonthlyEvents_LastWriteWins(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := progressstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first, err := store.UpsertMonthlyEvents(ctx, testEmail, "January", 2025, 5)
	if err != nil {
		t.Fatalf("first UpsertMonthlyEvents failed: %v", err)
	}
	if count := countMonth(first.EventsParticipatedMonthly, "January", 2025); count != 1 {
		t.Fatalf("January 2025 entries after first upsert: got %d, want 1", count)
	}

	second, err := store.UpsertMonthlyEvents(ctx, testEmail, "January", 2025, 9)
	if err != nil {
		t.Fatalf("second UpsertMonthlyEvents failed: %v", err)
	}
	if count := countMonth(second.EventsParticipatedMonthly, "January", 2025); count != 1 {
		t.Fatalf("January 2025 entries after second upsert: got %d, want 1", count)
	}
	for _, e := range second.EventsParticipatedMonthly {
		if e.Month == "January" && e.Year == 2025 && e.Events != 9 {
			t.Errorf("events: got %d, want 9", e.Events)
		}
	}
}

func TestStore_UpsertMonthlyEvents_DistinctPairsCoexist(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := progressstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.UpsertMonthlyEvents(ctx, testEmail, "January", 2025, 2); err != nil {
		t.Fatalf("UpsertMonthlyEvents failed: %v", err)
	}
	after, err := store.UpsertMonthlyEvents(ctx, testEmail, "January", 2026, 4)
	if err != nil {
		t.Fatalf("UpsertMonthlyEvents failed: %v", err)
	}

	if countMonth(after.EventsParticipatedMonthly, "January", 2025) != 1 {
		t.Error("January 2025 entry lost")
	}
	if countMonth(after.EventsParticipatedMonthly, "January", 2026) != 1 {
		t.Error("January 2026 entry missing")
	}
}

func countMonth(entries []models.MonthlyEvents, month string, year int) int {
	n := 0
	for _, e := range entries {
		if e.Month == month && e.Year == year {
			n++
		}
	}
	return n
}

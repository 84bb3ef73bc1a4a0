// internal/app/store/progress/progressstore.go

// Package progressstore manages the per-user progress documents, including
// the targeted array-element mutations behind the sub-resource endpoints.
package progressstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/mentorhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no progress document exists for the email.
var ErrNotFound = errors.New("progress not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("progress")}
}

// GetOrCreate returns the progress document for the email, seeding and
// persisting the default dataset when none exists yet. The seed gives a new
// account a populated dashboard; the values themselves are presentation
// defaults, not business data.
func (s *Store) GetOrCreate(ctx context.Context, email string) (*models.Progress, error) {
	var p models.Progress
	err := s.c.FindOne(ctx, bson.M{"userEmail": email}).Decode(&p)
	if err == nil {
		return &p, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	seed := DefaultProgress(email)
	if _, err := s.c.InsertOne(ctx, seed); err != nil {
		// A concurrent first read may have seeded it already.
		if wafflemongo.IsDup(err) {
			if ferr := s.c.FindOne(ctx, bson.M{"userEmail": email}).Decode(&p); ferr == nil {
				return &p, nil
			}
		}
		return nil, err
	}
	return &seed, nil
}

// Get returns the progress document without creating a default.
func (s *Store) Get(ctx context.Context, email string) (*models.Progress, error) {
	var p models.Progress
	err := s.c.FindOne(ctx, bson.M{"userEmail": email}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// DocumentUpdate holds the top-level fields a progress PUT may replace.
// Nil pointers are left untouched.
type DocumentUpdate struct {
	AcademicProgress          *[]models.AcademicEntry `json:"academicProgress,omitempty"`
	PersonalDevelopment       *[]models.PersonalGoal  `json:"personalDevelopment,omitempty"`
	MonthlyActivity           *[]models.MonthlyScore  `json:"monthlyActivity,omitempty"`
	AttendanceRate            *float64                `json:"attendanceRate,omitempty"`
	CommunicationRate         *float64                `json:"communicationRate,omitempty"`
	YearlyProgress            *[]models.YearlyScore   `json:"yearlyProgress,omitempty"`
	SemesterSeries            *[]models.SemesterScore `json:"semesterSeries,omitempty"`
	EventsParticipatedMonthly *[]models.MonthlyEvents `json:"eventsParticipatedMonthly,omitempty"`
}

// Replace upserts the document with the provided fields and refreshes
// lastUpdated. Array elements arriving without an id are assigned one so
// they stay addressable by the sub-resource endpoints.
func (s *Store) Replace(ctx context.Context, email string, upd DocumentUpdate) (*models.Progress, error) {
	set := bson.M{"lastUpdated": time.Now().UTC()}

	if upd.AcademicProgress != nil {
		rows := *upd.AcademicProgress
		for i := range rows {
			if rows[i].ID.IsZero() {
				rows[i].ID = primitive.NewObjectID()
			}
		}
		set["academicProgress"] = rows
	}
	if upd.PersonalDevelopment != nil {
		rows := *upd.PersonalDevelopment
		for i := range rows {
			if rows[i].ID.IsZero() {
				rows[i].ID = primitive.NewObjectID()
			}
		}
		set["personalDevelopment"] = rows
	}
	if upd.MonthlyActivity != nil {
		rows := *upd.MonthlyActivity
		for i := range rows {
			if rows[i].ID.IsZero() {
				rows[i].ID = primitive.NewObjectID()
			}
		}
		set["monthlyActivity"] = rows
	}
	if upd.AttendanceRate != nil {
		set["attendanceRate"] = *upd.AttendanceRate
	}
	if upd.CommunicationRate != nil {
		set["communicationRate"] = *upd.CommunicationRate
	}
	if upd.YearlyProgress != nil {
		rows := *upd.YearlyProgress
		for i := range rows {
			if rows[i].ID.IsZero() {
				rows[i].ID = primitive.NewObjectID()
			}
		}
		set["yearlyProgress"] = rows
	}
	if upd.SemesterSeries != nil {
		rows := *upd.SemesterSeries
		for i := range rows {
			if rows[i].ID.IsZero() {
				rows[i].ID = primitive.NewObjectID()
			}
		}
		set["semesterSeries"] = rows
	}
	if upd.EventsParticipatedMonthly != nil {
		rows := *upd.EventsParticipatedMonthly
		for i := range rows {
			if rows[i].ID.IsZero() {
				rows[i].ID = primitive.NewObjectID()
			}
		}
		set["eventsParticipatedMonthly"] = rows
	}

	return s.findOneAndUpsert(ctx, email, bson.M{"$set": set})
}

// AddAcademic appends an academic entry, creating the document if absent.
func (s *Store) AddAcademic(ctx context.Context, email string, entry models.AcademicEntry) (*models.Progress, error) {
	entry.ID = primitive.NewObjectID()
	return s.findOneAndUpsert(ctx, email, bson.M{
		"$push": bson.M{"academicProgress": entry},
		"$set":  bson.M{"lastUpdated": time.Now().UTC()},
	})
}

// AcademicUpdate holds the editable fields of an academic entry.
type AcademicUpdate struct {
	Subject    *string  `json:"subject,omitempty"`
	Marks      *float64 `json:"marks,omitempty"`
	TotalMarks *float64 `json:"totalMarks,omitempty"`
	Percentage *float64 `json:"percentage,omitempty"`
	Semester   *string  `json:"semester,omitempty"`
	Year       *string  `json:"year,omitempty"`
}

// EditAcademic applies the provided fields to the entry with the given id.
// An unknown id is a no-op: the document is returned unchanged.
func (s *Store) EditAcademic(ctx context.Context, email string, id primitive.ObjectID, upd AcademicUpdate) (*models.Progress, error) {
	set := bson.M{"lastUpdated": time.Now().UTC()}
	if upd.Subject != nil {
		set["academicProgress.$.subject"] = *upd.Subject
	}
	if upd.Marks != nil {
		set["academicProgress.$.marks"] = *upd.Marks
	}
	if upd.TotalMarks != nil {
		set["academicProgress.$.totalMarks"] = *upd.TotalMarks
	}
	if upd.Percentage != nil {
		set["academicProgress.$.percentage"] = *upd.Percentage
	}
	if upd.Semester != nil {
		set["academicProgress.$.semester"] = *upd.Semester
	}
	if upd.Year != nil {
		set["academicProgress.$.year"] = *upd.Year
	}
	return s.editElement(ctx, email, "academicProgress", id, set)
}

// DeleteAcademic removes the entry with the given id. An unknown id leaves
// the document unchanged.
func (s *Store) DeleteAcademic(ctx context.Context, email string, id primitive.ObjectID) (*models.Progress, error) {
	return s.pullElement(ctx, email, "academicProgress", id)
}

// AddPersonal appends a personal-development goal, creating the document if
// absent. Status defaults to "completed" when unspecified, which is what
// the portal frontend has always relied on for this endpoint.
func (s *Store) AddPersonal(ctx context.Context, email string, goal models.PersonalGoal) (*models.Progress, error) {
	goal.ID = primitive.NewObjectID()
	if goal.Status == "" {
		goal.Status = models.GoalCompleted
	}
	return s.findOneAndUpsert(ctx, email, bson.M{
		"$push": bson.M{"personalDevelopment": goal},
		"$set":  bson.M{"lastUpdated": time.Now().UTC()},
	})
}

// PersonalUpdate holds the editable fields of a personal-development goal.
type PersonalUpdate struct {
	Goal          *string    `json:"goal,omitempty"`
	Status        *string    `json:"status,omitempty"`
	Description   *string    `json:"description,omitempty"`
	CompletedDate *time.Time `json:"completedDate,omitempty"`
}

// EditPersonal applies the provided fields to the goal with the given id.
// An unknown id is a no-op: the document is returned unchanged.
func (s *Store) EditPersonal(ctx context.Context, email string, id primitive.ObjectID, upd PersonalUpdate) (*models.Progress, error) {
	set := bson.M{"lastUpdated": time.Now().UTC()}
	if upd.Goal != nil {
		set["personalDevelopment.$.goal"] = *upd.Goal
	}
	if upd.Status != nil {
		set["personalDevelopment.$.status"] = *upd.Status
	}
	if upd.Description != nil {
		set["personalDevelopment.$.description"] = *upd.Description
	}
	if upd.CompletedDate != nil {
		set["personalDevelopment.$.completedDate"] = *upd.CompletedDate
	}
	return s.editElement(ctx, email, "personalDevelopment", id, set)
}

// DeletePersonal removes the goal with the given id. An unknown id leaves
// the document unchanged.
func (s *Store) DeletePersonal(ctx context.Context, email string, id primitive.ObjectID) (*models.Progress, error) {
	return s.pullElement(ctx, email, "personalDevelopment", id)
}

// SetSemesterSeries replaces the semester series wholesale. The series is
// meant to hold five entries but any non-empty list is accepted; callers
// validate non-emptiness.
func (s *Store) SetSemesterSeries(ctx context.Context, email string, series []models.SemesterScore) (*models.Progress, error) {
	for i := range series {
		if series[i].ID.IsZero() {
			series[i].ID = primitive.NewObjectID()
		}
	}
	return s.findOneAndUpsert(ctx, email, bson.M{
		"$set": bson.M{
			"semesterSeries": series,
			"lastUpdated":    time.Now().UTC(),
		},
	})
}

// UpsertMonthlyEvents records the event count for a (month, year) pair with
// last-write-wins semantics: any existing entry for the pair is removed and
// the new count appended. The removal and the append are two round-trips to
// the store, not one atomic step; a concurrent writer on the same document
// can interleave between them.
func (s *Store) UpsertMonthlyEvents(ctx context.Context, email, month string, year, events int) (*models.Progress, error) {
	if _, err := s.c.UpdateOne(ctx,
		bson.M{"userEmail": email},
		bson.M{"$pull": bson.M{"eventsParticipatedMonthly": bson.M{"month": month, "year": year}}},
	); err != nil {
		return nil, err
	}

	entry := models.MonthlyEvents{
		ID:     primitive.NewObjectID(),
		Month:  month,
		Year:   year,
		Events: events,
	}
	return s.findOneAndUpsert(ctx, email, bson.M{
		"$push": bson.M{"eventsParticipatedMonthly": entry},
		"$set":  bson.M{"lastUpdated": time.Now().UTC()},
	})
}

// findOneAndUpsert applies update to the document for email, inserting it
// if absent, and returns the post-update document.
func (s *Store) findOneAndUpsert(ctx context.Context, email string, update bson.M) (*models.Progress, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var p models.Progress
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"userEmail": email}, update, opts).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// editElement applies a positional $set against the array element with the
// given id. When the id does not match, the document is fetched and
// returned unchanged; when the document itself is missing, ErrNotFound.
func (s *Store) editElement(ctx context.Context, email, field string, id primitive.ObjectID, set bson.M) (*models.Progress, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.Progress
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"userEmail": email, field + "._id": id},
		bson.M{"$set": set},
		opts).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return s.Get(ctx, email)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// pullElement removes the array element with the given id. A missing id is
// a no-op; a missing document is ErrNotFound.
func (s *Store) pullElement(ctx context.Context, email, field string, id primitive.ObjectID) (*models.Progress, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.Progress
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"userEmail": email},
		bson.M{
			"$pull": bson.M{field: bson.M{"_id": id}},
			"$set":  bson.M{"lastUpdated": time.Now().UTC()},
		},
		opts).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

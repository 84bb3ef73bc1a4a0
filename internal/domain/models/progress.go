// internal/domain/models/progress.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Personal development goal statuses.
const (
	GoalPending    = "pending"
	GoalInProgress = "in_progress"
	GoalCompleted  = "completed"
)

// Progress is the per-user dashboard document, keyed by userEmail with at
// most one document per email. Every array element carries its own _id so
// the sub-resource endpoints can target a single element for edit or delete.
type Progress struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`

	AcademicProgress    []AcademicEntry `bson:"academicProgress" json:"academicProgress"`
	PersonalDevelopment []PersonalGoal  `bson:"personalDevelopment" json:"personalDevelopment"`
	MonthlyActivity     []MonthlyScore  `bson:"monthlyActivity" json:"monthlyActivity"`

	AttendanceRate    float64 `bson:"attendanceRate" json:"attendanceRate"`
	CommunicationRate float64 `bson:"communicationRate" json:"communicationRate"`

	YearlyProgress []YearlyScore `bson:"yearlyProgress" json:"yearlyProgress"`

	// Intended as a 5-entry dashboard series; the replace endpoint accepts
	// any non-empty list and does not enforce the length.
	SemesterSeries []SemesterScore `bson:"semesterSeries" json:"semesterSeries"`

	// One entry per (month, year); the upsert endpoint replaces rather than
	// accumulates.
	EventsParticipatedMonthly []MonthlyEvents `bson:"eventsParticipatedMonthly" json:"eventsParticipatedMonthly"`

	LastUpdated time.Time `bson:"lastUpdated" json:"lastUpdated"`
}

// AcademicEntry is one row of a user's academic record.
type AcademicEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Subject    string             `bson:"subject" json:"subject"`
	Marks      float64            `bson:"marks" json:"marks"`
	TotalMarks float64            `bson:"totalMarks" json:"totalMarks"`
	Percentage float64            `bson:"percentage" json:"percentage"`
	Semester   string             `bson:"semester,omitempty" json:"semester,omitempty"`
	Year       string             `bson:"year,omitempty" json:"year,omitempty"`
}

// PersonalGoal is one personal-development goal.
type PersonalGoal struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Goal          string             `bson:"goal" json:"goal"`
	Status        string             `bson:"status" json:"status"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	CompletedDate *time.Time         `bson:"completedDate,omitempty" json:"completedDate,omitempty"`
}

// MonthlyScore is one month of chart activity.
type MonthlyScore struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Month string             `bson:"month" json:"month"`
	Year  int                `bson:"year" json:"year"`
	Score float64            `bson:"score" json:"score"`
}

// YearlyScore is an overall score for one year.
type YearlyScore struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Year         string             `bson:"year" json:"year"`
	OverallScore float64            `bson:"overallScore" json:"overallScore"`
}

// SemesterScore is one point of the semester dashboard series.
type SemesterScore struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Semester string             `bson:"semester" json:"semester"`
	Score    float64            `bson:"score" json:"score"`
}

// MonthlyEvents is the number of events a user participated in for one month.
type MonthlyEvents struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Month  string             `bson:"month" json:"month"`
	Year   int                `bson:"year" json:"year"`
	Events int                `bson:"events" json:"events"`
}

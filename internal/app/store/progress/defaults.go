// internal/app/store/progress/defaults.go
package progressstore

import (
	"time"

	"github.com/dalemusser/mentorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultProgress builds the seed document a new account sees on its first
// dashboard load: two academic rows, three personal-development goals, a
// year of monthly activity and event counts, the five-semester series, and
// four yearly scores.
func DefaultProgress(email string) models.Progress {
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	activityScores := []float64{40, 30, 45, 50, 60, 55, 10, 15, 65, 70, 75, 80}
	eventCounts := []int{2, 1, 3, 2, 4, 3, 1, 0, 5, 4, 3, 2}

	monthly := make([]models.MonthlyScore, len(months))
	events := make([]models.MonthlyEvents, len(months))
	for i, m := range months {
		monthly[i] = models.MonthlyScore{
			ID:    primitive.NewObjectID(),
			Month: m,
			Year:  2024,
			Score: activityScores[i],
		}
		events[i] = models.MonthlyEvents{
			ID:     primitive.NewObjectID(),
			Month:  m,
			Year:   2024,
			Events: eventCounts[i],
		}
	}

	return models.Progress{
		ID:        primitive.NewObjectID(),
		UserEmail: email,
		AcademicProgress: []models.AcademicEntry{
			{ID: primitive.NewObjectID(), Subject: "IWP", Marks: 48, TotalMarks: 50, Percentage: 96, Semester: "V", Year: "2024"},
			{ID: primitive.NewObjectID(), Subject: "CC", Marks: 35, TotalMarks: 50, Percentage: 82, Semester: "V", Year: "2024"},
		},
		PersonalDevelopment: []models.PersonalGoal{
			{ID: primitive.NewObjectID(), Goal: "Attend Resume Workshop", Status: models.GoalCompleted, Description: "Complete resume building workshop"},
			{ID: primitive.NewObjectID(), Goal: "Join a club in our college", Status: models.GoalInProgress, Description: "Participate in college activities"},
			{ID: primitive.NewObjectID(), Goal: "Do Daily Coding Challenge without fail", Status: models.GoalPending, Description: "Maintain coding practice"},
		},
		MonthlyActivity:   monthly,
		AttendanceRate:    73,
		CommunicationRate: 48,
		YearlyProgress: []models.YearlyScore{
			{ID: primitive.NewObjectID(), Year: "VII", OverallScore: 70},
			{ID: primitive.NewObjectID(), Year: "VIII", OverallScore: 80},
			{ID: primitive.NewObjectID(), Year: "IX", OverallScore: 85},
			{ID: primitive.NewObjectID(), Year: "X", OverallScore: 90},
		},
		SemesterSeries: []models.SemesterScore{
			{ID: primitive.NewObjectID(), Semester: "Sem I", Score: 58},
			{ID: primitive.NewObjectID(), Semester: "Sem II", Score: 64},
			{ID: primitive.NewObjectID(), Semester: "Sem III", Score: 69},
			{ID: primitive.NewObjectID(), Semester: "Sem IV", Score: 73},
			{ID: primitive.NewObjectID(), Semester: "Sem V", Score: 78},
		},
		EventsParticipatedMonthly: events,
		LastUpdated:               time.Now().UTC(),
	}
}

package services

import (
	"time"

	"github.com/dmitrijs2005/mindful/internal/client/models"
	"github.com/google/uuid"
)

const day = 24 * time.Hour

// sampleTemplate is a seed record relative to the seeding time.
type sampleTemplate struct {
	ago      time.Duration
	mood     models.Mood
	stressor models.Stressor
	note     string
}

var sampleTemplates = []sampleTemplate{
	{4 * day, models.MoodBad, models.StressorExams, "Bio finals are killing me."},
	{3 * day, models.MoodGood, models.StressorRelationships, "Lunch with Sarah was nice."},
	{2 * day, models.MoodOkay, models.StressorAssignments, "Essay due tomorrow."},
	{1 * day, models.MoodVeryBad, models.StressorMoney, "Rent is due."},
}

// SampleCheckIns builds the first-run records for userID, oldest first.
func SampleCheckIns(userID string, now time.Time) []models.CheckIn {
	out := make([]models.CheckIn, 0, len(sampleTemplates))
	for _, s := range sampleTemplates {
		out = append(out, models.CheckIn{
			ID:        uuid.NewString(),
			UserID:    userID,
			Mood:      s.mood,
			Stressor:  s.stressor,
			Note:      s.note,
			Timestamp: models.Millis(now.Add(-s.ago)),
		})
	}
	return out
}

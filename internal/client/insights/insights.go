// Package insights derives dashboard metrics from a user's check-in history.
//
// Every function is pure. History slices are expected newest first, as
// returned by the check-in service.
package insights

import (
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/dmitrijs2005/mindful/internal/client/models"
)

// Window is the number of most recent entries the summary covers.
const Window = 7

// Recent returns the first n entries of history.
func Recent(history []models.CheckIn, n int) []models.CheckIn {
	if n < 0 {
		n = 0
	}
	if len(history) <= n {
		return history
	}
	return history[:n]
}

// AverageMood returns the mean mood rounded half away from zero to one
// decimal. ok is false for an empty slice.
func AverageMood(slice []models.CheckIn) (avg float64, ok bool) {
	if len(slice) == 0 {
		return 0, false
	}
	sum := 0
	for _, c := range slice {
		sum += int(c.Mood)
	}
	mean := float64(sum) / float64(len(slice))
	return math.Round(mean*10) / 10, true
}

// TopStressor returns the most frequent stressor of the slice. On a tie the
// stressor met first while iterating wins. Values outside the closed set are
// ignored. ok is false when nothing was counted.
func TopStressor(slice []models.CheckIn) (top models.Stressor, ok bool) {
	var counts [models.StressorCount]int
	// order lists stressor indexes by first appearance.
	order := make([]int, 0, models.StressorCount)
	for _, c := range slice {
		i := c.Stressor.Index()
		if i < 0 {
			continue
		}
		if counts[i] == 0 {
			order = append(order, i)
		}
		counts[i]++
	}

	all := models.AllStressors()
	best := 0
	for _, i := range order {
		if counts[i] > best {
			best = counts[i]
			top = all[i]
		}
	}
	return top, best > 0
}

// Summary holds the dashboard statistics.
type Summary struct {
	Entries    int
	Average    float64
	HasAverage bool
	Top        models.Stressor
	HasTop     bool
}

// Summarize computes the statistics over the Window most recent entries.
func Summarize(history []models.CheckIn) Summary {
	recent := Recent(history, Window)
	s := Summary{Entries: len(recent)}
	s.Average, s.HasAverage = AverageMood(recent)
	s.Top, s.HasTop = TopStressor(recent)
	return s
}

// AverageLabel renders the average, e.g. "2.5", or "N/A".
func (s Summary) AverageLabel() string {
	if !s.HasAverage {
		return "N/A"
	}
	return strconv.FormatFloat(s.Average, 'f', 1, 64)
}

// TopLabel renders the top stressor or "None".
func (s Summary) TopLabel() string {
	if !s.HasTop {
		return "None"
	}
	return s.Top.String()
}

// Point is one sample of the mood trend.
type Point struct {
	Time time.Time
	Mood models.Mood
}

// Trend returns the history as points in ascending time order. ok is false
// when there are fewer than two entries to draw.
func Trend(history []models.CheckIn) (points []Point, ok bool) {
	if len(history) < 2 {
		return nil, false
	}
	points = make([]Point, 0, len(history))
	for _, c := range history {
		points = append(points, Point{Time: c.Time(), Mood: c.Mood})
	}
	slices.SortStableFunc(points, func(a, b Point) int {
		return a.Time.Compare(b.Time)
	})
	return points, true
}

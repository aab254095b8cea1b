package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/mindful/internal/client/insights"
	"github.com/dmitrijs2005/mindful/internal/client/models"
)

const (
	msgNoLogs     = "No logs yet. Start your journey today!"
	msgNoTrend    = "Log more entries to see trends"
	msgDisclaimer = "This tool is for self-reflection only and does not replace professional medical advice."

	trendColumn = 3
	// trendGutter is the width of "5 Very Bad " in front of each chart row.
	trendGutter = 11
)

func renderDashboard(w io.Writer, user *models.User, history []models.CheckIn) {
	fmt.Fprintf(w, "\nHello, %s\n", user.Greeting())
	fmt.Fprintln(w, "Let's check in on your mental health today.")

	if len(history) > 0 {
		fmt.Fprintln(w)
		renderStats(w, insights.Summarize(history))
	}

	fmt.Fprintln(w)
	renderTrend(w, history)
	fmt.Fprintln(w)
	renderHistory(w, history)
	fmt.Fprintln(w)
	renderDisclaimer(w)
}

func renderStats(w io.Writer, s insights.Summary) {
	fmt.Fprintf(w, "7-Day Avg: %s / 5    Top Stressor: %s\n", s.AverageLabel(), s.TopLabel())
}

// renderTrend draws one column per entry, oldest on the left.
func renderTrend(w io.Writer, history []models.CheckIn) {
	points, ok := insights.Trend(history)
	if !ok {
		fmt.Fprintln(w, msgNoTrend)
		return
	}

	width := trendColumn * len(points)
	fmt.Fprintln(w, "Mood Trend")
	for m := models.MoodGreat; m >= models.MoodVeryBad; m-- {
		row := []byte(strings.Repeat(" ", width))
		for i, p := range points {
			if p.Mood == m {
				row[i*trendColumn+1] = '*'
			}
		}
		fmt.Fprintf(w, "%d %-8s |%s\n", m, m.Label(), strings.TrimRight(string(row), " "))
	}

	pad := strings.Repeat(" ", trendGutter)
	fmt.Fprintf(w, "%s+%s\n", pad, strings.Repeat("-", width))

	first := points[0].Time.Format("Jan 2")
	last := points[len(points)-1].Time.Format("Jan 2")
	gap := width - len(first) - len(last)
	if gap < 1 {
		gap = 1
	}
	fmt.Fprintf(w, "%s %s%s%s\n", pad, first, strings.Repeat(" ", gap), last)
}

func renderHistory(w io.Writer, history []models.CheckIn) {
	fmt.Fprintf(w, "Recent Logs (%d entries)\n", len(history))
	if len(history) == 0 {
		fmt.Fprintln(w, "  "+msgNoLogs)
		return
	}
	for _, c := range history {
		fmt.Fprintf(w, "  %s %s · %s\n", c.Mood.Icon(), c.Mood.Label(), c.Time().Format("Jan 2, 2006 15:04"))
		fmt.Fprintf(w, "    Stressor: %s\n", c.Stressor)
		if c.Note != "" {
			fmt.Fprintf(w, "    \"%s\"\n", c.Note)
		}
	}
}

func renderDisclaimer(w io.Writer) {
	fmt.Fprintln(w, "Disclaimer: "+msgDisclaimer)
	fmt.Fprintln(w, "Campus Counseling | Emergency Resources")
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/mindful/internal/client/models"
	"github.com/dmitrijs2005/mindful/internal/client/wizard"
)

// errCheckInCancelled is returned when the user dismisses the wizard.
var errCheckInCancelled = errors.New("check-in cancelled")

// CheckIn runs the check-in wizard. After a successful save the history is
// reloaded and the dashboard shown; cancelling returns to the dashboard
// without changes.
func (a *App) CheckIn(ctx context.Context) error {
	if a.user == nil {
		return errNotSignedIn
	}

	w := wizard.New(a.user.UID)
	a.screen = ScreenCheckIn
	defer func() { a.screen = ScreenDashboard }()

	for {
		var err error
		switch w.Step() {
		case wizard.StepMoodSelect:
			err = a.promptMood(w)
		case wizard.StepStressorAndNotes:
			err = a.promptStressorAndNote(ctx, w)
		case wizard.StepClosed:
			return nil
		}
		if errors.Is(err, errCheckInCancelled) {
			w.Close()
			fmt.Fprintln(a.out, "Check-in cancelled.")
			return nil
		}
		if err != nil {
			w.Close()
			return err
		}
	}
}

var errNotSignedIn = errors.New("not signed in")

func (a *App) promptMood(w *wizard.Wizard) error {
	fmt.Fprintln(a.out, "\nStep 1 of 2: How are you feeling?")
	current, chosen := w.Mood()
	for _, m := range models.AllMoods() {
		marker := " "
		if chosen && m == current {
			marker = ">"
		}
		fmt.Fprintf(a.out, " %s %d %s %s\n", marker, m, m.Icon(), m.Label())
	}

	prompt := "Choose 1-5, or 'cancel'"
	if chosen {
		prompt = "Choose 1-5, press Enter to keep " + current.Label() + ", or 'cancel'"
	}
	in, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}

	switch strings.ToLower(in) {
	case "cancel", "c":
		return errCheckInCancelled
	case "":
		if !w.Next() {
			fmt.Fprintln(a.out, "Please select a mood first.")
		}
		return nil
	}

	n, err := strconv.Atoi(in)
	if err != nil || !w.SelectMood(models.Mood(n)) {
		fmt.Fprintln(a.out, "Please enter a number from 1 to 5.")
		return nil
	}
	w.Next()
	return nil
}

func (a *App) promptStressorAndNote(ctx context.Context, w *wizard.Wizard) error {
	if _, chosen := w.Stressor(); !chosen {
		return a.promptStressor(w)
	}

	tip, activity, _ := w.Recommendation()
	fmt.Fprintln(a.out, "\nTip: "+tip)
	fmt.Fprintln(a.out, "Try this: "+activity)

	note, err := getSimpleText(a.reader, "Anything specific happening today? (optional, Enter to skip)", a.out)
	if err != nil {
		return err
	}
	if note != "" {
		w.SetNote(note)
	}

	for {
		action, err := getSimpleText(a.reader, "Type 'save' (default), 'stressor' to change it, 'back' for mood, or 'cancel'", a.out)
		if err != nil {
			return err
		}
		switch strings.ToLower(action) {
		case "", "save", "s":
			return a.submit(ctx, w)
		case "stressor":
			return a.promptStressor(w)
		case "back", "b":
			w.Back()
			return nil
		case "cancel", "c":
			return errCheckInCancelled
		default:
			fmt.Fprintln(a.out, "Unknown option:", action)
		}
	}
}

func (a *App) promptStressor(w *wizard.Wizard) error {
	fmt.Fprintln(a.out, "\nStep 2 of 2: What is impacting you?")
	for i, s := range models.AllStressors() {
		fmt.Fprintf(a.out, "   %d %s\n", i+1, s)
	}

	in, err := getSimpleText(a.reader, "Choose 1-8 or a name, 'back' for mood, or 'cancel'", a.out)
	if err != nil {
		return err
	}

	switch strings.ToLower(in) {
	case "back", "b":
		w.Back()
		return nil
	case "cancel", "c":
		return errCheckInCancelled
	}

	s, ok := models.ParseStressor(in)
	if !ok || !w.SelectStressor(s) {
		fmt.Fprintln(a.out, "Please choose one of the listed stressors.")
	}
	return nil
}

// submit saves through the wizard. A failed save keeps the wizard open so
// the user can retry.
func (a *App) submit(ctx context.Context, w *wizard.Wizard) error {
	fmt.Fprintln(a.out, "Saving...")
	stored, err := w.Submit(ctx, a.checkInService.Save)
	if err != nil {
		a.logger.Error(ctx, "saving check-in failed", "error", err)
		fmt.Fprintln(a.out, "Could not save your check-in. Please try again.")
		return nil
	}

	a.logger.Debug(ctx, "check-in stored", "id", stored.ID)
	fmt.Fprintln(a.out, "Check-in saved.")
	a.loadHistory(ctx)
	renderDashboard(a.out, a.user, a.history)
	return nil
}

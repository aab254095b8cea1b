// Package wizard holds the state of the two-step check-in flow:
// choose a mood, then a stressor and an optional note, then submit.
//
// Operations that are not allowed in the current state have no effect and
// report false (or a sentinel error for Submit). A Wizard is safe for
// concurrent use; only one submission can be in flight at a time.
package wizard

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/mindful/internal/client/models"
	"github.com/dmitrijs2005/mindful/internal/client/recommend"
)

type Step int

const (
	StepMoodSelect Step = iota
	StepStressorAndNotes
	StepClosed
)

func (s Step) String() string {
	switch s {
	case StepMoodSelect:
		return "mood"
	case StepStressorAndNotes:
		return "stressor"
	case StepClosed:
		return "closed"
	}
	return "unknown"
}

var (
	// ErrIncomplete is returned by Submit before a stressor is chosen.
	ErrIncomplete = errors.New("wizard: select a stressor first")
	// ErrBusy is returned by Submit while another save is in flight.
	ErrBusy = errors.New("wizard: save in progress")
	// ErrClosed is returned by Submit after the wizard was closed.
	ErrClosed = errors.New("wizard: closed")
)

// SaveFunc stores the record and returns it as stored.
type SaveFunc func(ctx context.Context, c models.CheckIn) (models.CheckIn, error)

type Wizard struct {
	mu sync.Mutex

	userID   string
	step     Step
	mood     models.Mood
	stressor models.Stressor
	note     string
	saving   bool
}

// New starts a flow for userID at StepMoodSelect.
func New(userID string) *Wizard {
	return &Wizard{userID: userID, step: StepMoodSelect}
}

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// SelectMood chooses the mood on the first step.
func (w *Wizard) SelectMood(m models.Mood) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepMoodSelect || !m.Valid() {
		return false
	}
	w.mood = m
	return true
}

func (w *Wizard) Mood() (models.Mood, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.mood, w.mood.Valid()
}

// Next advances to the stressor step once a mood is chosen.
func (w *Wizard) Next() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepMoodSelect || !w.mood.Valid() {
		return false
	}
	w.step = StepStressorAndNotes
	return true
}

// Back returns to the mood step keeping every choice made so far.
func (w *Wizard) Back() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepStressorAndNotes || w.saving {
		return false
	}
	w.step = StepMoodSelect
	return true
}

func (w *Wizard) SelectStressor(s models.Stressor) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepStressorAndNotes || !s.Valid() {
		return false
	}
	w.stressor = s
	return true
}

func (w *Wizard) Stressor() (models.Stressor, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stressor, w.stressor.Valid()
}

func (w *Wizard) SetNote(note string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepStressorAndNotes {
		return false
	}
	w.note = note
	return true
}

func (w *Wizard) Note() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.note
}

// Recommendation returns the tip and activity for the current choices. ok is
// false until both a mood and a stressor are chosen.
func (w *Wizard) Recommendation() (tip, activity string, ok bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.mood.Valid() || !w.stressor.Valid() {
		return "", "", false
	}
	return recommend.Tip(w.mood, w.stressor), recommend.Activity(w.mood, w.stressor), true
}

// CanSubmit reports whether Submit would call save.
func (w *Wizard) CanSubmit() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step == StepStressorAndNotes && w.stressor.Valid() && !w.saving
}

func (w *Wizard) Saving() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.saving
}

// Submit saves the check-in. On success the wizard closes and the stored
// record is returned; the caller is expected to reload history. On failure
// the wizard stays on the stressor step with its choices so the user can
// retry.
func (w *Wizard) Submit(ctx context.Context, save SaveFunc) (models.CheckIn, error) {
	w.mu.Lock()
	switch {
	case w.step == StepClosed:
		w.mu.Unlock()
		return models.CheckIn{}, ErrClosed
	case w.saving:
		w.mu.Unlock()
		return models.CheckIn{}, ErrBusy
	case w.step != StepStressorAndNotes || !w.stressor.Valid():
		w.mu.Unlock()
		return models.CheckIn{}, ErrIncomplete
	}
	w.saving = true
	c := models.CheckIn{
		UserID:   w.userID,
		Mood:     w.mood,
		Stressor: w.stressor,
		Note:     w.note,
	}
	w.mu.Unlock()

	stored, err := save(ctx, c)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.saving = false
	if err != nil {
		return models.CheckIn{}, err
	}
	w.step = StepClosed
	return stored, nil
}

// Close dismisses the flow without saving.
func (w *Wizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.step = StepClosed
}

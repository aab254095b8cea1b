// Package models defines the journal's data model: users, check-ins, and the
// closed mood and stressor scales.
package models

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/mindful/internal/common"
)

// CheckIn is one journal record. The JSON layout matches the array stored
// under the data key.
type CheckIn struct {
	ID       string   `json:"id"`
	UserID   string   `json:"userId"`
	Mood     Mood     `json:"mood"`
	Stressor Stressor `json:"stressor"`
	Note     string   `json:"note"`
	// Timestamp is the creation time in milliseconds since the Unix epoch.
	Timestamp int64 `json:"timestamp"`
}

// Validate checks the record invariants: mood in [1,5] and a stressor from
// the closed set.
func (c CheckIn) Validate() error {
	if !c.Mood.Valid() {
		return fmt.Errorf("%w: mood %d out of range 1..5", common.ErrorValidation, c.Mood)
	}
	if !c.Stressor.Valid() {
		return fmt.Errorf("%w: unknown stressor %q", common.ErrorValidation, c.Stressor)
	}
	return nil
}

func (c CheckIn) Time() time.Time {
	return time.UnixMilli(c.Timestamp)
}

// Millis converts t to the timestamp unit used by CheckIn.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}

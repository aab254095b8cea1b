package models

import (
	"strconv"
	"strings"
)

// Stressor is the closed set of stress sources a check-in can name.
type Stressor string

const (
	StressorExams         Stressor = "Exams"
	StressorAssignments   Stressor = "Assignments"
	StressorWork          Stressor = "Work"
	StressorMoney         Stressor = "Money"
	StressorRelationships Stressor = "Relationships"
	StressorFamily        Stressor = "Family"
	StressorHealth        Stressor = "Health"
	StressorOther         Stressor = "Other"
)

var stressors = [...]Stressor{
	StressorExams,
	StressorAssignments,
	StressorWork,
	StressorMoney,
	StressorRelationships,
	StressorFamily,
	StressorHealth,
	StressorOther,
}

// StressorCount is the size of the closed set.
const StressorCount = len(stressors)

// AllStressors returns the stressors in display order.
func AllStressors() []Stressor {
	out := make([]Stressor, StressorCount)
	copy(out, stressors[:])
	return out
}

// Index returns the position of s in display order, or -1 when s is not part
// of the closed set.
func (s Stressor) Index() int {
	for i, v := range stressors {
		if v == s {
			return i
		}
	}
	return -1
}

func (s Stressor) Valid() bool {
	return s.Index() >= 0
}

func (s Stressor) String() string {
	return string(s)
}

// ParseStressor accepts a label (case-insensitive) or a 1-based position in
// display order.
func ParseStressor(in string) (Stressor, bool) {
	in = strings.TrimSpace(in)
	if n, err := strconv.Atoi(in); err == nil {
		if n < 1 || n > StressorCount {
			return "", false
		}
		return stressors[n-1], true
	}
	for _, s := range stressors {
		if strings.EqualFold(string(s), in) {
			return s, true
		}
	}
	return "", false
}

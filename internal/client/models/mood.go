package models

// Mood is the self-reported wellbeing score, 1 (Very Bad) to 5 (Great).
type Mood int

const (
	MoodVeryBad Mood = iota + 1
	MoodBad
	MoodOkay
	MoodGood
	MoodGreat
)

// Band groups moods for the recommendation rules.
type Band int

const (
	BandLow Band = iota
	BandNeutral
	BandHigh
)

var moodLabels = [...]string{"Very Bad", "Bad", "Okay", "Good", "Great"}

var moodIcons = [...]string{"😫", "😔", "😐", "🙂", "😁"}

// AllMoods lists the selectable moods in ascending order.
func AllMoods() []Mood {
	return []Mood{MoodVeryBad, MoodBad, MoodOkay, MoodGood, MoodGreat}
}

func (m Mood) Valid() bool {
	return m >= MoodVeryBad && m <= MoodGreat
}

// Label returns the display name, or "Unknown" for out-of-range values.
func (m Mood) Label() string {
	if !m.Valid() {
		return "Unknown"
	}
	return moodLabels[m-1]
}

func (m Mood) Icon() string {
	if !m.Valid() {
		return "?"
	}
	return moodIcons[m-1]
}

// Band places any integer mood in a band: >=4 high, 3 neutral, <=2 low.
func (m Mood) Band() Band {
	switch {
	case m >= MoodGood:
		return BandHigh
	case m == MoodOkay:
		return BandNeutral
	default:
		return BandLow
	}
}

package state

// Mood is the self-reported mood of the day. Empty means none set; it
// is cleared at the daily reset.
type Mood string

const (
	MoodNone     Mood = ""
	MoodSemangat Mood = "semangat"
	MoodFokus    Mood = "fokus"
	MoodMager    Mood = "mager"
	MoodSedih    Mood = "sedih"
	MoodMarah    Mood = "marah"
)

func (m Mood) IsValid() bool {
	switch m {
	case MoodSemangat, MoodFokus, MoodMager, MoodSedih, MoodMarah:
		return true
	default:
		return false
	}
}

// Moods lists the selectable moods.
func Moods() []Mood {
	return []Mood{MoodSemangat, MoodFokus, MoodMager, MoodSedih, MoodMarah}
}

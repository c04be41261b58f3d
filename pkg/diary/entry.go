package diary

import (
	"fmt"
	"time"

	"github.com/arthur-debert/stampstore/pkg/errors"
)

// Emotion is the feeling an entry was classified with
type Emotion string

// Known emotions
const (
	EmotionHappiness Emotion = "happiness"
	EmotionSadness   Emotion = "sadness"
	EmotionAnger     Emotion = "anger"
	EmotionFear      Emotion = "fear"
	EmotionSurprise  Emotion = "surprise"
	EmotionDisgust   Emotion = "disgust"
	EmotionNeutral   Emotion = "neutral"
)

var knownEmotions = map[Emotion]bool{
	EmotionHappiness: true,
	EmotionSadness:   true,
	EmotionAnger:     true,
	EmotionFear:      true,
	EmotionSurprise:  true,
	EmotionDisgust:   true,
	EmotionNeutral:   true,
}

// Emotions returns every known emotion
func Emotions() []Emotion {
	return []Emotion{
		EmotionHappiness, EmotionSadness, EmotionAnger, EmotionFear,
		EmotionSurprise, EmotionDisgust, EmotionNeutral,
	}
}

// Valid reports whether e is a known emotion
func (e Emotion) Valid() bool {
	return knownEmotions[e]
}

// CalendarDate is the day an entry belongs to
type CalendarDate struct {
	Year  int `json:"year" yaml:"year" toml:"year"`
	Month int `json:"month" yaml:"month" toml:"month"`
	Day   int `json:"day" yaml:"day" toml:"day"`
}

// DateOf returns the calendar date of t in t's location
func DateOf(t time.Time) CalendarDate {
	return CalendarDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// Valid reports whether d names a real day
func (d CalendarDate) Valid() bool {
	if d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return false
	}
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return t.Year() == d.Year && int(t.Month()) == d.Month && t.Day() == d.Day
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Summary is the condensed text of an entry
type Summary struct {
	Text string `json:"text" yaml:"text" toml:"text"`
}

// Entry is one diary record
type Entry struct {
	CalendarDate CalendarDate `json:"calendarDate" yaml:"calendarDate" toml:"calendarDate"`
	Emotion      Emotion      `json:"emotion" yaml:"emotion" toml:"emotion"`
	Summary      Summary      `json:"summary" yaml:"summary" toml:"summary"`
	Transcript   string       `json:"transcript,omitempty" yaml:"transcript,omitempty" toml:"transcript,omitempty"`
	CreatedAt    time.Time    `json:"createdAt" yaml:"createdAt" toml:"createdAt"`
}

// Validate checks the fields a stored entry must have
func (e Entry) Validate() error {
	if !e.Emotion.Valid() {
		return errors.Newf(errors.ErrInvalidInput, "unknown emotion %q", e.Emotion).
			WithDetail("emotion", string(e.Emotion))
	}
	if !e.CalendarDate.Valid() {
		return errors.Newf(errors.ErrInvalidInput, "invalid calendar date %s", e.CalendarDate)
	}
	if e.CreatedAt.IsZero() {
		return errors.New(errors.ErrInvalidInput, "entry has no creation time")
	}
	return nil
}

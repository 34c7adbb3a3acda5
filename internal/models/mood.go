package models

// Mood is one of the fixed mood tags a journal entry can carry.
type Mood struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
	// Color is an ANSI 256 palette index used by the TUI and calendar renderers
	Color string `json:"color" yaml:"color"`
}

const (
	MoodHappy      = "felice"
	MoodCalm       = "calmo"
	MoodSad        = "triste"
	MoodAngry      = "arrabbiato"
	MoodSurprised  = "sorpreso"
	MoodTired      = "stanco"
	MoodEnergetic  = "energico"
	MoodInLove     = "innamorato"
	MoodThoughtful = "pensieroso"
)

// Moods is the closed mood catalogue in display order.
var Moods = []Mood{
	{Value: MoodHappy, Label: "Felice", Color: "42"},
	{Value: MoodCalm, Label: "Calmo", Color: "39"},
	{Value: MoodSad, Label: "Triste", Color: "27"},
	{Value: MoodAngry, Label: "Arrabbiato", Color: "196"},
	{Value: MoodSurprised, Label: "Sorpreso", Color: "226"},
	{Value: MoodTired, Label: "Stanco", Color: "245"},
	{Value: MoodEnergetic, Label: "Energico", Color: "208"},
	{Value: MoodInLove, Label: "Innamorato", Color: "213"},
	{Value: MoodThoughtful, Label: "Pensieroso", Color: "135"},
}

// MoodByValue looks up a mood in the catalogue. Empty or unknown values return false.
func MoodByValue(value string) (Mood, bool) {
	if value == "" {
		return Mood{}, false
	}
	for _, m := range Moods {
		if m.Value == value {
			return m, true
		}
	}
	return Mood{}, false
}

// IsValidMood reports whether value is part of the catalogue.
func IsValidMood(value string) bool {
	_, ok := MoodByValue(value)
	return ok
}

// MoodIndex returns the catalogue position of value, or len(Moods) when unknown
// so that unknown moods sort last.
func MoodIndex(value string) int {
	for i, m := range Moods {
		if m.Value == value {
			return i
		}
	}
	return len(Moods)
}

// MoodValues returns the catalogue values in display order.
func MoodValues() []string {
	values := make([]string, len(Moods))
	for i, m := range Moods {
		values[i] = m.Value
	}
	return values
}

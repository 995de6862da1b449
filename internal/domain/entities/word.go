// Package entities contains domain entities used across the application.
package entities

// DifficultyTier is an ordered difficulty category assigned to every word
// and requested by session descriptors.
type DifficultyTier string

const (
	DifficultyBeginner     DifficultyTier = "beginner"
	DifficultyIntermediate DifficultyTier = "intermediate"
	DifficultyAdvanced     DifficultyTier = "advanced"

	// DifficultyBeginnerIntermediate is a catalog-side alias that matches
	// both beginner and intermediate words. Words never carry it.
	DifficultyBeginnerIntermediate DifficultyTier = "beginner-intermediate"
)

// ValidWordTier reports whether d is a tier a word may carry.
func (d DifficultyTier) ValidWordTier() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// ValidDescriptorTier reports whether d may appear in a session descriptor.
func (d DifficultyTier) ValidDescriptorTier() bool {
	return d.ValidWordTier() || d == DifficultyBeginnerIntermediate
}

// Matches reports whether a word with tier w satisfies the descriptor tier d.
func (d DifficultyTier) Matches(w DifficultyTier) bool {
	if d == DifficultyBeginnerIntermediate {
		return w == DifficultyBeginner || w == DifficultyIntermediate
	}
	return d == w
}

// FrequencyTier is an ordered usage-frequency category. A word may carry
// none, in which case it does not participate in frequency ranking.
type FrequencyTier string

const (
	FrequencyVeryCommon FrequencyTier = "very-common"
	FrequencyCommon     FrequencyTier = "common"
	FrequencyUncommon   FrequencyTier = "uncommon"
	FrequencyRare       FrequencyTier = "rare"
)

var frequencyRank = map[FrequencyTier]int{
	FrequencyRare:       1,
	FrequencyUncommon:   2,
	FrequencyCommon:     3,
	FrequencyVeryCommon: 4,
}

// Rank returns the ordering rank of the tier (higher = more frequent) and
// whether the tier is known.
func (f FrequencyTier) Rank() (int, bool) {
	r, ok := frequencyRank[f]
	return r, ok
}

// Example is an example sentence attached to a word.
type Example struct {
	Korean       string `json:"korean"`
	Romanization string `json:"romanization"`
	Translation  string `json:"english"`
}

// Word is a single vocabulary entry. Words are immutable once loaded and
// owned by the corpus for the process lifetime.
type Word struct {
	ID           int            `json:"id"`           // unique identifier within the corpus
	Korean       string         `json:"korean"`       // display form in Hangul
	Romanization string         `json:"romanization"` // romanized form
	Translation  string         `json:"english"`      // English translation
	PartOfSpeech string         `json:"partOfSpeech"` // noun, verb, adjective etc
	Topic        string         `json:"topic"`        // topic tag, e.g. "Greetings"
	Difficulty   DifficultyTier `json:"difficulty"`
	Frequency    FrequencyTier  `json:"frequency,omitempty"`
	Example      *Example       `json:"example,omitempty"`
}

package entities

// SessionDescriptor is the static configuration for one study session.
// Optional lists default to empty; selection logic never checks for absence.
type SessionDescriptor struct {
	ID               string         `yaml:"id"`
	Title            string         `yaml:"title"`
	Description      string         `yaml:"description"`
	Category         string         `yaml:"category"` // optional grouping key
	Topics           []string       `yaml:"topics"`
	Difficulty       DifficultyTier `yaml:"difficulty"`
	TargetWordCount  int            `yaml:"target_word_count"`
	WordTypes        []string       `yaml:"word_types"`        // optional part-of-speech filter
	PriorityKeywords []string       `yaml:"priority_keywords"` // optional ranking keywords
	Prerequisites    []string       `yaml:"prerequisites"`     // session ids that must be completed first
}

// Level groups descriptors. Level order and the descriptor order within a
// level are the canonical study order.
type Level struct {
	Number   int                 `yaml:"number"`
	Title    string              `yaml:"title"`
	Sessions []SessionDescriptor `yaml:"sessions"`
}

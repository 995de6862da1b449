package entities

// Session is the runtime view derived from a descriptor, the corpus and the
// completion record. It is never persisted; everything here can be
// recomputed from those three inputs.
type Session struct {
	SessionDescriptor

	Level      int    // containing level number
	LevelTitle string // containing level title

	Words           []Word // concrete ordered word list
	ActualWordCount int    // may be below TargetWordCount on a thin corpus
	Unlocked        bool   // true iff all prerequisites are completed
}

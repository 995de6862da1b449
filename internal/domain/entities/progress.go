package entities

// SessionProgress is the per-session progress record kept in the
// completion store.
type SessionProgress struct {
	WordsLearned  int
	WordsReviewed int
	Accuracy      float64 // percentage, 0-100
}

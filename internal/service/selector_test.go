package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haneulbit/korean-vocab-bot/internal/domain/entities"
)

func word(id int, korean, translation, topic string, tier entities.DifficultyTier) entities.Word {
	return entities.Word{
		ID:           id,
		Korean:       korean,
		Romanization: "romanized",
		Translation:  translation,
		PartOfSpeech: "noun",
		Topic:        topic,
		Difficulty:   tier,
	}
}

func TestSelectWords_filtersByTopicExactAndSubstring(t *testing.T) {
	words := []entities.Word{
		word(1, "밥", "rice", "Food", entities.DifficultyBeginner),
		word(2, "물", "water", "Food & Drink", entities.DifficultyBeginner),
		word(3, "길", "road", "Travel", entities.DifficultyBeginner),
	}

	d := entities.SessionDescriptor{
		ID:              "food",
		Topics:          []string{"Food"},
		Difficulty:      entities.DifficultyBeginner,
		TargetWordCount: 10,
	}

	got := SelectWords(d, words)

	require.Len(t, got, 2)
	for _, w := range got {
		assert.NotEqual(t, "Travel", w.Topic)
	}
}

func TestSelectWords_filtersByDifficulty(t *testing.T) {
	words := []entities.Word{
		word(1, "하나", "one", "Numbers", entities.DifficultyBeginner),
		word(2, "백만", "million", "Numbers", entities.DifficultyIntermediate),
		word(3, "조", "trillion", "Numbers", entities.DifficultyAdvanced),
	}

	tests := []struct {
		name    string
		tier    entities.DifficultyTier
		wantIDs []int
	}{
		{"exact beginner", entities.DifficultyBeginner, []int{1}},
		{"exact advanced", entities.DifficultyAdvanced, []int{3}},
		{"beginner-intermediate alias", entities.DifficultyBeginnerIntermediate, []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := entities.SessionDescriptor{
				ID:              "numbers",
				Topics:          []string{"Numbers"},
				Difficulty:      tt.tier,
				TargetWordCount: 10,
			}

			got := SelectWords(d, words)

			var ids []int
			for _, w := range got {
				ids = append(ids, w.ID)
			}
			assert.ElementsMatch(t, tt.wantIDs, ids)
		})
	}
}

func TestSelectWords_filtersByWordType(t *testing.T) {
	words := []entities.Word{
		{ID: 1, Korean: "가다", Topic: "Travel", Difficulty: entities.DifficultyBeginner, PartOfSpeech: "verb"},
		{ID: 2, Korean: "기차", Topic: "Travel", Difficulty: entities.DifficultyBeginner, PartOfSpeech: "noun"},
		{ID: 3, Korean: "빨리", Topic: "Travel", Difficulty: entities.DifficultyBeginner, PartOfSpeech: "adverb"},
	}

	d := entities.SessionDescriptor{
		ID:              "travel-verbs",
		Topics:          []string{"Travel"},
		Difficulty:      entities.DifficultyBeginner,
		WordTypes:       []string{"verb", "adverb"},
		TargetWordCount: 10,
	}

	got := SelectWords(d, words)

	require.Len(t, got, 2)
	for _, w := range got {
		assert.Contains(t, []string{"verb", "adverb"}, w.PartOfSpeech)
	}
}

func TestSelectWords_priorityWordsComeFirst(t *testing.T) {
	words := []entities.Word{
		word(1, "가방", "bag", "Shopping", entities.DifficultyBeginner),
		word(2, "안녕하세요", "hello (polite)", "Greetings", entities.DifficultyBeginner),
		word(3, "값", "price", "Shopping", entities.DifficultyBeginner),
		word(4, "안녕", "hello", "Greetings", entities.DifficultyBeginner),
	}

	d := entities.SessionDescriptor{
		ID:               "mixed",
		Topics:           []string{"Shopping", "Greetings"},
		Difficulty:       entities.DifficultyBeginner,
		PriorityKeywords: []string{"HELLO"},
		TargetWordCount:  10,
	}

	got := SelectWords(d, words)
	require.Len(t, got, 4)

	// Keyword matching is case-insensitive on the translation; priority
	// words are ordered by ascending Hangul length.
	assert.Equal(t, "안녕", got[0].Korean)
	assert.Equal(t, "안녕하세요", got[1].Korean)

	for _, w := range got[2:] {
		assert.NotContains(t, w.Translation, "hello")
	}
}

func TestSelectWords_priorityMatchesHangulSubstring(t *testing.T) {
	words := []entities.Word{
		word(1, "학교", "school", "Education", entities.DifficultyBeginner),
		word(2, "학생", "student", "Education", entities.DifficultyBeginner),
		word(3, "교실", "classroom", "Education", entities.DifficultyBeginner),
	}

	d := entities.SessionDescriptor{
		ID:               "edu",
		Topics:           []string{"Education"},
		Difficulty:       entities.DifficultyBeginner,
		PriorityKeywords: []string{"학"},
		TargetWordCount:  10,
	}

	got := SelectWords(d, words)
	require.Len(t, got, 3)

	assert.Equal(t, "학교", got[0].Korean)
	assert.Equal(t, "학생", got[1].Korean)
	assert.Equal(t, "교실", got[2].Korean)
}

func TestSelectWords_regularOrderedByFrequencyThenLexicographic(t *testing.T) {
	mk := func(id int, korean string, freq entities.FrequencyTier) entities.Word {
		w := word(id, korean, "x", "Nature", entities.DifficultyBeginner)
		w.Frequency = freq
		return w
	}

	words := []entities.Word{
		mk(1, "바다", entities.FrequencyUncommon),
		mk(2, "산", entities.FrequencyVeryCommon),
		mk(3, "강", entities.FrequencyCommon),
		mk(4, "늪", ""), // no frequency: lexicographic fallback
		mk(5, "섬", ""),
	}

	d := entities.SessionDescriptor{
		ID:              "nature",
		Topics:          []string{"Nature"},
		Difficulty:      entities.DifficultyBeginner,
		TargetWordCount: 10,
	}

	got := SelectWords(d, words)
	require.Len(t, got, 5)

	assert.Equal(t, "산", got[0].Korean)  // very-common
	assert.Equal(t, "강", got[1].Korean)  // common
	assert.Equal(t, "바다", got[2].Korean) // uncommon
	assert.Equal(t, "늪", got[3].Korean)
	assert.Equal(t, "섬", got[4].Korean)
}

func TestSelectWords_truncatesToTarget(t *testing.T) {
	var words []entities.Word
	for i := 0; i < 30; i++ {
		words = append(words, word(i, "단어", "word", "Basics", entities.DifficultyBeginner))
	}

	d := entities.SessionDescriptor{
		ID:              "basics",
		Topics:          []string{"Basics"},
		Difficulty:      entities.DifficultyBeginner,
		TargetWordCount: 12,
	}

	assert.Len(t, SelectWords(d, words), 12)
}

func TestSelectWords_thinCorpusReturnsAllEligible(t *testing.T) {
	var words []entities.Word
	for i := 0; i < 7; i++ {
		words = append(words, word(i, "인사", "greeting", "Greetings", entities.DifficultyBeginner))
	}

	d := entities.SessionDescriptor{
		ID:              "greetings",
		Topics:          []string{"Greetings"},
		Difficulty:      entities.DifficultyBeginner,
		TargetWordCount: 25,
	}

	assert.Len(t, SelectWords(d, words), 7)
}

func TestSelectWords_zeroEligibleReturnsEmpty(t *testing.T) {
	words := []entities.Word{
		word(1, "밥", "rice", "Food", entities.DifficultyBeginner),
	}

	d := entities.SessionDescriptor{
		ID:              "weather",
		Topics:          []string{"Weather"},
		Difficulty:      entities.DifficultyBeginner,
		TargetWordCount: 10,
	}

	assert.Empty(t, SelectWords(d, words))
}

func TestSelectWords_deterministic(t *testing.T) {
	var words []entities.Word
	for i := 0; i < 40; i++ {
		w := word(i, string(rune('가'+i))+"어", "x", "Basics", entities.DifficultyBeginner)
		if i%3 == 0 {
			w.Frequency = entities.FrequencyCommon
		}
		words = append(words, w)
	}

	d := entities.SessionDescriptor{
		ID:               "basics",
		Topics:           []string{"Basics"},
		Difficulty:       entities.DifficultyBeginner,
		PriorityKeywords: []string{"가"},
		TargetWordCount:  20,
	}

	first := SelectWords(d, words)
	second := SelectWords(d, words)

	assert.Equal(t, first, second)
}

func TestSelectWords_doesNotMutateInput(t *testing.T) {
	words := []entities.Word{
		word(3, "다", "c", "Basics", entities.DifficultyBeginner),
		word(1, "가", "a", "Basics", entities.DifficultyBeginner),
		word(2, "나", "b", "Basics", entities.DifficultyBeginner),
	}
	originalOrder := []int{3, 1, 2}

	d := entities.SessionDescriptor{
		ID:              "basics",
		Topics:          []string{"Basics"},
		Difficulty:      entities.DifficultyBeginner,
		TargetWordCount: 3,
	}

	_ = SelectWords(d, words)

	for i, w := range words {
		assert.Equal(t, originalOrder[i], w.ID)
	}
}

package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"sort"

	"github.com/haneulbit/korean-vocab-bot/internal/domain/entities"
)

var (
	ErrWordNotFound = errors.New("word not found")
	ErrEmptyCorpus  = errors.New("corpus contains no words")
)

// WordCorpus provides read-only access to the vocabulary word list.
// The list is loaded once at startup and never mutated afterwards.
type WordCorpus struct {
	words []entities.Word
	byID  map[int]int // word id -> index into words
}

// NewWordCorpus loads the corpus from a JSON file.
func NewWordCorpus(path string) (*WordCorpus, error) {
	words, err := loadWords(path)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]int, len(words))
	for i, w := range words {
		byID[w.ID] = i
	}

	return &WordCorpus{
		words: words,
		byID:  byID,
	}, nil
}

// GetByID retrieves a word by its identifier.
func (c *WordCorpus) GetByID(id int) (entities.Word, error) {
	i, ok := c.byID[id]
	if !ok {
		return entities.Word{}, ErrWordNotFound
	}
	return c.words[i], nil
}

// GetAll retrieves all words in corpus order.
func (c *WordCorpus) GetAll() []entities.Word {
	return c.words
}

// GetByTopic retrieves all words carrying exactly the given topic tag.
func (c *WordCorpus) GetByTopic(topic string) []entities.Word {
	var out []entities.Word
	for _, w := range c.words {
		if w.Topic == topic {
			out = append(out, w)
		}
	}
	return out
}

// GetRandom retrieves a random word.
func (c *WordCorpus) GetRandom() (entities.Word, error) {
	if len(c.words) == 0 {
		return entities.Word{}, ErrWordNotFound
	}

	idx := rand.Intn(len(c.words))
	return c.words[idx], nil
}

// Topics returns the sorted set of topic tags present in the corpus.
func (c *WordCorpus) Topics() []string {
	seen := make(map[string]struct{})
	for _, w := range c.words {
		seen[w.Topic] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Count returns the number of words in the corpus.
func (c *WordCorpus) Count() int {
	return len(c.words)
}

func loadWords(path string) ([]entities.Word, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Words []entities.Word `json:"words"`
	}
	if err = json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal corpus JSON: %w", err)
	}

	if len(wrapper.Words) == 0 {
		return nil, ErrEmptyCorpus
	}

	seen := make(map[int]struct{}, len(wrapper.Words))
	for _, w := range wrapper.Words {
		if _, ok := seen[w.ID]; ok {
			return nil, fmt.Errorf("duplicate word id %d", w.ID)
		}
		seen[w.ID] = struct{}{}

		if !w.Difficulty.ValidWordTier() {
			return nil, fmt.Errorf("word %d: unknown difficulty %q", w.ID, w.Difficulty)
		}
	}

	return wrapper.Words, nil
}

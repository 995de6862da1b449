package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haneulbit/korean-vocab-bot/internal/domain/entities"
)

const catalogYAML = `
levels:
  - number: 1
    title: "Foundations"
    sessions:
      - id: greetings-basics
        title: "First greetings"
        description: "Essential hellos and thank-yous."
        category: essentials
        topics: ["Greetings"]
        difficulty: beginner
        target_word_count: 25
        priority_keywords: ["hello", "thank"]
      - id: food-basics
        title: "  At the table "
        description: "Everyday food words."
        topics: ["Food", " Food & Drink "]
        difficulty: beginner-intermediate
        target_word_count: 20
        word_types: ["noun"]
        prerequisites: ["greetings-basics"]
  - number: 2
    title: "Getting around"
    sessions:
      - id: travel-core
        title: "On the move"
        description: "Transport and directions."
        topics: ["Travel"]
        difficulty: intermediate
        target_word_count: 30
        prerequisites: ["food-basics"]
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sessions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewSessionCatalog(t *testing.T) {
	c, err := NewSessionCatalog(writeCatalog(t, catalogYAML))
	require.NoError(t, err)

	levels := c.Levels()
	require.Len(t, levels, 2)

	assert.Equal(t, 1, levels[0].Number)
	assert.Equal(t, "Foundations", levels[0].Title)
	require.Len(t, levels[0].Sessions, 2)

	first := levels[0].Sessions[0]
	assert.Equal(t, "greetings-basics", first.ID)
	assert.Equal(t, entities.DifficultyBeginner, first.Difficulty)
	assert.Equal(t, 25, first.TargetWordCount)
	assert.Equal(t, []string{"hello", "thank"}, first.PriorityKeywords)
	assert.Empty(t, first.Prerequisites)

	// Authored whitespace is trimmed.
	second := levels[0].Sessions[1]
	assert.Equal(t, "At the table", second.Title)
	assert.Equal(t, []string{"Food", "Food & Drink"}, second.Topics)
	assert.Equal(t, entities.DifficultyBeginnerIntermediate, second.Difficulty)
	assert.Equal(t, []string{"greetings-basics"}, second.Prerequisites)
}

func TestNewSessionCatalog_preservesAuthoredOrder(t *testing.T) {
	c, err := NewSessionCatalog(writeCatalog(t, catalogYAML))
	require.NoError(t, err)

	var ids []string
	for _, lvl := range c.Levels() {
		for _, d := range lvl.Sessions {
			ids = append(ids, d.ID)
		}
	}
	assert.Equal(t, []string{"greetings-basics", "food-basics", "travel-core"}, ids)
}

func TestNewSessionCatalog_validation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "empty catalog",
			yaml:    `levels: []`,
			wantErr: ErrEmptyCatalog.Error(),
		},
		{
			name: "duplicate id",
			yaml: `
levels:
  - number: 1
    title: "L1"
    sessions:
      - {id: a, title: A, topics: [X], difficulty: beginner, target_word_count: 10}
      - {id: a, title: B, topics: [X], difficulty: beginner, target_word_count: 10}
`,
			wantErr: "duplicate session id",
		},
		{
			name: "empty topics",
			yaml: `
levels:
  - number: 1
    title: "L1"
    sessions:
      - {id: a, title: A, topics: [], difficulty: beginner, target_word_count: 10}
`,
			wantErr: "topics must not be empty",
		},
		{
			name: "unknown difficulty",
			yaml: `
levels:
  - number: 1
    title: "L1"
    sessions:
      - {id: a, title: A, topics: [X], difficulty: fiendish, target_word_count: 10}
`,
			wantErr: "unknown difficulty",
		},
		{
			name: "non-positive target",
			yaml: `
levels:
  - number: 1
    title: "L1"
    sessions:
      - {id: a, title: A, topics: [X], difficulty: beginner, target_word_count: 0}
`,
			wantErr: "target_word_count must be positive",
		},
		{
			name: "non-positive level number",
			yaml: `
levels:
  - number: 0
    title: "L0"
    sessions:
      - {id: a, title: A, topics: [X], difficulty: beginner, target_word_count: 10}
`,
			wantErr: "number must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSessionCatalog(writeCatalog(t, tt.yaml))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNewSessionCatalog_danglingPrerequisiteIsAccepted(t *testing.T) {
	// A prerequisite referencing an unknown session is a registry-time
	// warning, not a load failure.
	c, err := NewSessionCatalog(writeCatalog(t, `
levels:
  - number: 1
    title: "L1"
    sessions:
      - {id: a, title: A, topics: [X], difficulty: beginner, target_word_count: 10, prerequisites: [nonexistent]}
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"nonexistent"}, c.Levels()[0].Sessions[0].Prerequisites)
}

func TestNewSessionCatalog_missingFile(t *testing.T) {
	_, err := NewSessionCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

package repository

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/haneulbit/korean-vocab-bot/internal/domain/entities"
)

var ErrEmptyCatalog = errors.New("catalog contains no levels")

// SessionCatalog provides read-only access to the declarative session
// catalog. Level order and descriptor order within a level are preserved
// exactly as authored; they form the canonical study order.
type SessionCatalog struct {
	levels []entities.Level
}

// NewSessionCatalog loads the catalog from a YAML file.
func NewSessionCatalog(path string) (*SessionCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Levels []entities.Level `yaml:"levels"`
	}
	if err = yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog YAML: %w", err)
	}

	if len(wrapper.Levels) == 0 {
		return nil, ErrEmptyCatalog
	}

	if err := validateLevels(wrapper.Levels); err != nil {
		return nil, err
	}

	return &SessionCatalog{levels: normalizeLevels(wrapper.Levels)}, nil
}

// Levels returns all levels in catalog order.
func (c *SessionCatalog) Levels() []entities.Level {
	return c.levels
}

func validateLevels(levels []entities.Level) error {
	seenIDs := make(map[string]struct{})

	for _, lvl := range levels {
		if lvl.Number <= 0 {
			return fmt.Errorf("level %q: number must be positive", lvl.Title)
		}

		for _, d := range lvl.Sessions {
			if strings.TrimSpace(d.ID) == "" {
				return fmt.Errorf("level %d: session with empty id", lvl.Number)
			}
			if _, ok := seenIDs[d.ID]; ok {
				return fmt.Errorf("duplicate session id %q", d.ID)
			}
			seenIDs[d.ID] = struct{}{}

			if len(d.Topics) == 0 {
				return fmt.Errorf("session %q: topics must not be empty", d.ID)
			}
			if !d.Difficulty.ValidDescriptorTier() {
				return fmt.Errorf("session %q: unknown difficulty %q", d.ID, d.Difficulty)
			}
			if d.TargetWordCount <= 0 {
				return fmt.Errorf("session %q: target_word_count must be positive", d.ID)
			}
		}
	}

	return nil
}

// normalizeLevels trims whitespace from authored strings. Prerequisite ids
// referring to unknown sessions are left as-is: a dangling prerequisite is a
// catalog authoring problem the registry reports as a warning, not a load
// failure.
func normalizeLevels(levels []entities.Level) []entities.Level {
	for li := range levels {
		levels[li].Title = strings.TrimSpace(levels[li].Title)

		for si := range levels[li].Sessions {
			d := &levels[li].Sessions[si]
			d.ID = strings.TrimSpace(d.ID)
			d.Title = strings.TrimSpace(d.Title)
			d.Description = strings.TrimSpace(d.Description)
			d.Category = strings.TrimSpace(d.Category)
			d.Topics = trimAll(d.Topics)
			d.WordTypes = trimAll(d.WordTypes)
			d.PriorityKeywords = trimAll(d.PriorityKeywords)
			d.Prerequisites = trimAll(d.Prerequisites)
		}
	}
	return levels
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

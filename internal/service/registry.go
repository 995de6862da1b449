package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/haneulbit/korean-vocab-bot/internal/domain/entities"
)

var ErrSessionNotFound = errors.New("session not found")

// MinViableWordCount is the smallest word list worth studying. Descriptors
// that select fewer words are dropped from the registry entirely instead of
// being exposed half-populated.
const MinViableWordCount = 10

// SessionRegistry owns the derived collection of Session views. It is built
// once from the catalog and the corpus, gates unlock status on the persisted
// completed-set and is the only writer of the completion store.
//
// The registry is driven from the single update-handling goroutine; it has
// no internal locking.
type SessionRegistry struct {
	store  CompletionStore
	logger *zap.Logger

	sessions []*entities.Session // canonical catalog order
	byID     map[string]*entities.Session

	// In-memory mirror of the store. Stays authoritative for the process
	// lifetime when the store degrades.
	completed map[string]struct{}
	progress  map[string]entities.SessionProgress
}

// NewSessionRegistry builds every viable session from the catalog and the
// corpus and derives unlock status from the persisted completed-set. A store
// read failure degrades to "nothing completed yet".
func NewSessionRegistry(
	ctx context.Context,
	catalog SessionCatalog,
	corpus WordCorpus,
	store CompletionStore,
	logger *zap.Logger,
) (*SessionRegistry, error) {
	words := corpus.GetAll()
	if len(words) == 0 {
		return nil, errors.New("corpus is empty")
	}

	levels := catalog.Levels()
	if len(levels) == 0 {
		return nil, errors.New("catalog has no levels")
	}

	r := &SessionRegistry{
		store:     store,
		logger:    logger,
		byID:      make(map[string]*entities.Session),
		completed: make(map[string]struct{}),
		progress:  make(map[string]entities.SessionProgress),
	}

	ids, err := store.GetCompletedIDs(ctx)
	if err != nil {
		logger.Warn("completion store unavailable, starting with empty completed-set", zap.Error(err))
		ids = nil
	}
	for _, id := range ids {
		r.completed[id] = struct{}{}
	}

	for _, lvl := range levels {
		for _, d := range lvl.Sessions {
			selected := SelectWords(d, words)
			if len(selected) < MinViableWordCount {
				logger.Warn("dropping session: not enough eligible words",
					zap.String("session_id", d.ID),
					zap.Int("selected", len(selected)),
					zap.Int("min_viable", MinViableWordCount),
				)
				continue
			}

			s := &entities.Session{
				SessionDescriptor: d,
				Level:             lvl.Number,
				LevelTitle:        lvl.Title,
				Words:             selected,
				ActualWordCount:   len(selected),
			}
			// Unlock gating sees only the sessions built so far; a
			// prerequisite that appears later in the catalog stays locked
			// until the first recomputation.
			s.Unlocked = r.isUnlocked(s.Prerequisites)

			r.sessions = append(r.sessions, s)
			r.byID[s.ID] = s

			p, err := store.GetProgress(ctx, s.ID)
			if err != nil {
				logger.Warn("failed to read session progress",
					zap.String("session_id", s.ID),
					zap.Error(err),
				)
				p = entities.SessionProgress{}
			}
			r.progress[s.ID] = p
		}
	}

	r.warnDanglingPrerequisites()

	return r, nil
}

// isUnlocked reports whether every prerequisite both resolves to a built
// session and is completed. Sessions without prerequisites are always
// unlocked.
func (r *SessionRegistry) isUnlocked(prereqs []string) bool {
	for _, id := range prereqs {
		if _, ok := r.byID[id]; !ok {
			return false
		}
		if _, ok := r.completed[id]; !ok {
			return false
		}
	}
	return true
}

// recomputeUnlocks re-derives unlock status for every session. One
// completion can unlock many downstream sessions.
func (r *SessionRegistry) recomputeUnlocks() {
	for _, s := range r.sessions {
		s.Unlocked = r.isUnlocked(s.Prerequisites)
	}
}

func (r *SessionRegistry) warnDanglingPrerequisites() {
	for _, s := range r.sessions {
		for _, id := range s.Prerequisites {
			if _, ok := r.byID[id]; !ok {
				r.logger.Warn("session has a prerequisite that never resolves",
					zap.String("session_id", s.ID),
					zap.String("prerequisite", id),
				)
			}
		}
	}
}

// GetSession retrieves a session by id.
func (r *SessionRegistry) GetSession(id string) (*entities.Session, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// GetAllSessions returns all sessions in canonical catalog order.
func (r *SessionRegistry) GetAllSessions() []*entities.Session {
	return r.sessions
}

// GetSessionsByLevel groups sessions by level number, preserving catalog
// order within each level.
func (r *SessionRegistry) GetSessionsByLevel() map[int][]*entities.Session {
	out := make(map[int][]*entities.Session)
	for _, s := range r.sessions {
		out[s.Level] = append(out[s.Level], s)
	}
	return out
}

// GetSessionsByCategory groups sessions by category. Sessions without a
// category group under "general".
func (r *SessionRegistry) GetSessionsByCategory() map[string][]*entities.Session {
	out := make(map[string][]*entities.Session)
	for _, s := range r.sessions {
		cat := s.Category
		if cat == "" {
			cat = "general"
		}
		out[cat] = append(out[cat], s)
	}
	return out
}

// GetSessionsByDifficulty returns sessions whose descriptor carries exactly
// the given tier.
func (r *SessionRegistry) GetSessionsByDifficulty(tier entities.DifficultyTier) []*entities.Session {
	var out []*entities.Session
	for _, s := range r.sessions {
		if s.Difficulty == tier {
			out = append(out, s)
		}
	}
	return out
}

// GetRecommendedSessions returns unlocked sessions ordered by level, then id.
// The explicit ordering keeps recommendations reproducible independent of
// build order.
func (r *SessionRegistry) GetRecommendedSessions() []*entities.Session {
	var out []*entities.Session
	for _, s := range r.sessions {
		if s.Unlocked {
			out = append(out, s)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level < out[j].Level
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// GetNextRecommendedSession returns the first recommended session that is
// not yet completed.
func (r *SessionRegistry) GetNextRecommendedSession() (*entities.Session, error) {
	for _, s := range r.GetRecommendedSessions() {
		if _, done := r.completed[s.ID]; !done {
			return s, nil
		}
	}
	return nil, ErrSessionNotFound
}

// SearchSessions matches the query case-insensitively against title,
// description, topics, category and level title.
func (r *SessionRegistry) SearchSessions(query string) []*entities.Session {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []*entities.Session
	for _, s := range r.sessions {
		if sessionMatches(s, q) {
			out = append(out, s)
		}
	}
	return out
}

func sessionMatches(s *entities.Session, q string) bool {
	if strings.Contains(strings.ToLower(s.Title), q) ||
		strings.Contains(strings.ToLower(s.Description), q) ||
		strings.Contains(strings.ToLower(s.Category), q) ||
		strings.Contains(strings.ToLower(s.LevelTitle), q) {
		return true
	}
	for _, t := range s.Topics {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// IsCompleted reports whether a session id is in the completed-set.
func (r *SessionRegistry) IsCompleted(id string) bool {
	_, ok := r.completed[id]
	return ok
}

// GetProgress returns the progress record for a session, or the zero record
// when none is stored.
func (r *SessionRegistry) GetProgress(id string) entities.SessionProgress {
	return r.progress[id]
}

// LevelProgress is the per-level slice of the aggregate stats.
type LevelProgress struct {
	Level     int
	Title     string
	Total     int
	Completed int
}

// ProgressStats aggregates completion state over the whole registry.
type ProgressStats struct {
	Total     int
	Completed int
	Unlocked  int
	Levels    []LevelProgress
}

// GetProgressStats returns aggregate counts and a per-level breakdown in
// catalog order.
func (r *SessionRegistry) GetProgressStats() ProgressStats {
	stats := ProgressStats{}
	byLevel := make(map[int]*LevelProgress)
	var order []int

	for _, s := range r.sessions {
		stats.Total++
		if s.Unlocked {
			stats.Unlocked++
		}

		lp, ok := byLevel[s.Level]
		if !ok {
			lp = &LevelProgress{Level: s.Level, Title: s.LevelTitle}
			byLevel[s.Level] = lp
			order = append(order, s.Level)
		}
		lp.Total++

		if r.IsCompleted(s.ID) {
			stats.Completed++
			lp.Completed++
		}
	}

	for _, n := range order {
		stats.Levels = append(stats.Levels, *byLevel[n])
	}

	return stats
}

// MarkCompleted adds a session to the completed-set and re-derives unlock
// status. Marking an already-completed or unknown session is a no-op for
// the set; unlock status is recomputed either way. A store write failure is
// logged and dropped, the in-memory state stays consistent.
func (r *SessionRegistry) MarkCompleted(ctx context.Context, id string) {
	if _, ok := r.byID[id]; !ok {
		r.logger.Warn("mark completed for unknown session", zap.String("session_id", id))
		return
	}

	if _, done := r.completed[id]; !done {
		r.completed[id] = struct{}{}
		if err := r.store.SetCompletedIDs(ctx, r.completedIDs()); err != nil {
			r.logger.Warn("failed to persist completed-set",
				zap.String("session_id", id),
				zap.Error(err),
			)
		}
	}

	r.recomputeUnlocks()
}

// UpdateProgress overwrites the stored progress record for a session. It
// does not affect unlock status. Unknown ids are a no-op.
func (r *SessionRegistry) UpdateProgress(ctx context.Context, id string, p entities.SessionProgress) {
	if _, ok := r.byID[id]; !ok {
		r.logger.Warn("update progress for unknown session", zap.String("session_id", id))
		return
	}

	r.progress[id] = p
	if err := r.store.SetProgress(ctx, id, p); err != nil {
		r.logger.Warn("failed to persist session progress",
			zap.String("session_id", id),
			zap.Error(err),
		)
	}
}

// ResetProgress clears the completed-set and all progress records. Only
// prerequisite-free sessions remain unlocked afterwards.
func (r *SessionRegistry) ResetProgress(ctx context.Context) {
	r.completed = make(map[string]struct{})
	r.progress = make(map[string]entities.SessionProgress)

	if err := r.store.ClearAll(ctx); err != nil {
		r.logger.Warn("failed to clear completion store", zap.Error(err))
	}

	r.recomputeUnlocks()
}

func (r *SessionRegistry) completedIDs() []string {
	ids := make([]string, 0, len(r.completed))
	for id := range r.completed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

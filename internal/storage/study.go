package storage

import (
	"sync"
)

// StudyState tracks one chat's pass through a session's word list. The word
// index itself travels in callback data; the state keeps the running counts
// that feed the progress record on finish.
type StudyState struct {
	SessionID string
	Known     int // cards the user marked as known
	Reviewed  int // cards the user answered either way
}

// StudyStorage provides in-memory storage for active study state by chat ID.
type StudyStorage struct {
	mu     sync.RWMutex
	states map[int64]*StudyState
}

// NewStudyStorage creates a new StudyStorage.
func NewStudyStorage() *StudyStorage {
	return &StudyStorage{
		states: make(map[int64]*StudyState),
	}
}

// Start begins a fresh study pass for a chat, replacing any previous one.
func (s *StudyStorage) Start(chatID int64, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[chatID] = &StudyState{SessionID: sessionID}
}

// Get retrieves the study state for a chat, or nil if none is active.
func (s *StudyStorage) Get(chatID int64) *StudyState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.states[chatID]
}

// Answer records one reviewed card for the chat's active pass.
func (s *StudyStorage) Answer(chatID int64, knew bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.states[chatID]
	if !ok {
		return
	}
	st.Reviewed++
	if knew {
		st.Known++
	}
}

// Delete removes the study state for a chat.
func (s *StudyStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, chatID)
}

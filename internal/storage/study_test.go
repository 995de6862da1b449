package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudyStorage(t *testing.T) {
	s := NewStudyStorage()

	assert.Nil(t, s.Get(1))

	s.Start(1, "greetings-basics")
	st := s.Get(1)
	require.NotNil(t, st)
	assert.Equal(t, "greetings-basics", st.SessionID)

	s.Answer(1, true)
	s.Answer(1, false)
	s.Answer(1, true)

	st = s.Get(1)
	assert.Equal(t, 3, st.Reviewed)
	assert.Equal(t, 2, st.Known)

	// Starting again resets the counts.
	s.Start(1, "food-basics")
	st = s.Get(1)
	assert.Equal(t, "food-basics", st.SessionID)
	assert.Zero(t, st.Reviewed)

	s.Delete(1)
	assert.Nil(t, s.Get(1))
}

func TestStudyStorage_answerWithoutActiveState(t *testing.T) {
	s := NewStudyStorage()
	s.Answer(42, true) // no panic, no state created
	assert.Nil(t, s.Get(42))
}

package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyTier_Matches(t *testing.T) {
	tests := []struct {
		descriptor DifficultyTier
		word       DifficultyTier
		want       bool
	}{
		{DifficultyBeginner, DifficultyBeginner, true},
		{DifficultyBeginner, DifficultyIntermediate, false},
		{DifficultyAdvanced, DifficultyAdvanced, true},
		{DifficultyBeginnerIntermediate, DifficultyBeginner, true},
		{DifficultyBeginnerIntermediate, DifficultyIntermediate, true},
		{DifficultyBeginnerIntermediate, DifficultyAdvanced, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.descriptor.Matches(tt.word),
			"%s vs %s", tt.descriptor, tt.word)
	}
}

func TestDifficultyTier_Valid(t *testing.T) {
	assert.True(t, DifficultyBeginner.ValidWordTier())
	assert.False(t, DifficultyBeginnerIntermediate.ValidWordTier())
	assert.True(t, DifficultyBeginnerIntermediate.ValidDescriptorTier())
	assert.False(t, DifficultyTier("expert").ValidDescriptorTier())
}

func TestFrequencyTier_Rank(t *testing.T) {
	veryCommon, ok := FrequencyVeryCommon.Rank()
	assert.True(t, ok)
	rare, ok := FrequencyRare.Rank()
	assert.True(t, ok)
	assert.Greater(t, veryCommon, rare)

	_, ok = FrequencyTier("").Rank()
	assert.False(t, ok)
	_, ok = FrequencyTier("sometimes").Rank()
	assert.False(t, ok)
}

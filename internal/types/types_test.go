package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcome(t *testing.T) {
	t.Parallel()
	tests := []struct {
		outcome  Outcome
		name     string
		terminal bool
	}{
		{Less, "less", false},
		{Greater, "greater", false},
		{Equal, "equal", true},
		{Outcome(7), "Outcome(7)", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.name, tt.outcome.String())
			assert.Equal(t, tt.terminal, tt.outcome.Terminal())
		})
	}
}

func TestRangeValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, DefaultRange.Validate())
	assert.NoError(t, Range{Min: 5, Max: 5}.Validate())

	err := Range{Min: 10, Max: 1}.Validate()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRange))
}

func TestRangeContains(t *testing.T) {
	t.Parallel()
	r := DefaultRange

	assert.True(t, r.Contains(1))
	assert.True(t, r.Contains(100))
	assert.False(t, r.Contains(0))
	assert.False(t, r.Contains(101))
	assert.Equal(t, "[1, 100]", r.String())
}

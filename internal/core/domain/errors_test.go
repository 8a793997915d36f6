package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrEmptyCorpus", ErrEmptyCorpus},
		{"ErrInvalidTopicCount", ErrInvalidTopicCount},
		{"ErrDegenerateInput", ErrDegenerateInput},
		{"ErrNumericInstability", ErrNumericInstability},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrInvalidEncoding", ErrInvalidEncoding},
		{"ErrUnsupportedType", ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	assert.False(t, errors.Is(ErrEmptyCorpus, ErrDegenerateInput))
	assert.False(t, errors.Is(ErrInvalidTopicCount, ErrInvalidInput))
}

func TestStageError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StageError
		sentinel error
		message  string
	}{
		{
			name:     "with value",
			err:      NewStageError(StageFit, 7, ErrInvalidTopicCount),
			sentinel: ErrInvalidTopicCount,
			message:  "fit: invalid topic count (7)",
		},
		{
			name:     "without value",
			err:      NewStageError(StageVectorise, nil, ErrEmptyCorpus),
			sentinel: ErrEmptyCorpus,
			message:  "vectorise: empty corpus",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			assert.ErrorIs(t, tt.err, tt.sentinel)

			wrapped := fmt.Errorf("run: %w", tt.err)
			var stageErr *StageError
			assert.True(t, errors.As(wrapped, &stageErr))
			assert.Equal(t, tt.err.Stage, stageErr.Stage)
		})
	}
}

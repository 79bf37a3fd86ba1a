package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineError(t *testing.T) {
	t.Run("Error returns message", func(t *testing.T) {
		err := New(CodeNotFound, "Config file not found: /tmp/missing.yaml")
		assert.Equal(t, "Config file not found: /tmp/missing.yaml", err.Error())
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := stderrors.New("underlying")
		err := Wrap(CodeUnclassified, cause, "parse failed")
		assert.Equal(t, cause, stderrors.Unwrap(err))
		assert.True(t, stderrors.Is(err, cause))
	})

	t.Run("Newf formats message", func(t *testing.T) {
		err := Newf(CodeValidation, "Missing required config key: %s", "window")
		assert.Equal(t, "Missing required config key: window", err.Error())
	})
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"not found error", NotFoundf("Input file not found: %s", "x.csv"), CodeNotFound},
		{"validation error", Validationf("Input CSV is empty"), CodeValidation},
		{"plain error", stderrors.New("boom"), CodeUnclassified},
		{"wrapped pipeline error", fmt.Errorf("load data: %w", Validationf("bad")), CodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestPredicates(t *testing.T) {
	nf := NotFoundf("gone")
	val := Validationf("bad")
	require.True(t, IsNotFound(nf))
	require.False(t, IsNotFound(val))
	require.True(t, IsValidation(val))
	require.False(t, IsValidation(nf))
	assert.False(t, IsValidation(stderrors.New("other")))
}

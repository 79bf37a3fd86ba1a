package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	t.Run("success record round-trips with stable field order", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "metrics.json")
		var stdout bytes.Buffer

		rec := Success("v1", 5, 0.4, 12, 42)
		require.NoError(t, Write(rec, path, &stdout))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		// The stdout echo is the file content plus a trailing newline.
		assert.Equal(t, string(data)+"\n", stdout.String())

		var decoded Record
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, *rec, decoded)

		// Field order in the document follows the record shape.
		text := string(data)
		assert.Less(t, indexOf(t, text, `"version"`), indexOf(t, text, `"rows_processed"`))
		assert.Less(t, indexOf(t, text, `"rows_processed"`), indexOf(t, text, `"metric"`))
		assert.Less(t, indexOf(t, text, `"latency_ms"`), indexOf(t, text, `"status"`))
	})

	t.Run("error record carries fallback version", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "metrics.json")
		var stdout bytes.Buffer

		rec := Failure("Input CSV is empty")
		require.NoError(t, Write(rec, path, &stdout))

		var decoded ErrorRecord
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, &decoded))

		assert.Equal(t, FallbackVersion, decoded.Version)
		assert.Equal(t, StatusError, decoded.Status)
		assert.Equal(t, "Input CSV is empty", decoded.ErrorMessage)
	})

	t.Run("output path is overwritten", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "metrics.json")
		require.NoError(t, os.WriteFile(path, []byte("stale content from a previous run"), 0644))

		require.NoError(t, Write(Failure("boom"), path, &bytes.Buffer{}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "stale content")
	})

	t.Run("unwritable path fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing-dir", "metrics.json")
		err := Write(Failure("boom"), path, &bytes.Buffer{})
		require.Error(t, err)
	})
}

func indexOf(t *testing.T, s, sub string) int {
	t.Helper()
	idx := bytes.Index([]byte(s), []byte(sub))
	require.GreaterOrEqual(t, idx, 0, "substring %q not found", sub)
	return idx
}

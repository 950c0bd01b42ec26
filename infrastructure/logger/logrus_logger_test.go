package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFields(t *testing.T) {
	tests := []struct {
		name     string
		fields   []interface{}
		expected logrus.Fields
	}{
		{
			name:     "pairs",
			fields:   []interface{}{"option", "k_candidates", "value", 5},
			expected: logrus.Fields{"option": "k_candidates", "value": 5},
		},
		{
			name:     "dangling key",
			fields:   []interface{}{"option", "batch_size", "value"},
			expected: logrus.Fields{"option": "batch_size"},
		},
		{
			name:     "non-string key",
			fields:   []interface{}{1, "x", "path", "/data"},
			expected: logrus.Fields{"path": "/data"},
		},
		{
			name:     "empty",
			fields:   nil,
			expected: logrus.Fields{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseFields(tt.fields...))
		})
	}
}

func TestLogrusLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogrusLogger("debug", "json", &buf)

	log.WithError(errors.New("boom")).Debug("loaded", "option", "test_dir")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "loaded", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "test_dir", entry["option"])
	assert.Equal(t, "boom", entry["error"])
}

func TestLogrusLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogrusLogger("warn", "text", &buf)

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown", "path", "/data/sprites/")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "path=/data/sprites/")
}

func TestLogrusLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogrusLogger("verbose", "text", &buf)

	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.WithFields(map[string]interface{}{"k": 5}).Info("shown")
	assert.Contains(t, buf.String(), "k=5")
}

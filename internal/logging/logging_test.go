package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewSetsLevel(t *testing.T) {
	logger := New("debug", "text")
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	logger = New("ERROR", "text")
	assert.Equal(t, logrus.ErrorLevel, logger.GetLevel())
}

func TestNewFallsBackToInfoOnUnknownLevel(t *testing.T) {
	logger := New("verbose", "text")
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestFieldKeys(t *testing.T) {
	keys := []string{
		FieldFile, FieldCount, FieldID, FieldOldID, FieldNewID,
		FieldIndex, FieldCategory, FieldKeyword,
	}
	seen := make(map[string]bool, len(keys))
	for _, key := range keys {
		assert.NotEmpty(t, key)
		assert.False(t, seen[key], "duplicate field key %q", key)
		seen[key] = true
	}
}

func TestNewFormatters(t *testing.T) {
	logger := New("info", "json")
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	logger = New("info", "text")
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

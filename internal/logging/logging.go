// Package logging centralizes logger construction so every package logs with
// the same level and format.
package logging

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Common structured field keys used across the application.
const (
	FieldFile     = "file"
	FieldCount    = "count"
	FieldID       = "id"
	FieldOldID    = "old_id"
	FieldNewID    = "new_id"
	FieldIndex    = "index"
	FieldCategory = "category"
	FieldKeyword  = "keyword"
)

// New builds a configured logrus logger.
//
// level is one of logrus' level names ("debug", "info", "warn", "error");
// an unknown level falls back to "info". format is "text" or "json".
func New(level, format string) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

// Package logging builds the charmbracelet loggers shared by the services.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// New creates a logger with timestamps filtered at level.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
}

// ParseLevel переводит строку из конфигурации в уровень; неизвестное значение дает info.
func ParseLevel(s string) log.Level {
	level, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

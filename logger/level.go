package logger

import (
	"fmt"
	"strings"
)

// Level is the importance of a logged message.
// Levels are ordered ascending by importance.
type Level int8

const (
	// Debug messages usually require additional CLI flags
	Debug Level = iota
	// Info is used for ignorable, neutral information
	Info
	Warning
	// Error is used for failures that are not severe
	Error
	// Severe failures usually cause the application to shut down
	Severe
)

var levelNames = [...]string{
	Debug:   "Debug",
	Info:    "Info",
	Warning: "Warning",
	Error:   "Error",
	Severe:  "Severe",
}

func (l Level) String() string {
	if l < Debug || l > Severe {
		return fmt.Sprintf("Level(%d)", int8(l))
	}
	return levelNames[l]
}

// ParseLevel converts a case-insensitive level name to a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return Debug, nil
	case "info":
		return Info, nil
	case "warn", "warning":
		return Warning, nil
	case "error":
		return Error, nil
	case "severe":
		return Severe, nil
	}
	return 0, fmt.Errorf("unknown level %q", s)
}

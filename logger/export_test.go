package logger

import "time"

// SetNow replaces the clock used for timestamps
func (l *Logger) SetNow(now func() time.Time) { l.now = now }

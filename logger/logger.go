// Package logger provides formatted and filtered logging.
//
// Example:
//
//	out := logger.NewStreamWriter(os.Stdout)
//	log := logger.New(out, "MyLogger ", logger.Info, logger.OptFlushEachLine)
//
//	if n == 0 {
//		log.Error("found no files in the directory")
//	} else {
//		log.Info("found files in the directory", logger.Int("files", n))
//	}
//
// A Logger is safe for concurrent use as long as its Writer is.
package logger

import (
	"io"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/romshark/ntoa/internal/bitmask"
	"github.com/romshark/ntoa/internal/bufpool"
)

// Options is a bitmask of logger options
type Options uint8

var (
	// OptTimestamp prefixes every line with an RFC3339 UTC timestamp
	OptTimestamp = bitmask.Bit[Options](0)
	// OptFlushEachLine flushes the writer after every line
	OptFlushEachLine = bitmask.Bit[Options](1)
	// OptOmitLevel omits the level name
	OptOmitLevel = bitmask.Bit[Options](2)
)

// MaxMessageLen is the maximum length of a logged message in bytes.
// Longer messages are truncated and suffixed with truncationMark.
const MaxMessageLen = 256

const truncationMark = "..."

// Loggable is an object that can write itself to a logger
type Loggable interface {
	// WriteToLogger writes the object's contents to w
	WriteToLogger(w io.Writer) error
}

// Logger writes leveled messages to a Writer
type Logger struct {
	output Writer
	pool   *bufpool.Pool
	now    func() time.Time

	lock      sync.RWMutex
	threshold Level
	prefix    string
	options   Options
	onSevere  func()
}

// New creates a new logger writing all messages that are at least
// as important as threshold to output. If the prefix isn't empty,
// it's advisable to suffix it with a space or any other delimiter.
func New(
	output Writer,
	prefix string,
	threshold Level,
	options Options,
) *Logger {
	if output == nil {
		output = Discard
	}
	return &Logger{
		output:    output,
		pool:      bufpool.NewPool(MaxMessageLen * 2),
		now:       time.Now,
		threshold: threshold,
		prefix:    prefix,
		options:   options,
	}
}

// NewNop returns a logger that never writes
func NewNop() *Logger {
	return New(Discard, "", Severe+1, 0)
}

// Threshold returns the minimum level of logged messages
func (l *Logger) Threshold() Level {
	l.lock.RLock()
	defer l.lock.RUnlock()
	return l.threshold
}

// SetThreshold sets the minimum level of logged messages
func (l *Logger) SetThreshold(level Level) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.threshold = level
}

// Prefix returns the prefix of every logged line
func (l *Logger) Prefix() string {
	l.lock.RLock()
	defer l.lock.RUnlock()
	return l.prefix
}

// SetPrefix sets the prefix of every logged line.
// If the prefix is empty, nothing is written.
func (l *Logger) SetPrefix(prefix string) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.prefix = prefix
}

// Options returns the logger options
func (l *Logger) Options() Options {
	l.lock.RLock()
	defer l.lock.RUnlock()
	return l.options
}

// SetOption enables or disables the given option
func (l *Logger) SetOption(opt Options, enabled bool) {
	l.lock.Lock()
	defer l.lock.Unlock()
	if enabled {
		l.options = bitmask.Set(l.options, opt)
	} else {
		l.options = bitmask.Unset(l.options, opt)
	}
}

// OnSevere sets fn to be called after a message of level Severe is logged
func (l *Logger) OnSevere(fn func()) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.onSevere = fn
}

// Enabled returns true if messages of the given level are logged
func (l *Logger) Enabled(level Level) bool {
	return level >= l.Threshold()
}

// Log writes msg and fields if level is at least as important as
// the logger's threshold
func (l *Logger) Log(level Level, msg string, fields ...Field) error {
	l.lock.RLock()
	threshold, prefix, options, onSevere :=
		l.threshold, l.prefix, l.options, l.onSevere
	l.lock.RUnlock()

	if level < threshold {
		return nil
	}

	b := l.pool.Get()
	defer b.Release()

	l.writeLinePrefix(b, level, prefix, options)
	writeMessage(b, msg)
	for _, f := range fields {
		if err := writeField(b, f); err != nil {
			return err
		}
	}
	_ = b.WriteByte('\n')

	err := l.write(b.Bytes(), options)
	if level == Severe && onSevere != nil {
		onSevere()
	}
	return err
}

// LogObject writes the line prefix followed by the contents of obj
func (l *Logger) LogObject(level Level, obj Loggable) error {
	l.lock.RLock()
	threshold, prefix, options := l.threshold, l.prefix, l.options
	l.lock.RUnlock()

	if level < threshold {
		return nil
	}

	b := l.pool.Get()
	defer b.Release()

	l.writeLinePrefix(b, level, prefix, options)
	if err := obj.WriteToLogger(b); err != nil {
		return err
	}
	_ = b.WriteByte('\n')
	return l.write(b.Bytes(), options)
}

// Debug logs msg at level Debug
func (l *Logger) Debug(msg string, fields ...Field) { _ = l.Log(Debug, msg, fields...) }

// Info logs msg at level Info
func (l *Logger) Info(msg string, fields ...Field) { _ = l.Log(Info, msg, fields...) }

// Warning logs msg at level Warning
func (l *Logger) Warning(msg string, fields ...Field) { _ = l.Log(Warning, msg, fields...) }

// Error logs msg at level Error
func (l *Logger) Error(msg string, fields ...Field) { _ = l.Log(Error, msg, fields...) }

// Severe logs msg at level Severe and then calls the OnSevere hook.
// The logger itself never terminates the process.
func (l *Logger) Severe(msg string, fields ...Field) { _ = l.Log(Severe, msg, fields...) }

// Flush flushes the underlying writer
func (l *Logger) Flush() error { return l.output.Flush() }

func (l *Logger) write(line []byte, options Options) error {
	if _, err := l.output.Write(line); err != nil {
		return err
	}
	if bitmask.Has(options, OptFlushEachLine) {
		return l.output.Flush()
	}
	return nil
}

func (l *Logger) writeLinePrefix(
	b *bufpool.Buffer,
	level Level,
	prefix string,
	options Options,
) {
	if bitmask.Has(options, OptTimestamp) {
		_, _ = b.Write(l.now().UTC().AppendFormat(b.AvailableBuffer(), time.RFC3339))
		_ = b.WriteByte(' ')
	}
	_, _ = b.WriteString(prefix)
	if !bitmask.Has(options, OptOmitLevel) {
		_, _ = b.WriteString(level.String())
		_, _ = b.WriteString(": ")
	}
}

func writeMessage(b *bufpool.Buffer, msg string) {
	if len(msg) > MaxMessageLen {
		n := MaxMessageLen - len(truncationMark)
		for n > 0 && !utf8.RuneStart(msg[n]) {
			// Don't split multi-byte runes
			n--
		}
		_, _ = b.WriteString(msg[:n])
		_, _ = b.WriteString(truncationMark)
		return
	}
	_, _ = b.WriteString(msg)
}

func writeField(b *bufpool.Buffer, f Field) error {
	_ = b.WriteByte(' ')
	_, _ = b.WriteString(f.Key)
	_ = b.WriteByte('=')
	switch f.kind {
	case fieldInt:
		return b.AppendInt(f.i, f.radix)
	default:
		_, _ = b.WriteString(f.s)
	}
	return nil
}

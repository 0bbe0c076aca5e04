package logger_test

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/romshark/ntoa/logger"

	"github.com/stretchr/testify/require"
)

// recorder is a Writer recording written lines and flushes
type recorder struct {
	lock    sync.Mutex
	buf     bytes.Buffer
	flushes int
	err     error
}

func (r *recorder) Write(p []byte) (int, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	return r.buf.Write(p)
}

func (r *recorder) Flush() error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.flushes++
	return nil
}

func (r *recorder) String() string {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.buf.String()
}

func TestThreshold(t *testing.T) {
	for _, tt := range []struct {
		threshold logger.Level
		expect    string
	}{
		{logger.Debug, "Debug: d\nInfo: i\nWarning: w\nError: e\nSevere: s\n"},
		{logger.Info, "Info: i\nWarning: w\nError: e\nSevere: s\n"},
		{logger.Warning, "Warning: w\nError: e\nSevere: s\n"},
		{logger.Error, "Error: e\nSevere: s\n"},
		{logger.Severe, "Severe: s\n"},
	} {
		t.Run(tt.threshold.String(), func(t *testing.T) {
			r := new(recorder)
			l := logger.New(r, "", tt.threshold, 0)
			l.Debug("d")
			l.Info("i")
			l.Warning("w")
			l.Error("e")
			l.Severe("s")
			require.Equal(t, tt.expect, r.String())
		})
	}
}

func TestPrefixAndFields(t *testing.T) {
	r := new(recorder)
	l := logger.New(r, "ntoa ", logger.Debug, 0)
	l.Info(
		"converted",
		logger.Int("dec", -42),
		logger.Hex("hex", -255),
		logger.Bin("bin", 5),
		logger.Str("name", "x"),
		logger.Int("min", math.MinInt64),
	)
	require.Equal(t,
		"ntoa Info: converted dec=-42 hex=-0xff bin=101 name=x"+
			" min=-9223372036854775808\n",
		r.String(),
	)
}

func TestSetters(t *testing.T) {
	r := new(recorder)
	l := logger.New(r, "a ", logger.Warning, 0)
	require.Equal(t, "a ", l.Prefix())
	require.Equal(t, logger.Warning, l.Threshold())
	require.False(t, l.Enabled(logger.Info))

	l.Info("dropped")
	l.SetThreshold(logger.Info)
	l.SetPrefix("b ")
	l.Info("kept")

	require.True(t, l.Enabled(logger.Info))
	require.Equal(t, "b Info: kept\n", r.String())
}

func TestOptions(t *testing.T) {
	r := new(recorder)
	l := logger.New(r, "p ", logger.Debug, logger.OptTimestamp|logger.OptFlushEachLine)
	l.SetNow(func() time.Time {
		return time.Date(2018, 3, 4, 5, 6, 7, 0, time.UTC)
	})

	l.Debug("one")
	require.Equal(t, 1, r.flushes)
	require.Equal(t, "2018-03-04T05:06:07Z p Debug: one\n", r.String())

	l.SetOption(logger.OptTimestamp, false)
	l.SetOption(logger.OptOmitLevel, true)
	l.SetOption(logger.OptFlushEachLine, false)
	require.Equal(t, logger.OptOmitLevel, l.Options())

	l.Debug("two")
	require.Equal(t, 1, r.flushes)
	require.Equal(t,
		"2018-03-04T05:06:07Z p Debug: one\np two\n",
		r.String(),
	)

	require.NoError(t, l.Flush())
	require.Equal(t, 2, r.flushes)
}

func TestTruncation(t *testing.T) {
	r := new(recorder)
	l := logger.New(r, "", logger.Debug, logger.OptOmitLevel)
	l.Info(strings.Repeat("x", logger.MaxMessageLen+10), logger.Int("n", 1))

	expect := strings.Repeat("x", logger.MaxMessageLen-3) + "... n=1\n"
	require.Equal(t, expect, r.String())
}

func TestTruncationMultiByte(t *testing.T) {
	r := new(recorder)
	l := logger.New(r, "", logger.Debug, logger.OptOmitLevel)
	l.Info("xx" + strings.Repeat("é", logger.MaxMessageLen))

	expect := "xx" + strings.Repeat("é", (logger.MaxMessageLen-len("xx...")-1)/2) + "...\n"
	require.Equal(t, expect, r.String())
	require.True(t, utf8.ValidString(r.String()))
}

func TestSevereHook(t *testing.T) {
	r := new(recorder)
	l := logger.New(r, "", logger.Debug, 0)
	called := 0
	l.OnSevere(func() { called++ })

	l.Error("not severe")
	require.Zero(t, called)

	l.Severe("shutting down")
	require.Equal(t, 1, called)
	require.Equal(t, "Error: not severe\nSevere: shutting down\n", r.String())
}

type point struct{}

func (p point) WriteToLogger(w io.Writer) error {
	_, err := io.WriteString(w, "point")
	return err
}

type failingLoggable struct{}

func (failingLoggable) WriteToLogger(io.Writer) error {
	return errors.New("nope")
}

func TestLogObject(t *testing.T) {
	r := new(recorder)
	l := logger.New(r, "obj ", logger.Info, 0)

	require.NoError(t, l.LogObject(logger.Debug, point{}))
	require.Equal(t, "", r.String())

	require.NoError(t, l.LogObject(logger.Info, point{}))
	require.Equal(t, "obj Info: point\n", r.String())

	require.Error(t, l.LogObject(logger.Info, failingLoggable{}))
}

func TestWriteError(t *testing.T) {
	r := &recorder{err: errors.New("disk full")}
	l := logger.New(r, "", logger.Debug, 0)
	require.EqualError(t, l.Log(logger.Info, "x"), "disk full")
}

func TestStreamWriter(t *testing.T) {
	buf := new(bytes.Buffer)
	w := logger.NewStreamWriter(buf)
	l := logger.New(w, "", logger.Debug, 0)

	l.Info("buffered")
	require.Equal(t, "", buf.String())
	require.NoError(t, l.Flush())
	require.Equal(t, "Info: buffered\n", buf.String())
}

func TestConcurrent(t *testing.T) {
	r := new(recorder)
	l := logger.New(r, "", logger.Debug, 0)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.Info("msg", logger.Int("i", int64(i)))
		}(i)
	}
	wg.Wait()
	require.Len(t, strings.Split(strings.TrimSpace(r.String()), "\n"), 16)
}

func TestNop(t *testing.T) {
	l := logger.NewNop()
	require.False(t, l.Enabled(logger.Severe))
	require.NoError(t, l.Log(logger.Severe, "x"))
}

func TestParseLevel(t *testing.T) {
	for _, tt := range []struct {
		in  string
		out logger.Level
	}{
		{"debug", logger.Debug},
		{"INFO", logger.Info},
		{"warn", logger.Warning},
		{"Warning", logger.Warning},
		{"error", logger.Error},
		{"severe", logger.Severe},
	} {
		t.Run(tt.in, func(t *testing.T) {
			l, err := logger.ParseLevel(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.out, l)
		})
	}
	_, err := logger.ParseLevel("fatal")
	require.Error(t, err)
	require.Equal(t, "Level(9)", logger.Level(9).String())
}

// Package logging builds the charm logger used by the command line tools.
package logging

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// timestampWriter prefixes each flushed line with an RFC3339 timestamp.
type timestampWriter struct {
	w   io.Writer
	buf bytes.Buffer
	mu  sync.Mutex
	now func() time.Time
}

// Write buffers bytes until a newline is found; each full line is written to
// the underlying writer with its timestamp. Partial lines stay buffered.
func (t *timestampWriter) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n, _ := t.buf.Write(p)
	for {
		line, err := t.buf.ReadString('\n')
		if err != nil {
			// put the partial line back for the next write
			t.buf.WriteString(line)
			break
		}
		ts := t.now().Format(time.RFC3339)
		if _, err := io.WriteString(t.w, ts+" "+line); err != nil {
			return n, err
		}
	}
	return n, nil
}

// terminalWriter exposes Fd so the logger can still detect a TTY behind the
// timestamping wrapper.
type terminalWriter struct {
	w  io.Writer
	fd uintptr
}

func (tw *terminalWriter) Write(p []byte) (int, error) { return tw.w.Write(p) }

func (tw *terminalWriter) Fd() uintptr { return tw.fd }

// Options selects where and how much to log.
type Options struct {
	Stderr  *os.File // defaults to os.Stderr
	LogFile string   // appended to in addition to Stderr
	Level   string
	Verbose bool
	Prefix  string
}

// New returns a logger and a function releasing the log file, if one was
// opened. A log file that cannot be opened is reported through the returned
// logger and otherwise ignored.
func New(opts Options) (*log.Logger, func()) {
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	var out io.Writer = stderr
	closeFn := func() {}
	var openErr error
	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			out = io.MultiWriter(stderr, f)
			closeFn = func() { _ = f.Close() }
		} else {
			openErr = err
		}
	}

	tw := &timestampWriter{w: out, now: time.Now}
	logger := log.NewWithOptions(&terminalWriter{w: tw, fd: stderr.Fd()}, log.Options{Prefix: opts.Prefix})

	level, known := ParseLevel(opts.Level)
	if opts.Verbose {
		level = log.DebugLevel
	}
	logger.SetLevel(level)
	if !known {
		logger.Warn("unknown log_level, defaulting to info", "provided", opts.Level)
	}
	if openErr != nil {
		logger.Warn("log_file could not be opened; logging to stderr only", "path", opts.LogFile, "err", openErr)
	}
	return logger, closeFn
}

// ParseLevel maps a config level name onto a charm level. Unknown names map
// to info with known=false.
func ParseLevel(s string) (level log.Level, known bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel, true
	case "info", "":
		return log.InfoLevel, true
	case "warn", "warning":
		return log.WarnLevel, true
	case "error":
		return log.ErrorLevel, true
	}
	return log.InfoLevel, false
}

// Discard returns a logger that drops everything; handy in tests.
func Discard() *log.Logger {
	l := log.New(io.Discard)
	l.SetLevel(log.FatalLevel)
	return l
}


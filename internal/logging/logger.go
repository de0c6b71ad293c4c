package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

const timestampFormat = "2006-01-02 15:04:05.000"

type Logger struct {
	// Messages above this level are discarded.
	Level

	// Tag used to filter and classify log messages.
	Tag string

	out io.Writer

	// Shared by all derived loggers so lines never interleave.
	mu *sync.Mutex
}

// DefaultLogger writes to stderr. Packages derive their own tagged logger
// from it.
var DefaultLogger = &Logger{defaultLevel, "", os.Stderr, new(sync.Mutex)}

// SetDestination redirects this logger's output.
func (log *Logger) SetDestination(out io.Writer) {
	log.out = out
}

// WithTag derives a logger for the given tag. The effective level comes
// from any matching LOGLEVEL directive, falling back to this logger's own.
func (log *Logger) WithTag(tag string) *Logger {
	return &Logger{levelForTag(tag, log.Level), tag, log.out, log.mu}
}

// A line buffer recycled through a pool. Cheaper than bytes.Buffer for the
// append-heavy formatting below.
type line []byte

func (b *line) Write(p []byte) (int, error) {
	*b = append(*b, p...)
	return len(p), nil
}

var linePool = sync.Pool{
	New: func() interface{} {
		return make(line, 0, 256)
	},
}

// Log a message at the given level, recording the file and line of the
// caller 'calldepth' frames up the stack.
func (log *Logger) Log(level Level, calldepth int, format string, a ...interface{}) {
	if level > log.Level {
		return
	}

	buf := linePool.Get().(line)
	defer linePool.Put(buf[:0])

	buf.Write(ansiWhite)
	buf = time.Now().AppendFormat(buf, timestampFormat)

	fmt.Fprintf(&buf, " %s%c/%s", level.color(), level.Letter(), log.Tag)

	_, file, lineno, ok := runtime.Caller(calldepth + 1)
	if !ok {
		file = "?"
	}
	fmt.Fprintf(&buf, "[%s:%d] %s", filepath.Base(file), lineno, ansiReset)

	fmt.Fprintf(&buf, format, a...)
	if n := len(format); n == 0 || format[n-1] != '\n' {
		buf = append(buf, '\n')
	}

	log.mu.Lock()
	defer log.mu.Unlock()
	if _, err := log.out.Write(buf); err != nil {
		panic(fmt.Sprintf("failed to log to %v: %v", log.out, err))
	}
}

func (log *Logger) Error(format string, a ...interface{}) {
	log.Log(Error, 1, format, a...)
}

func (log *Logger) Warn(format string, a ...interface{}) {
	log.Log(Warn, 1, format, a...)
}

func (log *Logger) Info(format string, a ...interface{}) {
	log.Log(Info, 1, format, a...)
}

func (log *Logger) Debug(format string, a ...interface{}) {
	log.Log(Debug, 1, format, a...)
}

func (log *Logger) Trace(n int, format string, a ...interface{}) {
	log.Log(Level(n), 1, format, a...)
}

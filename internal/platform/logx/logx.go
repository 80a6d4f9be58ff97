// Package logx is the leveled key=value logger shared by every phishscan component.
package logx

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// EnvLevel names the environment variable read by New.
const EnvLevel = "PHISHSCAN_LOG_LEVEL"

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the lower-case name accepted by ParseLevel.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Err(err error, kv ...any)
	With(kv ...any) Logger
	SetLevel(lvl Level)
}

// sink is shared between a logger and every child created with With,
// so SetLevel and writes stay consistent across scopes.
type sink struct {
	mu  sync.Mutex
	lvl Level
	lg  *log.Logger
}

type simpleLogger struct {
	out   *sink
	scope []string // fixed key=value pairs
}

// New creates a stderr logger whose level comes from PHISHSCAN_LOG_LEVEL.
func New() Logger {
	return NewWithWriter(os.Stderr, ParseLevel(os.Getenv(EnvLevel)))
}

// NewWithLevel creates a stderr logger with a specific log level
func NewWithLevel(lvl Level) Logger {
	return NewWithWriter(os.Stderr, lvl)
}

// NewWithWriter creates a logger that writes to w.
func NewWithWriter(w io.Writer, lvl Level) Logger {
	return &simpleLogger{
		out: &sink{lvl: lvl, lg: log.New(w, "", 0)},
	}
}

// NewSilent creates a logger that only outputs errors
func NewSilent() Logger {
	return NewWithLevel(LevelError)
}

// Discard returns a logger that drops everything. Useful in tests.
func Discard() Logger {
	return NewWithWriter(io.Discard, LevelError+1)
}

func (s *simpleLogger) With(kv ...any) Logger {
	return &simpleLogger{
		out:   s.out,
		scope: append(append([]string{}, s.scope...), kvPairs(kv...)...),
	}
}

func (s *simpleLogger) SetLevel(lvl Level) {
	s.out.mu.Lock()
	defer s.out.mu.Unlock()
	s.out.lvl = lvl
}

func (s *simpleLogger) Debug(msg string, kv ...any) { s.log(LevelDebug, "DBG", msg, kv...) }
func (s *simpleLogger) Info(msg string, kv ...any)  { s.log(LevelInfo, "INF", msg, kv...) }
func (s *simpleLogger) Warn(msg string, kv ...any)  { s.log(LevelWarn, "WRN", msg, kv...) }
func (s *simpleLogger) Err(err error, kv ...any) {
	if err == nil {
		return
	}
	kv = append([]any{"error", err.Error()}, kv...)
	s.log(LevelError, "ERR", "", kv...)
}

func (s *simpleLogger) log(l Level, tag, msg string, kv ...any) {
	s.out.mu.Lock()
	defer s.out.mu.Unlock()
	if l < s.out.lvl {
		return
	}

	ts := time.Now().Format("15:04:05")
	fields := append([]string{}, s.scope...)
	fields = append(fields, kvPairs(kv...)...)

	line := fmt.Sprintf("%s %s %s", ts, tag, msg)
	if strings.TrimSpace(msg) == "" {
		line = fmt.Sprintf("%s %s", ts, tag)
	}
	if len(fields) > 0 {
		line = fmt.Sprintf("%s %s", line, strings.Join(fields, " "))
	}
	s.out.lg.Println(line)
}

func kvPairs(kv ...any) []string {
	out := make([]string, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		var v any = "(missing)"
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		out = append(out, fmt.Sprintf("%v=%v", kv[i], v))
	}
	return out
}

// ParseLevel converts a level name to a Level. Unknown names map to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "dbg":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "err", "error":
		return LevelError
	default:
		return LevelInfo
	}
}

package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// Options selects the level and handler of a logger.
type Options struct {
	Level string
	JSON  bool
}

var def atomic.Value

func init() {
	def.Store(New(os.Stderr, Options{}))
}

// New builds a logger writing to w. The "error" key is shortened to "err".
func New(w io.Writer, opts Options) *slog.Logger {
	cfg := &slog.HandlerOptions{
		Level: ParseLevel(opts.Level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}
	var h slog.Handler
	if opts.JSON {
		h = slog.NewJSONHandler(w, cfg)
	} else {
		h = slog.NewTextHandler(w, cfg)
	}
	return slog.New(h)
}

// Configure replaces the process-wide logger returned by L.
func Configure(opts Options) {
	def.Store(New(os.Stderr, opts))
}

// ParseLevel maps debug|info|warn|error to a slog level; anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// L returns the process-wide logger.
func L() *slog.Logger {
	l, _ := def.Load().(*slog.Logger)
	return l
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

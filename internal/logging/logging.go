// Package logging sets up the process-wide slog logger.
//
// The editor owns the terminal while it runs, so records are written to a
// log file when one is configured and dropped otherwise.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/blackwell-systems/gradientctl/internal/util"
	"github.com/muesli/termenv"
)

// Handler is a slog.Handler producing one short, optionally colored line
// per record.
type Handler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []string // formatted with the group in effect when added
	group string
	now   func() time.Time
}

// NewHandler returns a handler writing to w. Colors are only used when the
// profile allows them.
func NewHandler(w io.Writer, level slog.Leveler, profile termenv.Profile) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{
		out:   termenv.NewOutput(w, termenv.WithProfile(profile)),
		level: level,
		now:   time.Now,
	}
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var tag string
	var color termenv.Color
	switch {
	case r.Level >= slog.LevelError:
		tag, color = "ERR", h.out.Color("#FF5F87")
	case r.Level >= slog.LevelWarn:
		tag, color = "WRN", h.out.Color("#FFD700")
	case r.Level >= slog.LevelInfo:
		tag, color = "INF", h.out.Color("#00D7D7")
	default:
		tag, color = "DBG", h.out.Color("#808080")
	}

	parts := make([]string, 0, 3+len(h.attrs)+r.NumAttrs())
	parts = append(parts, h.now().Format("15:04:05.000"), h.out.String(tag).Foreground(color).String(), r.Message)
	parts = append(parts, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		parts = append(parts, formatAttr(h.group, a))
		return true
	})

	_, err := h.out.WriteString(strings.Join(parts, " ") + "\n")
	return err
}

// WithAttrs implements slog.Handler.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append([]string(nil), h.attrs...)
	for _, a := range attrs {
		c.attrs = append(c.attrs, formatAttr(h.group, a))
	}
	return &c
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := *h
	if h.group != "" {
		name = h.group + "." + name
	}
	c.group = name
	return &c
}

func formatAttr(group string, a slog.Attr) string {
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	return key + "=" + a.Value.String()
}

// ParseLevel maps debug/info/warn/error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return l, nil
}

// Setup installs the default logger. With an empty path records are
// discarded. The returned function closes the log file.
func Setup(path, level string) (func() error, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if path == "" {
		slog.SetDefault(slog.New(NewHandler(io.Discard, slog.LevelError+4, termenv.Ascii)))
		return func() error { return nil }, nil
	}
	if err := util.EnsureParent(path); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	slog.SetDefault(slog.New(NewHandler(f, lvl, termenv.Ascii)))
	return f.Close, nil
}

package clog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/fatih/color"
)

// TextHandler is a slog.Handler for smash's --trace diagnostic stream:
// a timestamp, a colored level, the message, and sorted key=value
// attributes on indented lines. It never writes to the stdout transcript
// the executor and builtins use — callers wire it to stderr.
type TextHandler struct {
	cfg    TextHandlerConfig
	groups []string
	attrs  []slog.Attr
	w      io.Writer
}

type TextHandlerConfig struct {
	Color bool
	Level *slog.Level
}

type TextHandlerOption func(*TextHandlerConfig)

func WithColor(c bool) TextHandlerOption {
	return func(cfg *TextHandlerConfig) { cfg.Color = c }
}

func WithLevel(level slog.Level) TextHandlerOption {
	return func(cfg *TextHandlerConfig) { cfg.Level = &level }
}

func NewTextHandler(w io.Writer, opts ...TextHandlerOption) *TextHandler {
	cfg := TextHandlerConfig{Color: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &TextHandler{cfg: cfg, w: w}
}

func (h *TextHandler) clone() *TextHandler {
	nh := *h
	nh.groups = append([]string(nil), h.groups...)
	nh.attrs = append([]slog.Attr(nil), h.attrs...)
	return &nh
}

func (h *TextHandler) Enabled(_ context.Context, l slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.cfg.Level != nil {
		minLevel = *h.cfg.Level
	}
	return l >= minLevel
}

func (h *TextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := h.clone()
	nh.groups = append(nh.groups, name)
	return nh
}

func (h *TextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := h.clone()
	nh.attrs = append(nh.attrs, attrs...)
	return nh
}

func (h *TextHandler) Handle(_ context.Context, record slog.Record) error {
	color.NoColor = !h.cfg.Color
	color.Output = h.w

	c := color.New()
	defer color.Unset()
	if _, err := c.Printf("%s ", record.Time.Format(time.RFC3339)); err != nil {
		return fmt.Errorf("write time: %w", err)
	}

	switch record.Level {
	case slog.LevelDebug:
		c = color.New(color.FgCyan)
	case slog.LevelInfo:
		c = color.New(color.FgBlue)
	case slog.LevelWarn:
		c = color.New(color.FgYellow)
	case slog.LevelError:
		c = color.New(color.FgRed)
	default:
		c = color.New()
	}
	if _, err := c.Printf("%-5s ", record.Level); err != nil {
		return fmt.Errorf("write level: %w", err)
	}

	c = color.New(color.FgGreen)
	if _, err := c.Printf("%s\n", record.Message); err != nil {
		return fmt.Errorf("write message: %w", err)
	}

	kv := map[string]slog.Value{}
	for _, attr := range h.attrs {
		kv[attr.Key] = attr.Value
	}
	record.Attrs(func(attr slog.Attr) bool {
		kv[attr.Key] = attr.Value
		return true
	})

	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	c = color.New()
	for _, k := range keys {
		if _, err := c.Printf("    %s=%v\n", k, kv[k]); err != nil {
			return fmt.Errorf("write %s: %w", k, err)
		}
	}
	return nil
}

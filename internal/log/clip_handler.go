package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"
)

// DefaultClipLength is the number of runes a string attribute value keeps
// before it is shortened.
const DefaultClipLength = 64

// ClipHandler wraps an slog.Handler and shortens string attribute values
// longer than its limit. The shortened value ends with a marker giving the
// number of bytes that were cut.
type ClipHandler struct {
	handler slog.Handler
	limit   int
}

// NewClipHandler creates a ClipHandler wrapping handler.
// If handler is nil, slog.Default().Handler() is used.
// A limit below 1 means DefaultClipLength.
func NewClipHandler(handler slog.Handler, limit int) *ClipHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	if limit < 1 {
		limit = DefaultClipLength
	}
	return &ClipHandler{handler: handler, limit: limit}
}

// Enabled reports whether the underlying handler handles records at level.
func (h *ClipHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle clips the record's attributes and passes it on.
func (h *ClipHandler) Handle(ctx context.Context, r slog.Record) error {
	clipped := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		clipped.AddAttrs(h.clipAttr(a))
		return true
	})
	return h.handler.Handle(ctx, clipped)
}

// WithAttrs returns a new handler with the given attributes clipped and added.
func (h *ClipHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clipped := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		clipped[i] = h.clipAttr(a)
	}
	return &ClipHandler{handler: h.handler.WithAttrs(clipped), limit: h.limit}
}

// WithGroup returns a new handler with the given group name.
func (h *ClipHandler) WithGroup(name string) slog.Handler {
	return &ClipHandler{handler: h.handler.WithGroup(name), limit: h.limit}
}

func (h *ClipHandler) clipAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	switch a.Value.Kind() {
	case slog.KindGroup:
		attrs := a.Value.Group()
		clipped := make([]slog.Attr, len(attrs))
		for i, ga := range attrs {
			clipped[i] = h.clipAttr(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(clipped...)}
	case slog.KindString:
		return slog.String(a.Key, Clip(a.Value.String(), h.limit))
	default:
		return a
	}
}

// Clip shortens s to at most limit runes followed by a marker saying how
// many bytes were removed. Strings within the limit are returned unchanged.
func Clip(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	cut := 0
	for n := 0; n < limit; n++ {
		_, size := utf8.DecodeRuneInString(s[cut:])
		cut += size
	}
	return fmt.Sprintf("%s...(+%d bytes)", s[:cut], len(s)-cut)
}

// NewLogger creates a text slog.Logger writing to w with clipping enabled.
// verbose selects the Debug level; otherwise only warnings and errors are
// logged.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewClipHandler(slog.NewTextHandler(w, handlerOptions(verbose)), DefaultClipLength))
}

// NewJSONLogger is like NewLogger but writes JSON records.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewClipHandler(slog.NewJSONHandler(w, handlerOptions(verbose)), DefaultClipLength))
}

func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}

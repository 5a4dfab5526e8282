package observability

import (
	"context"
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
)

var _ slog.Handler = (*NoopHandler)(nil)

// NoopHandler discards every record.  It backs the default logger so that
// callers who don't care about observability pay nothing for it.
type NoopHandler struct{}

func NewNoopHandler() slog.Handler {
	return &NoopHandler{}
}

func (h *NoopHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return false
}

func (h *NoopHandler) Handle(_ context.Context, _ slog.Record) error {
	return nil
}

func (h *NoopHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *NoopHandler) WithGroup(_ string) slog.Handler {
	return h
}

// NewDevHandler returns a colorized handler for examples and local
// debugging.
func NewDevHandler(w io.Writer, level slog.Level) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level: level,
	})
}

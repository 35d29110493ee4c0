package logger

import (
	"context"
	"log/slog"
	"strings"

	"roident/pkg/identifiers/cnp"
)

const redactedValue = "[REDACTED]"

// RedactingHandler masks attributes that carry personal identifiers.
type RedactingHandler struct {
	next slog.Handler
}

// WrapHandler wraps next so that cnp, iban and phone attributes are masked.
func WrapHandler(next slog.Handler) slog.Handler {
	if next == nil {
		return nil
	}
	return &RedactingHandler{next: next}
}

func (h *RedactingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *RedactingHandler) Handle(ctx context.Context, rec slog.Record) error {
	out := slog.NewRecord(rec.Time, rec.Level, rec.Message, rec.PC)
	rec.Attrs(func(attr slog.Attr) bool {
		out.AddAttrs(RedactAttr(attr))
		return true
	})
	return h.next.Handle(ctx, out)
}

func (h *RedactingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = RedactAttr(a)
	}
	return &RedactingHandler{next: h.next.WithAttrs(redacted)}
}

func (h *RedactingHandler) WithGroup(name string) slog.Handler {
	return &RedactingHandler{next: h.next.WithGroup(name)}
}

// RedactAttr masks a single attribute, descending into groups.
func RedactAttr(attr slog.Attr) slog.Attr {
	attr.Value = attr.Value.Resolve()
	if attr.Value.Kind() == slog.KindGroup {
		group := attr.Value.Group()
		redacted := make([]any, len(group))
		for i, a := range group {
			redacted[i] = RedactAttr(a)
		}
		return slog.Group(attr.Key, redacted...)
	}

	switch strings.ToLower(attr.Key) {
	case "cnp":
		return slog.String(attr.Key, cnp.Mask(attr.Value.String()))
	case "iban":
		return slog.String(attr.Key, keepEnds(attr.Value.String(), 4, 4))
	case "phone":
		return slog.String(attr.Key, keepEnds(attr.Value.String(), 0, 3))
	case "password", "secret", "token", "authorization":
		return slog.String(attr.Key, redactedValue)
	}
	return attr
}

// keepEnds leaves head and tail characters visible and stars the middle.
func keepEnds(s string, head, tail int) string {
	r := []rune(s)
	if len(r) <= head+tail {
		return strings.Repeat("*", len(r))
	}
	return string(r[:head]) + strings.Repeat("*", len(r)-head-tail) + string(r[len(r)-tail:])
}

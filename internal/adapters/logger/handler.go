package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/docbuild/internal/ui/output"
	"go.trai.ch/docbuild/internal/ui/style"
)

// PrettyHandler is a slog.Handler writing one colored block per record.
// Continuation lines of a multi-line message are indented past the level
// icon and attributes follow the first line in muted color.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	attrs  []string
	groups []string
}

// NewPrettyHandler creates a PrettyHandler writing to w. A nil level means Info.
func NewPrettyHandler(w io.Writer, level slog.Leveler) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}
	if level == nil {
		level = slog.LevelInfo
	}
	return &PrettyHandler{out: output.New(w), level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := levelStyle(r.Level)

	pairs := append([]string(nil), h.attrs...)
	r.Attrs(func(attr slog.Attr) bool {
		pairs = appendAttr(pairs, h.groups, attr)
		return true
	})

	indent := ""
	if icon != "" {
		icon += " "
		indent = strings.Repeat(" ", len([]rune(icon)))
	}

	var b strings.Builder
	for i, line := range strings.Split(r.Message, "\n") {
		switch {
		case i == 0:
			b.WriteString(h.out.String(icon + line).Foreground(color).String())
			if len(pairs) > 0 {
				b.WriteString(" ")
				b.WriteString(h.out.String(strings.Join(pairs, " ")).Foreground(termenv.RGBColor(string(style.Muted))).String())
			}
		case line == "":
		default:
			b.WriteString(h.out.String(indent + line).Foreground(color).String())
		}
		b.WriteByte('\n')
	}

	_, err := h.out.WriteString(b.String())
	return err
}

// WithAttrs returns a new Handler with attrs rendered on every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append([]string(nil), h.attrs...)
	for _, attr := range attrs {
		next.attrs = appendAttr(next.attrs, h.groups, attr)
	}
	return &next
}

// WithGroup returns a new Handler qualifying later attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.groups = append(append([]string(nil), h.groups...), name)
	return &next
}

func levelStyle(level slog.Level) (string, termenv.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, termenv.RGBColor(string(style.Red))
	case level >= slog.LevelWarn:
		return style.Warning, termenv.RGBColor(string(style.Yellow))
	default:
		return "", nil
	}
}

// appendAttr flattens attr into key=value pairs, joining group names with dots.
func appendAttr(pairs, groups []string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return pairs
	}

	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			groups = append(append([]string(nil), groups...), attr.Key)
		}
		for _, member := range attr.Value.Group() {
			pairs = appendAttr(pairs, groups, member)
		}
		return pairs
	}

	key := strings.Join(append(append([]string(nil), groups...), attr.Key), ".")
	return append(pairs, key+"="+attr.Value.String())
}

package log

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelDebug, Component: ComponentJournal, Writer: &buf})

	logger.Info("entry saved", FieldEntryID, "id_1")
	out := buf.String()
	if !strings.Contains(out, "component=journal") || !strings.Contains(out, "entry_id=id_1") {
		t.Fatalf("unexpected log line: %s", out)
	}

	buf.Reset()
	logger.WithComponent(ComponentStorage).Debug("loaded")
	if !strings.Contains(buf.String(), "component=storage") {
		t.Fatalf("expected storage component: %s", buf.String())
	}
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Component: ComponentCLI, Writer: &buf})
	ctx := NewContext(context.Background(), logger)

	FromContext(ctx).LogError(ctx, "import failed", errors.New("boom"), OpImport, NewFields().WithKey("msj:notes"))
	out := buf.String()
	for _, want := range []string{"component=cli", "error=boom", "operation=import", "key=msj:notes"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %s", want, out)
		}
	}

	if FromContext(context.Background()).Component() != "unknown" {
		t.Error("expected fallback logger")
	}
}

package ledger

import (
	"context"
	"errors"
	"slices"
	"testing"

	"mindful/internal/core"
	"mindful/internal/kv"
	"mindful/internal/snapshot"
)

func TestImportPartialSuccess(t *testing.T) {
	ctx := context.Background()
	j, _ := openJournal(t, kv.NewMemoryStore())
	j.SetNote(ctx, "2024-03", "keep me")

	doc := `{"entries": [{"id": "x", "dateISO": "2024-03-01", "amountCents": 900}], "notes": "oops"}`
	report, err := j.Import(ctx, []byte(doc))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !slices.Equal(report.Applied, []kv.Field{kv.FieldEntries}) || !report.Partial() {
		t.Errorf("report = %+v", report)
	}

	s := j.State()
	if len(s.Entries) != 1 || s.Entries[0].ID != "x" {
		t.Errorf("entries = %v", s.Entries)
	}
	if s.Notes["2024-03"] != "keep me" {
		t.Errorf("notes = %v", s.Notes)
	}
}

func TestImportInvalidDocument(t *testing.T) {
	ctx := context.Background()
	store := newFlakyStore()
	j, _ := openJournal(t, store)

	for _, doc := range []string{"{{", "null"} {
		if _, err := j.Import(ctx, []byte(doc)); !errors.Is(err, snapshot.ErrInvalidDocument) {
			t.Errorf("Import(%q) error = %v", doc, err)
		}
	}
	if len(store.sets) != 0 {
		t.Error("invalid document must not write anything")
	}
}

func TestImportStopsOnWriteError(t *testing.T) {
	ctx := context.Background()
	store := newFlakyStore()
	store.failSet[keys.Categories()] = true
	j, _ := openJournal(t, store)

	doc := `{"entries": [], "categories": [{"name": "A"}], "valuesTags": ["Joy"]}`
	report, err := j.Import(ctx, []byte(doc))
	if !errors.Is(err, errBoom) {
		t.Fatalf("error = %v", err)
	}
	if !slices.Equal(report.Applied, []kv.Field{kv.FieldEntries}) {
		t.Errorf("applied = %v", report.Applied)
	}
	if tags := j.State().ValuesTags; len(tags) != 0 {
		t.Errorf("tags after failed import = %v", tags)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src, _ := openJournal(t, kv.NewMemoryStore())
	if _, err := src.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	src.SetNote(ctx, "2024-03", "calm month")

	data, err := snapshot.Encode(src.Export())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	dst, _ := openJournal(t, kv.NewMemoryStore())
	report, err := dst.Import(ctx, data)
	if err != nil || report.Partial() || len(report.Applied) != 4 {
		t.Fatalf("import = %+v, %v", report, err)
	}

	a, b := src.State(), dst.State()
	if len(b.Entries) != len(a.Entries) || b.Entries[0].ID != a.Entries[0].ID {
		t.Errorf("entries differ")
	}
	if !slices.Equal(b.Categories, a.Categories) || !slices.Equal(b.ValuesTags, a.ValuesTags) {
		t.Errorf("categories or tags differ")
	}
	if b.Notes[core.MonthKey("2024-03")] != "calm month" {
		t.Errorf("notes = %v", b.Notes)
	}
}

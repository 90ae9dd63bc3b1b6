package ledger

import (
	"context"
	"errors"
	"testing"

	"mindful/internal/core"
	"mindful/internal/kv"
)

func TestAddCategory(t *testing.T) {
	ctx := context.Background()
	j, _ := openJournal(t, kv.NewMemoryStore())

	c, err := j.AddCategory(ctx, "  Travel ", "150")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if c.Name != "Travel" || c.CapCents != 15000 || c.Color != core.ColorFromString("Travel") {
		t.Errorf("category = %+v", c)
	}

	uncapped, err := j.AddCategory(ctx, "Books", "")
	if err != nil || uncapped.CapCents != 0 {
		t.Errorf("uncapped = %+v, %v", uncapped, err)
	}

	tests := []struct {
		name, cat, cap string
		want           error
	}{
		{"empty name", "   ", "1", core.ErrEmptyCategoryName},
		{"duplicate ignoring case", "travel", "1", core.ErrDuplicateCategory},
		{"negative cap", "Gifts", "-5", core.ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := j.AddCategory(ctx, tt.cat, tt.cap); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
	if n := len(j.State().Categories); n != 2 {
		t.Errorf("got %d categories", n)
	}
}

func TestSetCapAndRemove(t *testing.T) {
	ctx := context.Background()
	j, _ := openJournal(t, kv.NewMemoryStore())
	j.AddCategory(ctx, "Dining", "200")
	e, _ := j.AddEntry(ctx, EntryInput{Amount: "5", Category: "Dining"})

	c, err := j.SetCap(ctx, "Dining", "250.50")
	if err != nil || c.CapCents != 25050 {
		t.Fatalf("set cap = %+v, %v", c, err)
	}
	if _, err := j.SetCap(ctx, "dining", "1"); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("case-sensitive lookup error = %v", err)
	}

	if err := j.RemoveCategory(ctx, "Dining"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	s := j.State()
	if len(s.Categories) != 0 {
		t.Errorf("categories = %v", s.Categories)
	}

	// The entry keeps its category name and is now orphaned
	got, _ := j.Entry(e.ID)
	if link := core.ResolveCategory(got.Category, s.Categories); link.State != core.LinkOrphaned || link.BudgetBucket() != core.Uncategorized {
		t.Errorf("link = %+v", link)
	}
	if err := j.RemoveCategory(ctx, "Dining"); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("error = %v", err)
	}
}

func TestAddTag(t *testing.T) {
	ctx := context.Background()
	j, _ := openJournal(t, kv.NewMemoryStore())

	tag, added, err := j.AddTag(ctx, "  slow   mornings  ")
	if err != nil || !added || tag != "slow mornings" {
		t.Fatalf("AddTag = %q, %v, %v", tag, added, err)
	}
	tag, added, err = j.AddTag(ctx, "slow mornings")
	if err != nil || added {
		t.Errorf("duplicate = %q, %v, %v", tag, added, err)
	}
	if _, _, err := j.AddTag(ctx, "   "); !errors.Is(err, core.ErrEmptyTag) {
		t.Errorf("error = %v", err)
	}
	if tags := j.State().ValuesTags; len(tags) != 1 {
		t.Errorf("tags = %v", tags)
	}
}

func TestSetNote(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	j, _ := openJournal(t, store)

	if err := j.SetNote(ctx, "2024-03", "first"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := j.SetNote(ctx, "2024-03", "second"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if j.Note("2024-03") != "second" {
		t.Errorf("note = %q", j.Note("2024-03"))
	}
	notes, _, _ := kv.Load[core.Notes](ctx, store, keys.Notes())
	if len(notes) != 1 || notes["2024-03"] != "second" {
		t.Errorf("stored notes = %v", notes)
	}
	if err := j.SetNote(ctx, "March", "x"); !errors.Is(err, core.ErrInvalidMonth) {
		t.Errorf("error = %v", err)
	}
}

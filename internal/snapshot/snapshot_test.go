package snapshot

import (
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"testing"

	"mindful/internal/core"
)

func TestFileName(t *testing.T) {
	if got := FileName("2024-03"); got != "mindful-spending-2024-03.json" {
		t.Errorf("FileName = %q", got)
	}
}

func TestEncode(t *testing.T) {
	data, err := Encode(Snapshot{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	want := "{\n  \"entries\": [],\n  \"categories\": [],\n  \"valuesTags\": [],\n  \"notes\": {}\n}"
	if string(data) != want {
		t.Errorf("Encode = %s", data)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || len(fields) != 4 {
		t.Errorf("expected exactly four fields, got %v (%v)", fields, err)
	}
}

func TestDecodeInvalidDocument(t *testing.T) {
	for _, input := range []string{"", "not json", "{", "null", "false", "0", `""`} {
		t.Run(input, func(t *testing.T) {
			if _, err := Decode([]byte(input)); !errors.Is(err, ErrInvalidDocument) {
				t.Errorf("Decode(%q) error = %v, want ErrInvalidDocument", input, err)
			}
		})
	}
}

func TestDecodeTruthyNonObject(t *testing.T) {
	for _, input := range []string{"1", "true", `"x"`, "[]"} {
		p, err := Decode([]byte(input))
		if err != nil {
			t.Errorf("Decode(%q) error = %v", input, err)
		}
		if !p.Empty() {
			t.Errorf("Decode(%q) should not patch anything", input)
		}
	}
}

func TestDecodePartial(t *testing.T) {
	doc := `{
		"entries": [{"id": "a", "dateISO": "2024-03-15", "amountCents": 1000, "category": "Dining"}],
		"categories": {"name": "Dining"},
		"valuesTags": ["Joy", "Coffee"],
		"notes": ["not", "a", "map"]
	}`

	p, err := Decode([]byte(doc))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Entries == nil || len(*p.Entries) != 1 || (*p.Entries)[0].AmountCents != 1000 {
		t.Errorf("entries = %v", p.Entries)
	}
	if p.Categories != nil {
		t.Error("categories should be skipped")
	}
	if p.ValuesTags == nil || !slices.Equal(*p.ValuesTags, []string{"Joy", "Coffee"}) {
		t.Errorf("valuesTags = %v", p.ValuesTags)
	}
	if p.Notes != nil {
		t.Error("notes should be skipped")
	}
	if !slices.Equal(p.Skipped, []string{"categories", "notes"}) {
		t.Errorf("skipped = %v", p.Skipped)
	}
}

func TestDecodeKeepsRecordsWithBadFields(t *testing.T) {
	doc := `{
		"entries": [{"id": "a", "merchant": "Market", "amountCents": "12"}, 5, {"id": "b", "amountCents": 300}],
		"valuesTags": ["Joy", 7, "Calm"],
		"notes": {"2024-03": "calm"}
	}`
	p, err := Decode([]byte(doc))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Entries == nil || len(*p.Entries) != 2 {
		t.Fatalf("entries = %v", p.Entries)
	}
	first := (*p.Entries)[0]
	if first.ID != "a" || first.Merchant != "Market" || first.AmountCents != 0 {
		t.Errorf("first entry = %+v", first)
	}
	if (*p.Entries)[1].AmountCents != 300 {
		t.Errorf("second entry = %+v", (*p.Entries)[1])
	}
	if p.ValuesTags == nil || !slices.Equal(*p.ValuesTags, []string{"Joy", "Calm"}) {
		t.Errorf("valuesTags = %v", p.ValuesTags)
	}
	if len(p.Skipped) != 0 {
		t.Errorf("skipped = %v", p.Skipped)
	}
	if p.Notes == nil || (*p.Notes)["2024-03"] != "calm" {
		t.Errorf("notes = %v", p.Notes)
	}
}

func TestRoundTrip(t *testing.T) {
	in := Snapshot{
		Entries:    []core.Entry{{ID: "a", DateISO: "2024-03-15", AmountCents: 4218, Tags: []string{"Joy"}}},
		Categories: []core.Category{core.NewCategory("Dining", 20000)},
		ValuesTags: core.DefaultTags(),
		Notes:      core.Notes{"2024-03": "steady"},
	}
	data, err := Encode(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	p, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(p.Skipped) != 0 || p.Entries == nil || p.Categories == nil || p.ValuesTags == nil || p.Notes == nil {
		t.Fatalf("patch = %+v", p)
	}
	if (*p.Categories)[0] != in.Categories[0] {
		t.Errorf("category = %+v", (*p.Categories)[0])
	}
	if !strings.Contains(string(data), `"dateISO": "2024-03-15"`) {
		t.Error("entry field names changed")
	}
}

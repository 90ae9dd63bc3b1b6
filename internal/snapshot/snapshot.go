// Package snapshot encodes and decodes the portable export document and the
// tabular entry exports.
package snapshot

import (
	"encoding/json"
	"errors"

	"mindful/internal/core"
)

// ErrInvalidDocument is returned when an import is not usable at all.
var ErrInvalidDocument = errors.New("invalid snapshot document")

// Snapshot is the export document. The active month is not part of it.
type Snapshot struct {
	Entries    []core.Entry    `json:"entries"`
	Categories []core.Category `json:"categories"`
	ValuesTags []string        `json:"valuesTags"`
	Notes      core.Notes      `json:"notes"`
}

// Patch holds the fields of an imported document that had the expected
// shape. A nil pointer means the field is left untouched.
type Patch struct {
	Entries    *[]core.Entry
	Categories *[]core.Category
	ValuesTags *[]string
	Notes      *core.Notes
	// Skipped lists the fields that were present but unusable.
	Skipped []string
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Entries == nil && p.Categories == nil && p.ValuesTags == nil && p.Notes == nil
}

// FileName is the suggested download name of a snapshot for month.
func FileName(month core.MonthKey) string {
	return "mindful-spending-" + string(month) + ".json"
}

// Encode emits the snapshot as 2-space indented JSON. Nil collections are
// written as empty ones.
func Encode(s Snapshot) ([]byte, error) {
	if s.Entries == nil {
		s.Entries = []core.Entry{}
	}
	if s.Categories == nil {
		s.Categories = []core.Category{}
	}
	if s.ValuesTags == nil {
		s.ValuesTags = []string{}
	}
	if s.Notes == nil {
		s.Notes = core.Notes{}
	}
	return json.MarshalIndent(s, "", "  ")
}

// Decode parses an import document. Unparseable data and falsy roots fail
// with ErrInvalidDocument. Any other root succeeds; fields that are missing
// or have the wrong shape are left out of the patch.
func Decode(data []byte) (Patch, error) {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return Patch{}, errors.Join(ErrInvalidDocument, err)
	}
	if falsy(root) {
		return Patch{}, ErrInvalidDocument
	}

	var p Patch
	obj, ok := root.(map[string]any)
	if !ok {
		return p, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Patch{}, errors.Join(ErrInvalidDocument, err)
	}

	if v, ok := decodeArray[core.Entry](obj, fields, "entries", &p); ok {
		p.Entries = &v
	}
	if v, ok := decodeArray[core.Category](obj, fields, "categories", &p); ok {
		p.Categories = &v
	}
	if v, ok := decodeArray[string](obj, fields, "valuesTags", &p); ok {
		p.ValuesTags = &v
	}
	if raw, present := obj["notes"]; present {
		notes, ok := decodeNotes(raw, fields["notes"])
		if ok {
			p.Notes = &notes
		} else {
			p.Skipped = append(p.Skipped, "notes")
		}
	}
	return p, nil
}

func decodeArray[T any](obj map[string]any, fields map[string]json.RawMessage, name string, p *Patch) ([]T, bool) {
	raw, present := obj[name]
	if !present {
		return nil, false
	}
	if _, isArray := raw.([]any); !isArray {
		p.Skipped = append(p.Skipped, name)
		return nil, false
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(fields[name], &elems); err != nil {
		p.Skipped = append(p.Skipped, name)
		return nil, false
	}

	out := make([]T, 0, len(elems))
	for _, elem := range elems {
		if v, ok := decodeElement[T](elem); ok {
			out = append(out, v)
		}
	}
	return out, true
}

// decodeElement decodes one array element without inspecting it. A field of
// the wrong type is left at its zero value and the rest of the record is
// kept; an element that is not even the right kind of JSON value is dropped.
func decodeElement[T any](elem json.RawMessage) (T, bool) {
	var v T
	err := json.Unmarshal(elem, &v)
	if err == nil {
		return v, true
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return v, true
	}
	var zero T
	return zero, false
}

func decodeNotes(raw any, data json.RawMessage) (core.Notes, bool) {
	if _, isObject := raw.(map[string]any); !isObject {
		return nil, false
	}
	notes := core.Notes{}
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, false
	}
	return notes, true
}

func falsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case float64:
		return x == 0
	case string:
		return x == ""
	}
	return false
}

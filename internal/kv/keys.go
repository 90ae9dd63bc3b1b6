package kv

import (
	"fmt"
	"strings"
)

// DefaultPrefix namespaces every journal key.
const DefaultPrefix = "msj"

// Field names one independently persisted part of the journal state.
type Field string

const (
	FieldEntries    Field = "entries"
	FieldCategories Field = "categories"
	FieldValuesTags Field = "valuesTags"
	FieldNotes      Field = "notes"
	FieldLastMonth  Field = "lastMonth"
)

var suffixes = map[Field]string{
	FieldEntries:    "entries",
	FieldCategories: "categories",
	FieldValuesTags: "values-tags",
	FieldNotes:      "notes",
	FieldLastMonth:  "last-month",
}

// Fields lists every persisted field in persistence order.
func Fields() []Field {
	return []Field{FieldEntries, FieldCategories, FieldValuesTags, FieldNotes, FieldLastMonth}
}

// Keys builds namespaced store keys such as "msj:entries".
type Keys struct {
	prefix string
}

// NewKeys returns a key builder for prefix; an empty prefix uses DefaultPrefix.
func NewKeys(prefix string) Keys {
	prefix = strings.TrimSuffix(strings.TrimSpace(prefix), ":")
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return Keys{prefix: prefix}
}

// For returns the store key of field.
func (k Keys) For(field Field) (string, error) {
	suffix, ok := suffixes[field]
	if !ok {
		return "", fmt.Errorf("unknown field %q", field)
	}
	return k.prefix + ":" + suffix, nil
}

func (k Keys) must(field Field) string {
	key, _ := k.For(field)
	return key
}

func (k Keys) Entries() string    { return k.must(FieldEntries) }
func (k Keys) Categories() string { return k.must(FieldCategories) }
func (k Keys) ValuesTags() string { return k.must(FieldValuesTags) }
func (k Keys) Notes() string      { return k.must(FieldNotes) }
func (k Keys) LastMonth() string  { return k.must(FieldLastMonth) }

// Prefix returns the namespace.
func (k Keys) Prefix() string { return k.prefix }

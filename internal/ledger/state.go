// Package ledger owns the journal state and every mutation of it. Each
// mutation persists only the field it changed.
package ledger

import (
	"context"
	"errors"
	"maps"
	"time"

	"mindful/internal/core"
	"mindful/internal/kv"
)

var (
	ErrEntryNotFound    = errors.New("entry not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// State is the full in-memory journal.
type State struct {
	Entries    []core.Entry
	Categories []core.Category
	ValuesTags []string
	Notes      core.Notes
	Month      core.MonthKey
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := State{
		Entries:    make([]core.Entry, len(s.Entries)),
		Categories: append([]core.Category{}, s.Categories...),
		ValuesTags: append([]string{}, s.ValuesTags...),
		Notes:      maps.Clone(s.Notes),
		Month:      s.Month,
	}
	for i, e := range s.Entries {
		out.Entries[i] = e.Clone()
	}
	if out.Notes == nil {
		out.Notes = core.Notes{}
	}
	return out
}

// Op names the kind of mutation behind a Change.
type Op string

const (
	OpCreate   Op = "create"
	OpUpdate   Op = "update"
	OpDelete   Op = "delete"
	OpImport   Op = "import"
	OpSeed     Op = "seed"
	OpNavigate Op = "navigate"
)

// Change describes one persisted field write.
type Change struct {
	Key   string    `json:"key"`
	Field kv.Field  `json:"field"`
	Op    Op        `json:"op"`
	At    time.Time `json:"at"`
}

// ChangeNotifier is told about every successful field write.
type ChangeNotifier interface {
	Notify(ctx context.Context, change Change) error
}

package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mindful/internal/core"
	"mindful/internal/kv"
	"mindful/internal/log"
)

// Journal owns the State and routes every mutation through the store.
// It is not safe for concurrent use.
type Journal struct {
	store    kv.Store
	keys     kv.Keys
	state    State
	notifier ChangeNotifier
	logger   *log.Logger
	now      func() time.Time
	newID    func() string
}

// Option configures a Journal.
type Option func(*Journal)

// WithKeys sets the key namespace.
func WithKeys(keys kv.Keys) Option {
	return func(j *Journal) { j.keys = keys }
}

// WithNotifier publishes every successful field write to n.
func WithNotifier(n ChangeNotifier) Option {
	return func(j *Journal) { j.notifier = n }
}

// WithLogger logs journal activity through l under the journal component.
func WithLogger(l *log.Logger) Option {
	return func(j *Journal) { j.logger = l.WithComponent(log.ComponentJournal) }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(j *Journal) { j.now = now }
}

// WithIDs replaces the uuid generator for new entries.
func WithIDs(newID func() string) Option {
	return func(j *Journal) { j.newID = newID }
}

// Open loads the journal from store. Missing or unreadable fields start
// empty; the active month falls back to the current one.
func Open(ctx context.Context, store kv.Store, opts ...Option) (*Journal, error) {
	j := &Journal{
		store:  store,
		keys:   kv.NewKeys(kv.DefaultPrefix),
		logger: log.Discard(),
		now:    time.Now,
		newID:  uuid.NewString,
		state: State{
			Entries:    []core.Entry{},
			Categories: []core.Category{},
			ValuesTags: []string{},
			Notes:      core.Notes{},
		},
	}
	for _, opt := range opts {
		opt(j)
	}

	if err := j.Refresh(ctx); err != nil {
		return nil, err
	}

	month, status, err := kv.Load[core.MonthKey](ctx, store, j.keys.LastMonth())
	if err != nil {
		return nil, fmt.Errorf("load last month: %w", err)
	}
	if _, perr := core.ParseMonthKey(string(month)); status != kv.Valid || perr != nil {
		month = core.MonthFor(j.now())
	}
	j.state.Month = month

	j.logger.DebugContext(ctx, "Journal opened",
		log.FieldMonth, month,
		log.FieldCount, len(j.state.Entries))
	return j, nil
}

// Seed writes defaults for missing fields and reloads the state.
func (j *Journal) Seed(ctx context.Context) (SeedReport, error) {
	report, err := EnsureSeeds(log.NewContext(ctx, j.logger), j.store, j.keys, j.now(), j.newID)
	if err != nil {
		return report, err
	}
	for _, f := range report.Seeded {
		key, _ := j.keys.For(f)
		j.notify(ctx, key, f, OpSeed)
	}

	if err := j.Refresh(ctx); err != nil {
		return report, err
	}
	if report.Has(kv.FieldLastMonth) {
		j.state.Month = core.MonthFor(j.now())
	}
	return report, nil
}

// State returns a deep copy of the current state.
func (j *Journal) State() State {
	return j.state.Clone()
}

// Month returns the active month.
func (j *Journal) Month() core.MonthKey {
	return j.state.Month
}

// Keys returns the key namespace in use.
func (j *Journal) Keys() kv.Keys {
	return j.keys
}

// Refresh re-reads entries, categories, tags and notes. Fields that are
// missing or unreadable keep their in-memory value. The active month is not
// reloaded.
func (j *Journal) Refresh(ctx context.Context) error {
	entries, err := refreshField(ctx, j, j.keys.Entries(), j.state.Entries)
	if err != nil {
		return err
	}
	categories, err := refreshField(ctx, j, j.keys.Categories(), j.state.Categories)
	if err != nil {
		return err
	}
	tags, err := refreshField(ctx, j, j.keys.ValuesTags(), j.state.ValuesTags)
	if err != nil {
		return err
	}
	notes, err := refreshField(ctx, j, j.keys.Notes(), j.state.Notes)
	if err != nil {
		return err
	}

	j.state.Entries = entries
	j.state.Categories = categories
	j.state.ValuesTags = tags
	j.state.Notes = notes
	return nil
}

func refreshField[T any](ctx context.Context, j *Journal, key string, current T) (T, error) {
	v, status, err := kv.Load[T](ctx, j.store, key)
	if err != nil {
		return current, fmt.Errorf("load %s: %w", key, err)
	}
	if status == kv.Malformed {
		j.logger.WarnContext(ctx, "Ignoring malformed stored value", log.FieldKey, key)
	}
	if status != kv.Valid {
		return current, nil
	}
	return v, nil
}

// SaveField persists value under field and notifies about it. It does not
// touch the in-memory state.
func (j *Journal) SaveField(ctx context.Context, field kv.Field, value any) error {
	return j.save(ctx, field, value, OpUpdate)
}

func (j *Journal) save(ctx context.Context, field kv.Field, value any, op Op) error {
	key, err := j.keys.For(field)
	if err != nil {
		return err
	}
	if err := kv.Save(ctx, j.store, key, value); err != nil {
		j.logger.LogError(ctx, "Failed to persist field", err, string(op), log.NewFields().WithKey(key))
		return fmt.Errorf("save %s: %w", field, err)
	}
	j.notify(ctx, key, field, op)
	return nil
}

func (j *Journal) notify(ctx context.Context, key string, field kv.Field, op Op) {
	if j.notifier == nil {
		return
	}
	change := Change{Key: key, Field: field, Op: op, At: j.now().UTC()}
	if err := j.notifier.Notify(ctx, change); err != nil {
		j.logger.WarnContext(ctx, "Failed to publish change",
			log.FieldKey, key,
			log.FieldOperation, string(op),
			log.FieldError, err)
	}
}

func (j *Journal) nowMillis() int64 {
	return j.now().UnixMilli()
}

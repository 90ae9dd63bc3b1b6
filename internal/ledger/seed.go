package ledger

import (
	"context"
	"fmt"
	"time"

	"mindful/internal/core"
	"mindful/internal/kv"
	"mindful/internal/log"
)

// SeedReport lists the fields written by EnsureSeeds.
type SeedReport struct {
	Seeded []kv.Field
}

// Any reports whether anything was seeded.
func (r SeedReport) Any() bool { return len(r.Seeded) > 0 }

// Has reports whether field was seeded.
func (r SeedReport) Has(field kv.Field) bool {
	for _, f := range r.Seeded {
		if f == field {
			return true
		}
	}
	return false
}

// DefaultCategories is the starter category set, caps in cents.
func DefaultCategories() []core.Category {
	return []core.Category{
		core.NewCategory("Groceries", 40000),
		core.NewCategory("Dining", 20000),
		core.NewCategory("Transport", 12000),
		core.NewCategory("Fun", 15000),
		core.NewCategory("Health", 10000),
		core.NewCategory("Home", 25000),
		core.NewCategory("Misc", 10000),
	}
}

// SampleEntries returns the two illustrative entries dated on now's day.
func SampleEntries(now time.Time, newID func() string) []core.Entry {
	today := core.DateOf(now)
	millis := now.UnixMilli()
	return []core.Entry{
		{
			ID:          newID(),
			DateISO:     today,
			AmountCents: 4218,
			Category:    "Groceries",
			Merchant:    "Trader Joes",
			Tags:        []string{"Joy", "Health"},
			Reflection:  "Stocked up on veggies and fruit. Felt good to cook at home.",
			CreatedAt:   millis,
			UpdatedAt:   millis,
		},
		{
			ID:          newID(),
			DateISO:     today,
			AmountCents: 1580,
			Category:    "Dining",
			Merchant:    "Cafe Lumen",
			Tags:        []string{"Connection"},
			Reflection:  "Coffee catch-up with a friend. Worth it.",
			CreatedAt:   millis,
			UpdatedAt:   millis,
		},
	}
}

// EnsureSeeds writes defaults for every field that is missing, unparseable or
// falsy (null, false, 0, ""). Any other stored value, even an empty list or
// one of the wrong shape, is left alone, so running it again never
// duplicates or destroys anything. Seeding the entries also records today's month
// as the active one.
func EnsureSeeds(ctx context.Context, store kv.Store, keys kv.Keys, now time.Time, newID func() string) (SeedReport, error) {
	var report SeedReport

	seeded, err := seedField(ctx, store, keys.Categories(), DefaultCategories())
	if err != nil {
		return report, err
	}
	if seeded {
		report.Seeded = append(report.Seeded, kv.FieldCategories)
	}

	seeded, err = seedField(ctx, store, keys.ValuesTags(), core.DefaultTags())
	if err != nil {
		return report, err
	}
	if seeded {
		report.Seeded = append(report.Seeded, kv.FieldValuesTags)
	}

	seeded, err = seedField(ctx, store, keys.Entries(), SampleEntries(now, newID))
	if err != nil {
		return report, err
	}
	if seeded {
		report.Seeded = append(report.Seeded, kv.FieldEntries)
		if err := kv.Save(ctx, store, keys.LastMonth(), core.MonthFor(now)); err != nil {
			return report, fmt.Errorf("seed last month: %w", err)
		}
		report.Seeded = append(report.Seeded, kv.FieldLastMonth)
	}

	seeded, err = seedField(ctx, store, keys.Notes(), core.Notes{})
	if err != nil {
		return report, err
	}
	if seeded {
		report.Seeded = append(report.Seeded, kv.FieldNotes)
	}

	return report, nil
}

func seedField[T any](ctx context.Context, store kv.Store, key string, value T) (bool, error) {
	occupied, err := kv.Occupied(ctx, store, key)
	if err != nil {
		return false, fmt.Errorf("check %s: %w", key, err)
	}
	if occupied {
		return false, nil
	}

	if err := kv.Save(ctx, store, key, value); err != nil {
		return false, fmt.Errorf("seed %s: %w", key, err)
	}
	log.FromContext(ctx).InfoContext(ctx, "Seeded default value", log.FieldKey, key)
	return true, nil
}

package ledger

import (
	"context"
	"fmt"
	"strings"

	"mindful/internal/core"
	"mindful/internal/kv"
	"mindful/internal/log"
)

// EntryInput is the raw form of an entry as typed by the user.
type EntryInput struct {
	Date       string
	Amount     string
	Category   string
	Merchant   string
	Reflection string
	Tags       []string
}

func (in EntryInput) amount() (int64, error) {
	cents := core.ToCents(in.Amount)
	if cents <= 0 {
		return 0, fmt.Errorf("%w: %q", core.ErrInvalidAmount, in.Amount)
	}
	return cents, nil
}

func (in EntryInput) date(fallback string) (string, error) {
	date := strings.TrimSpace(in.Date)
	if date == "" {
		return fallback, nil
	}
	if !core.ValidDate(date) {
		return "", fmt.Errorf("%w: %q", core.ErrInvalidDate, in.Date)
	}
	return date, nil
}

func uniqueTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t == "" || core.ContainsTag(out, t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// AddEntry validates in and appends a new entry. An empty date means today.
func (j *Journal) AddEntry(ctx context.Context, in EntryInput) (core.Entry, error) {
	cents, err := in.amount()
	if err != nil {
		return core.Entry{}, err
	}
	date, err := in.date(core.DateOf(j.now()))
	if err != nil {
		return core.Entry{}, err
	}

	now := j.nowMillis()
	e := core.Entry{
		ID:          j.newID(),
		DateISO:     date,
		AmountCents: cents,
		Category:    strings.TrimSpace(in.Category),
		Merchant:    strings.TrimSpace(in.Merchant),
		Tags:        uniqueTags(in.Tags),
		Reflection:  strings.TrimSpace(in.Reflection),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := e.Validate(); err != nil {
		return core.Entry{}, err
	}

	entries := append(j.State().Entries, e)
	if err := j.save(ctx, kv.FieldEntries, entries, OpCreate); err != nil {
		return core.Entry{}, err
	}
	j.state.Entries = entries

	j.logger.InfoContext(ctx, "Entry added",
		log.NewFields().WithEntry(e.ID, e.AmountCents, e.Category).ToSlice()...)
	return e.Clone(), nil
}

// EditEntry replaces the editable fields of entry id. Validation matches
// AddEntry, except an empty date keeps the current one.
func (j *Journal) EditEntry(ctx context.Context, id string, in EntryInput) (core.Entry, error) {
	idx := j.findEntry(id)
	if idx < 0 {
		return core.Entry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}

	cents, err := in.amount()
	if err != nil {
		return core.Entry{}, err
	}
	prev := j.state.Entries[idx]
	date, err := in.date(prev.DateISO)
	if err != nil {
		return core.Entry{}, err
	}

	e := prev.Clone()
	e.DateISO = date
	e.AmountCents = cents
	e.Category = strings.TrimSpace(in.Category)
	e.Merchant = strings.TrimSpace(in.Merchant)
	e.Tags = uniqueTags(in.Tags)
	e.Reflection = strings.TrimSpace(in.Reflection)
	e.UpdatedAt = j.bump(prev.UpdatedAt)
	if err := e.Validate(); err != nil {
		return core.Entry{}, err
	}

	if err := j.replaceEntry(ctx, idx, e); err != nil {
		return core.Entry{}, err
	}
	j.logger.InfoContext(ctx, "Entry updated",
		log.NewFields().WithEntry(e.ID, e.AmountCents, e.Category).ToSlice()...)
	return e.Clone(), nil
}

// ToggleTag adds tag to entry id, or removes it when already present.
func (j *Journal) ToggleTag(ctx context.Context, id, tag string) (core.Entry, error) {
	if tag == "" {
		return core.Entry{}, core.ErrEmptyTag
	}
	idx := j.findEntry(id)
	if idx < 0 {
		return core.Entry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}

	prev := j.state.Entries[idx]
	e := prev.Clone()
	if e.HasTag(tag) {
		kept := make([]string, 0, len(e.Tags))
		for _, t := range e.Tags {
			if t != tag {
				kept = append(kept, t)
			}
		}
		e.Tags = kept
	} else {
		e.Tags = append(e.Tags, tag)
	}
	e.UpdatedAt = j.bump(prev.UpdatedAt)

	if err := j.replaceEntry(ctx, idx, e); err != nil {
		return core.Entry{}, err
	}
	j.logger.DebugContext(ctx, "Tag toggled", log.FieldEntryID, id, log.FieldTag, tag)
	return e.Clone(), nil
}

// DeleteEntry removes entry id.
func (j *Journal) DeleteEntry(ctx context.Context, id string) error {
	idx := j.findEntry(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}

	entries := j.State().Entries
	entries = append(entries[:idx], entries[idx+1:]...)
	if err := j.save(ctx, kv.FieldEntries, entries, OpDelete); err != nil {
		return err
	}
	j.state.Entries = entries

	j.logger.InfoContext(ctx, "Entry deleted", log.FieldEntryID, id)
	return nil
}

// Entry returns a copy of entry id.
func (j *Journal) Entry(id string) (core.Entry, bool) {
	idx := j.findEntry(id)
	if idx < 0 {
		return core.Entry{}, false
	}
	return j.state.Entries[idx].Clone(), true
}

func (j *Journal) findEntry(id string) int {
	for i, e := range j.state.Entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (j *Journal) replaceEntry(ctx context.Context, idx int, e core.Entry) error {
	entries := j.State().Entries
	entries[idx] = e
	if err := j.save(ctx, kv.FieldEntries, entries, OpUpdate); err != nil {
		return err
	}
	j.state.Entries = entries
	return nil
}

// bump returns a modification time strictly after prev.
func (j *Journal) bump(prev int64) int64 {
	return max(j.nowMillis(), prev+1)
}

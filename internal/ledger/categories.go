package ledger

import (
	"context"
	"fmt"
	"strings"

	"mindful/internal/core"
	"mindful/internal/kv"
	"mindful/internal/log"
)

func capCents(input string) (int64, error) {
	cents := core.ToCents(input)
	if cents < 0 {
		return 0, fmt.Errorf("%w: %q", core.ErrInvalidAmount, input)
	}
	return cents, nil
}

// AddCategory appends a category. Names are unique ignoring case; an empty
// or unparseable cap means uncapped.
func (j *Journal) AddCategory(ctx context.Context, name, capInput string) (core.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return core.Category{}, core.ErrEmptyCategoryName
	}
	if core.FindCategoryFold(j.state.Categories, name) >= 0 {
		return core.Category{}, fmt.Errorf("%w: %s", core.ErrDuplicateCategory, name)
	}
	cents, err := capCents(capInput)
	if err != nil {
		return core.Category{}, err
	}

	c := core.NewCategory(name, cents)
	if err := c.Validate(); err != nil {
		return core.Category{}, err
	}

	categories := append(j.State().Categories, c)
	if err := j.save(ctx, kv.FieldCategories, categories, OpCreate); err != nil {
		return core.Category{}, err
	}
	j.state.Categories = categories

	j.logger.InfoContext(ctx, "Category added", log.FieldCategory, name, log.FieldAmountCents, cents)
	return c, nil
}

// SetCap changes the cap of the category named exactly name.
func (j *Journal) SetCap(ctx context.Context, name, capInput string) (core.Category, error) {
	idx := j.findCategory(name)
	if idx < 0 {
		return core.Category{}, fmt.Errorf("%w: %s", ErrCategoryNotFound, name)
	}
	cents, err := capCents(capInput)
	if err != nil {
		return core.Category{}, err
	}

	categories := j.State().Categories
	categories[idx].CapCents = cents
	if err := j.save(ctx, kv.FieldCategories, categories, OpUpdate); err != nil {
		return core.Category{}, err
	}
	j.state.Categories = categories

	j.logger.InfoContext(ctx, "Cap saved", log.FieldCategory, name, log.FieldAmountCents, cents)
	return categories[idx], nil
}

// RemoveCategory deletes the category named exactly name. Entries that used
// it keep the name and become orphaned.
func (j *Journal) RemoveCategory(ctx context.Context, name string) error {
	idx := j.findCategory(name)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrCategoryNotFound, name)
	}

	categories := j.State().Categories
	categories = append(categories[:idx], categories[idx+1:]...)
	if err := j.save(ctx, kv.FieldCategories, categories, OpDelete); err != nil {
		return err
	}
	j.state.Categories = categories

	j.logger.InfoContext(ctx, "Category removed", log.FieldCategory, name)
	return nil
}

func (j *Journal) findCategory(name string) int {
	for i, c := range j.state.Categories {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// AddTag sanitizes raw and appends it to the vocabulary. added is false when
// the tag was already known.
func (j *Journal) AddTag(ctx context.Context, raw string) (tag string, added bool, err error) {
	tag = core.SanitizeTag(raw)
	if tag == "" {
		return "", false, core.ErrEmptyTag
	}
	if core.ContainsTag(j.state.ValuesTags, tag) {
		return tag, false, nil
	}

	tags := append(j.State().ValuesTags, tag)
	if err := j.save(ctx, kv.FieldValuesTags, tags, OpCreate); err != nil {
		return "", false, err
	}
	j.state.ValuesTags = tags

	j.logger.InfoContext(ctx, "Tag added", log.FieldTag, tag)
	return tag, true, nil
}

// SetNote stores the retrospective note of month, replacing any previous one.
func (j *Journal) SetNote(ctx context.Context, month core.MonthKey, text string) error {
	if _, err := core.ParseMonthKey(string(month)); err != nil {
		return err
	}

	notes := j.State().Notes
	notes[month] = text
	if err := j.save(ctx, kv.FieldNotes, notes, OpUpdate); err != nil {
		return err
	}
	j.state.Notes = notes
	return nil
}

// Note returns the note of month.
func (j *Journal) Note(month core.MonthKey) string {
	return j.state.Notes[month]
}

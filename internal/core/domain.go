package core

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf16"
)

// Uncategorized is the bucket used for entries without a usable category.
const Uncategorized = "Uncategorized"

type (
	// Entry is a single logged purchase.
	Entry struct {
		ID          string   `json:"id" validate:"required"`
		DateISO     string   `json:"dateISO" validate:"isodate"`
		AmountCents int64    `json:"amountCents" validate:"gte=0"`
		Category    string   `json:"category"`
		Merchant    string   `json:"merchant"`
		Tags        []string `json:"tags"`
		Reflection  string   `json:"reflection"`
		CreatedAt   int64    `json:"createdAt"` // unix millis
		UpdatedAt   int64    `json:"updatedAt"` // unix millis
	}

	// Category is a spending bucket with an optional monthly cap (0 = uncapped).
	Category struct {
		Name     string `json:"name" validate:"notblank"`
		CapCents int64  `json:"capCents" validate:"gte=0"`
		Color    string `json:"color"`
	}

	// Notes maps a month to its free-text retrospective note.
	Notes map[MonthKey]string

	// LinkState describes how an entry's category name resolves against the
	// current category collection.
	LinkState int

	// CategoryLink is an entry's category reference resolved at read time.
	CategoryLink struct {
		Name     string
		State    LinkState
		Category Category
	}
)

const (
	LinkUnset LinkState = iota
	LinkLinked
	LinkOrphaned
)

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidMonth      = errors.New("invalid month")
	ErrMissingID         = errors.New("missing entry id")
	ErrEmptyCategoryName = errors.New("category needs a name")
	ErrDuplicateCategory = errors.New("category exists")
	ErrEmptyTag          = errors.New("empty tag")
)

func (s LinkState) String() string {
	switch s {
	case LinkLinked:
		return "linked"
	case LinkOrphaned:
		return "orphaned"
	default:
		return "unset"
	}
}

// Validate checks the record-level invariants of an entry.
func (e Entry) Validate() error {
	return validationError(validate.Struct(e))
}

// Validate checks the record-level invariants of a category.
func (c Category) Validate() error {
	return validationError(validate.Struct(c))
}

// Clone returns a copy of the entry that shares no slices with e.
func (e Entry) Clone() Entry {
	if e.Tags != nil {
		e.Tags = append([]string(nil), e.Tags...)
	}
	return e
}

// HasTag reports whether the entry carries tag.
func (e Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Month returns the month the entry is bucketed into.
func (e Entry) Month() MonthKey {
	return MonthOf(e.DateISO)
}

// NewCategory builds a category with its derived color.
func NewCategory(name string, capCents int64) Category {
	return Category{Name: name, CapCents: capCents, Color: ColorFromString(name)}
}

// BudgetBucket is the name the entry counts under for budget purposes.
func (l CategoryLink) BudgetBucket() string {
	if l.State == LinkLinked {
		return l.Name
	}
	return Uncategorized
}

// ResolveCategory looks up name in cats. Matching is exact, the same way usage
// is grouped, so a renamed or deleted category leaves the entry orphaned.
func ResolveCategory(name string, cats []Category) CategoryLink {
	if name == "" {
		return CategoryLink{State: LinkUnset}
	}
	for _, c := range cats {
		if c.Name == name {
			return CategoryLink{Name: name, State: LinkLinked, Category: c}
		}
	}
	return CategoryLink{Name: name, State: LinkOrphaned}
}

// FindCategoryFold returns the index of the category whose name matches name
// case-insensitively, or -1.
func FindCategoryFold(cats []Category, name string) int {
	for i, c := range cats {
		if strings.EqualFold(c.Name, name) {
			return i
		}
	}
	return -1
}

// ColorFromString derives a stable hsl color from s.
func ColorFromString(s string) string {
	h := 0
	for _, u := range utf16.Encode([]rune(s)) {
		h = (h*31 + int(u)) % 360
	}
	return "hsl(" + strconv.Itoa(h) + " 65% 55%)"
}

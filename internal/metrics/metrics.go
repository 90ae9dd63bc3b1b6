// Package metrics derives the monthly views of a journal: totals, category
// usage, alignment scores and rankings. Every function is pure and
// deterministic for a given input; none of them mutate their arguments.
package metrics

import (
	"sort"

	"mindful/internal/core"
)

// Label classifies an alignment score.
type Label int

const (
	Neutral Label = iota
	Aligned
	Misaligned
)

func (l Label) String() string {
	switch l {
	case Aligned:
		return "Aligned"
	case Misaligned:
		return "Misaligned"
	default:
		return "Neutral"
	}
}

// AlignmentResult is the score of one tag set.
type AlignmentResult struct {
	Score int
	Label Label
}

// Totals summarizes one month.
type Totals struct {
	Total     int64
	AvgPerDay int64
	Count     int
	Days      int
}

// Ranked is one row of a Top-N ranking.
type Ranked struct {
	Key   string
	Value int64
}

// KeyFunc extracts the grouping key of an entry.
type KeyFunc func(core.Entry) string

// MonthEntries returns the entries bucketed into month, in input order.
func MonthEntries(entries []core.Entry, month core.MonthKey) []core.Entry {
	out := make([]core.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Month() == month {
			out = append(out, e)
		}
	}
	return out
}

// Alignment scores a tag set: +1 per distinct positive tag, -1 per distinct
// negative tag. Custom tags do not count.
func Alignment(tags []string) AlignmentResult {
	seen := make(map[string]struct{}, len(tags))
	score := 0
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		switch core.PolarityOf(t) {
		case core.Positive:
			score++
		case core.Negative:
			score--
		}
	}

	label := Neutral
	switch {
	case score >= 2:
		label = Aligned
	case score <= -1:
		label = Misaligned
	}
	return AlignmentResult{Score: score, Label: label}
}

// UsageByCategory sums the month's amounts per category name. Entries with an
// empty category are counted under core.Uncategorized.
func UsageByCategory(entries []core.Entry, month core.MonthKey) map[string]int64 {
	usage := make(map[string]int64)
	for _, e := range MonthEntries(entries, month) {
		name := e.Category
		if name == "" {
			name = core.Uncategorized
		}
		usage[name] += e.AmountCents
	}
	return usage
}

// ComputeTotals sums the month and averages it over the distinct days that
// have at least one entry.
func ComputeTotals(entries []core.Entry, month core.MonthKey) Totals {
	var t Totals
	days := make(map[string]struct{})
	for _, e := range MonthEntries(entries, month) {
		t.Total += e.AmountCents
		t.Count++
		days[e.DateISO] = struct{}{}
	}
	t.Days = len(days)
	t.AvgPerDay = divRound(t.Total, int64(max(1, t.Days)))
	return t
}

// divRound divides and rounds half up, matching floor(a/b + 0.5) for b > 0.
func divRound(a, b int64) int64 {
	q := a / b
	r := a % b
	if r < 0 {
		q--
		r += b
	}
	if 2*r >= b {
		q++
	}
	return q
}

// ByMerchant groups by merchant, with "Unknown" for blank merchants.
func ByMerchant(e core.Entry) string {
	if e.Merchant == "" {
		return "Unknown"
	}
	return e.Merchant
}

// ByCategory groups by category, with core.Uncategorized for blank ones.
func ByCategory(e core.Entry) string {
	if e.Category == "" {
		return core.Uncategorized
	}
	return e.Category
}

// TopN sums amounts per key and returns the n largest groups. Equal sums keep
// the order in which their keys were first seen in entries.
func TopN(entries []core.Entry, key KeyFunc, n int) []Ranked {
	if n <= 0 {
		return []Ranked{}
	}

	index := make(map[string]int)
	var groups []Ranked
	for _, e := range entries {
		k := key(e)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Ranked{Key: k})
		}
		groups[i].Value += e.AmountCents
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Value > groups[j].Value
	})

	if len(groups) > n {
		groups = groups[:n]
	}
	if groups == nil {
		return []Ranked{}
	}
	return groups
}

package metrics

import (
	"sort"

	"mindful/internal/core"
)

// NearingThreshold is the usage percentage above which a cap is "nearing".
const NearingThreshold = 80

// Level is the state of a category against its cap.
type Level int

const (
	Uncapped Level = iota
	OK
	Nearing
	Over
)

func (l Level) String() string {
	switch l {
	case OK:
		return "ok"
	case Nearing:
		return "nearing"
	case Over:
		return "over"
	default:
		return "uncapped"
	}
}

// BudgetStatus is one category's usage against its cap.
type BudgetStatus struct {
	Name    string
	Color   string
	Used    int64
	Cap     int64
	Percent int
	Level   Level
}

// Remaining is the cap left, negative when over.
func (b BudgetStatus) Remaining() int64 {
	return b.Cap - b.Used
}

// Budget computes the status of a single amount against a cap.
func Budget(name string, used, capCents int64) BudgetStatus {
	b := BudgetStatus{Name: name, Used: used, Cap: capCents}
	if capCents <= 0 {
		b.Level = Uncapped
		return b
	}

	b.Percent = int(min(100, divRound(used*100, capCents)))
	switch {
	case used > capCents:
		b.Level = Over
	case used*100 > capCents*NearingThreshold:
		b.Level = Nearing
	default:
		b.Level = OK
	}
	return b
}

// Budgets returns the status of every category, in category order.
func Budgets(categories []core.Category, usage map[string]int64) []BudgetStatus {
	out := make([]BudgetStatus, 0, len(categories))
	for _, c := range categories {
		b := Budget(c.Name, usage[c.Name], c.CapCents)
		b.Color = c.Color
		out = append(out, b)
	}
	return out
}

// OrphanedUsage returns usage whose category is not in categories, including
// core.Uncategorized, sorted by name.
func OrphanedUsage(categories []core.Category, usage map[string]int64) []Ranked {
	known := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		known[c.Name] = struct{}{}
	}

	var out []Ranked
	for name, used := range usage {
		if _, ok := known[name]; ok {
			continue
		}
		out = append(out, Ranked{Key: name, Value: used})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Preview projects category's budget for month if addCents were spent on it.
// ok is false when the category does not exist.
func Preview(categories []core.Category, entries []core.Entry, month core.MonthKey, category string, addCents int64) (BudgetStatus, bool) {
	link := core.ResolveCategory(category, categories)
	if link.State != core.LinkLinked {
		return BudgetStatus{}, false
	}
	used := UsageByCategory(entries, month)[category]
	b := Budget(category, used+addCents, link.Category.CapCents)
	b.Color = link.Category.Color
	return b, true
}

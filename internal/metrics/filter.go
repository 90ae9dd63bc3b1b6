package metrics

import (
	"sort"
	"strings"

	"mindful/internal/core"
)

// AllCategories disables the category filter of a Query.
const AllCategories = "all"

// Query narrows a list of entries.
type Query struct {
	Category string
	Search   string
}

// Filter returns the entries matching q, in input order. The search is a
// case-insensitive substring match against merchant, reflection and tags.
func Filter(entries []core.Entry, q Query) []core.Entry {
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]core.Entry, 0, len(entries))
	for _, e := range entries {
		if q.Category != "" && q.Category != AllCategories && e.Category != q.Category {
			continue
		}
		if needle != "" && !strings.Contains(haystack(e), needle) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func haystack(e core.Entry) string {
	return strings.ToLower(e.Merchant + " " + e.Reflection + " " + strings.Join(e.Tags, " "))
}

// SortByDateDesc returns a copy of entries, newest date first. Entries on the
// same date keep their relative order.
func SortByDateDesc(entries []core.Entry) []core.Entry {
	out := append([]core.Entry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DateISO > out[j].DateISO
	})
	return out
}

package metrics

import (
	"sort"

	"mindful/internal/core"
)

// DefaultPulseSize is the number of tags shown in a tag pulse.
const DefaultPulseSize = 8

// AlignmentCounts tallies entries per alignment label.
type AlignmentCounts struct {
	Aligned    int
	Neutral    int
	Misaligned int
}

// TagCount is one row of a tag pulse.
type TagCount struct {
	Tag   string
	Count int
}

// Counts tallies the alignment label of every entry.
func Counts(entries []core.Entry) AlignmentCounts {
	var c AlignmentCounts
	for _, e := range entries {
		switch Alignment(e.Tags).Label {
		case Aligned:
			c.Aligned++
		case Misaligned:
			c.Misaligned++
		default:
			c.Neutral++
		}
	}
	return c
}

// AlignedShare is the rounded percentage of entries with a positive score.
// An empty list yields 0.
func AlignedShare(entries []core.Entry) int {
	if len(entries) == 0 {
		return 0
	}
	positive := 0
	for _, e := range entries {
		if Alignment(e.Tags).Score > 0 {
			positive++
		}
	}
	return int(divRound(int64(positive*100), int64(len(entries))))
}

// TagPulse counts tag occurrences across entries and returns the n most
// frequent. Equal counts keep first-seen order.
func TagPulse(entries []core.Entry, n int) []TagCount {
	if n <= 0 {
		n = DefaultPulseSize
	}

	index := make(map[string]int)
	var counts []TagCount
	for _, e := range entries {
		for _, t := range e.Tags {
			i, ok := index[t]
			if !ok {
				i = len(counts)
				index[t] = i
				counts = append(counts, TagCount{Tag: t})
			}
			counts[i].Count++
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// Highlights returns the first n entries with a positive alignment score and
// the first n with a negative one, both in input order.
func Highlights(entries []core.Entry, n int) (best, worst []core.Entry) {
	for _, e := range entries {
		score := Alignment(e.Tags).Score
		switch {
		case score > 0 && len(best) < n:
			best = append(best, e)
		case score < 0 && len(worst) < n:
			worst = append(worst, e)
		}
	}
	return best, worst
}

package core

import "strings"

// Polarity classifies a tag against the fixed value partitions.
type Polarity int

const (
	Custom Polarity = iota
	Positive
	Negative
)

// MaxTagLength caps custom tags, counted in characters.
const MaxTagLength = 20

var (
	positiveTags = []string{"Joy", "Health", "Growth", "Connection", "Simplicity", "Purpose", "Gratitude"}
	negativeTags = []string{"Regret", "Impulse", "Stress"}

	polarities = func() map[string]Polarity {
		m := make(map[string]Polarity, len(positiveTags)+len(negativeTags))
		for _, t := range positiveTags {
			m[t] = Positive
		}
		for _, t := range negativeTags {
			m[t] = Negative
		}
		return m
	}()
)

func (p Polarity) String() string {
	switch p {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "custom"
	}
}

// PolarityOf returns the partition tag belongs to. Matching is exact.
func PolarityOf(tag string) Polarity {
	return polarities[tag]
}

// PositiveTags returns the fixed positive partition in display order.
func PositiveTags() []string { return append([]string(nil), positiveTags...) }

// NegativeTags returns the fixed negative partition in display order.
func NegativeTags() []string { return append([]string(nil), negativeTags...) }

// DefaultTags is the seeded vocabulary: positive tags followed by negative tags.
func DefaultTags() []string {
	return append(PositiveTags(), negativeTags...)
}

// SanitizeTag trims s, collapses whitespace runs to a single space and caps
// the result at MaxTagLength characters.
func SanitizeTag(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > MaxTagLength {
		s = strings.TrimSpace(string(r[:MaxTagLength]))
	}
	return s
}

// ContainsTag reports whether vocab holds tag.
func ContainsTag(vocab []string, tag string) bool {
	for _, t := range vocab {
		if t == tag {
			return true
		}
	}
	return false
}

package core

import "testing"

func TestPolarityOf(t *testing.T) {
	cases := map[string]Polarity{
		"Joy":       Positive,
		"Gratitude": Positive,
		"Regret":    Negative,
		"Stress":    Negative,
		"joy":       Custom,
		"Coffee":    Custom,
	}
	for tag, want := range cases {
		if got := PolarityOf(tag); got != want {
			t.Errorf("PolarityOf(%q) = %v, want %v", tag, got, want)
		}
	}
}

func TestDefaultTags(t *testing.T) {
	tags := DefaultTags()
	if len(tags) != 10 || tags[0] != "Joy" || tags[9] != "Stress" {
		t.Fatalf("unexpected default tags: %v", tags)
	}
	tags[0] = "mutated"
	if DefaultTags()[0] != "Joy" {
		t.Fatal("DefaultTags must return a fresh slice")
	}
}

func TestSanitizeTag(t *testing.T) {
	cases := []struct{ in, out string }{
		{"  Slow   morning ", "Slow morning"},
		{"a\tb\nc", "a b c"},
		{"abcdefghijklmnopqrstuvwxyz", "abcdefghijklmnopqrst"},
		{"abcdefghijklmnopqrs tuv", "abcdefghijklmnopqrs"},
		{"   ", ""},
		{"Über", "Über"},
	}
	for _, tc := range cases {
		if got := SanitizeTag(tc.in); got != tc.out {
			t.Errorf("SanitizeTag(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

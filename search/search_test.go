package search

import (
	"testing"

	"github.com/sinanm89/fuzzysearch/tokenizer"
)

func TestSearchExactNameSucceeds(t *testing.T) {
	items := []string{"apple pie", "banana bread", "cherry tart"}
	idx, err := New(items, Config[string]{NameSelector: func(s string) string { return s }})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	r := idx.Search("apple pie", Options{})
	if !r.Success {
		t.Fatalf("Search(exact name) Success = false, want true")
	}
	if r.Value != "apple pie" {
		t.Errorf("Search(exact name).Value = %q, want %q", r.Value, "apple pie")
	}
}

func TestSearchSpellCorrectsToken(t *testing.T) {
	items := []string{"apple pie", "banana bread"}
	idx, err := New(items, Config[string]{NameSelector: func(s string) string { return s }})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	r := idx.Search("aple pie", Options{MaxSuggestions: 1})
	if r.Success {
		t.Fatalf("Search(aple pie) Success = true, want false: no item is named exactly %q", "aple pie")
	}
	if len(r.Suggestions) != 1 || r.Suggestions[0].Item != "apple pie" || r.Suggestions[0].Rank != 0 {
		t.Errorf("Search(aple pie).Suggestions = %+v, want [apple pie at rank 0] via spell correction", r.Suggestions)
	}
}

func TestSearchNoMatchReturnsSuggestionsOnly(t *testing.T) {
	items := []string{"apple pie", "banana bread"}
	idx, err := New(items, Config[string]{NameSelector: func(s string) string { return s }})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	r := idx.Search("zzzzzz", Options{MaxSuggestions: -1})
	if r.Success {
		t.Fatalf("Search(zzzzzz) Success = true, want false")
	}
}

func TestSearchMaxSuggestionsZeroOmitsSuggestions(t *testing.T) {
	items := []string{"apple pie", "apple tart", "apple cake"}
	idx, err := New(items, Config[string]{NameSelector: func(s string) string { return s }})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	r := idx.Search("apple", Options{})
	if len(r.Suggestions) != 0 {
		t.Fatalf("Search with default options returned %d suggestions, want 0", len(r.Suggestions))
	}
}

func TestSearchSuggestionsSortedByRank(t *testing.T) {
	items := []string{"apple pie", "apple tart and cream", "apple"}
	idx, err := New(items, Config[string]{NameSelector: func(s string) string { return s }})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	r := idx.Search("apple pie", Options{MaxSuggestions: -1})
	for i := 1; i < len(r.Suggestions); i++ {
		if r.Suggestions[i].Rank < r.Suggestions[i-1].Rank {
			t.Fatalf("suggestions not sorted ascending by rank: %+v", r.Suggestions)
		}
	}
}

func TestNewRequiresNameSelector(t *testing.T) {
	if _, err := New([]string{"a"}, Config[string]{}); err != ErrNilNameSelector {
		t.Fatalf("New without NameSelector = %v, want ErrNilNameSelector", err)
	}
}

func TestCombinePrefersFirstSuccess(t *testing.T) {
	a, _ := New([]string{"alpha"}, Config[string]{NameSelector: func(s string) string { return s }})
	b, _ := New([]string{"beta"}, Config[string]{NameSelector: func(s string) string { return s }})

	combined := Combine[string](a, b)
	r := combined.Search("beta", Options{})
	if !r.Success || r.Value != "beta" {
		t.Fatalf("Combine(a, b).Search(beta) = %+v, want success with value beta", r)
	}
}

func TestCombineMergesSuggestions(t *testing.T) {
	a, _ := New([]string{"apple pie", "apple tart"}, Config[string]{NameSelector: func(s string) string { return s }})
	b, _ := New([]string{"apple cake", "apple crumble"}, Config[string]{NameSelector: func(s string) string { return s }})

	combined := Combine[string](a, b)
	r := combined.Search("apple", Options{MaxSuggestions: -1})
	if len(r.Suggestions) == 0 {
		t.Fatalf("Combine(a, b).Search(apple) returned no suggestions")
	}
	for i := 1; i < len(r.Suggestions); i++ {
		if r.Suggestions[i].Rank < r.Suggestions[i-1].Rank {
			t.Fatalf("combined suggestions not sorted ascending by rank: %+v", r.Suggestions)
		}
	}
}

func TestSearchFoldDiacritics(t *testing.T) {
	items := []string{"café central"}
	idx, err := New(items, Config[string]{
		NameSelector:   func(s string) string { return s },
		FoldDiacritics: true,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	r := idx.Search("cafe central", Options{})
	if !r.Success {
		t.Fatalf("Search(cafe central) with FoldDiacritics Success = false, want true")
	}
	if r.Value != "café central" {
		t.Errorf("Search(cafe central).Value = %q, want %q", r.Value, "café central")
	}
}

func TestBuildBucketsParallelMatchesSequential(t *testing.T) {
	items := make([]string, 0, 1000)
	for i := 0; i < 1000; i++ {
		items = append(items, "item name variant")
	}

	seqBuckets, seqVocab := buildBuckets(items, func(s string) string { return s }, tokenizer.Default, 1)
	parBuckets, parVocab := buildBuckets(items, func(s string) string { return s }, tokenizer.Default, 8)

	if len(seqBuckets) != len(parBuckets) {
		t.Fatalf("sequential produced %d buckets, parallel produced %d", len(seqBuckets), len(parBuckets))
	}
	if len(seqVocab) != len(parVocab) {
		t.Fatalf("sequential vocab size %d, parallel vocab size %d", len(seqVocab), len(parVocab))
	}
	for token, seqItems := range seqBuckets {
		if len(parBuckets[token]) != len(seqItems) {
			t.Errorf("bucket %q: sequential has %d items, parallel has %d", token, len(seqItems), len(parBuckets[token]))
		}
	}
}

package levenshtein

import (
	"testing"

	"github.com/sinanm89/fuzzysearch/edittrace"
)

func runes(s string) []rune { return []rune(s) }

func TestDistanceKnownPairs(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"", "", 0},
		{"abc", "abc", 0},
		{"abc", "", 3},
	}
	for _, c := range cases {
		got := Distance(runes(c.a), runes(c.b), Options[rune]{})
		if got != c.want {
			t.Errorf("Distance(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestDistanceSymmetric(t *testing.T) {
	a, b := runes("kitten"), runes("sitting")
	if Distance(a, b, Options[rune]{}) != Distance(b, a, Options[rune]{}) {
		t.Fatalf("Distance is not symmetric for unit costs")
	}
}

func TestRatioSelfIsOne(t *testing.T) {
	for _, s := range []string{"", "a", "hello world"} {
		r := Ratio(runes(s), runes(s), Options[rune]{})
		if r != 1 {
			t.Errorf("Ratio(%q, %q) = %v, want 1", s, s, r)
		}
	}
}

func TestSubsequenceDistanceFindsBestWindow(t *testing.T) {
	input := runes("kitten")
	pattern := runes("the kitten sat")
	d := SubsequenceDistance(input, pattern, Options[rune]{})
	if d != 0 {
		t.Fatalf("SubsequenceDistance = %d, want 0 (exact substring present)", d)
	}
}

func TestIsMatchDefaultCap(t *testing.T) {
	input := runes("kitten")
	if !IsMatch(input, runes("a kitten here"), Options[rune]{}) {
		t.Fatalf("expected exact substring to match under default cap")
	}
	if IsMatch(input, runes("zzzzzzzzzzzz"), Options[rune]{}) {
		t.Fatalf("expected unrelated text not to match under default cap")
	}
}

func TestFindMatchLocatesSubstring(t *testing.T) {
	input := runes("kitten")
	pattern := runes("the kitten sat on the mat")
	m, ok := FindMatch(input, pattern, Options[rune]{}.WithMaxDistance(1))
	if !ok {
		t.Fatalf("expected a match")
	}
	if m.Index != 4 || m.Length != 6 {
		t.Fatalf("FindMatch = %+v, want Index=4 Length=6", m)
	}
}

func TestFullMatchWholePattern(t *testing.T) {
	m := FullMatch(runes("kitten"), runes("sitting"), Options[rune]{}.WithMaxDistance(3))
	if !m.Success || m.Distance != 3 {
		t.Fatalf("FullMatch = %+v, want Success with Distance 3", m)
	}
}

func TestCountAgreesWithMatchesCanonicalArgOrder(t *testing.T) {
	input := runes("cat")
	pattern := runes("the cat sat with a bat near a hat")
	opts := Options[rune]{}.WithCosts(edittrace.Costs{Delete: 2, Insert: 3, Substitute: 4}).WithMaxDistance(1)

	n := Count(input, pattern, opts)
	all := Matches(input, pattern, opts).All()
	if n != len(all) {
		t.Fatalf("Count = %d, len(Matches) = %d; canonical entry point disagreed with itself", n, len(all))
	}
}

func TestMatchCollectionAccessors(t *testing.T) {
	input := runes("cat")
	pattern := runes("the cat sat with a bat near a hat")
	mc := Matches(input, pattern, Options[rune]{}.WithMaxDistance(1))
	if mc.Len() == 0 {
		t.Fatalf("expected at least one match")
	}
	if _, err := mc.At(mc.Len()); err != ErrOutOfRange {
		t.Fatalf("At(Len()) = %v, want ErrOutOfRange", err)
	}
	dst := make([]Match, mc.Len())
	if err := mc.CopyTo(dst, 0); err != nil {
		t.Fatalf("CopyTo: %v", err)
	}
	if err := mc.CopyTo(make([]Match, 0), 0); err != ErrInsufficientDestination {
		t.Fatalf("CopyTo into undersized slice = %v, want ErrInsufficientDestination", err)
	}
}

func TestEnumerateMatchesMatchesCollection(t *testing.T) {
	input := runes("cat")
	pattern := runes("the cat sat with a bat near a hat")
	opts := Options[rune]{}.WithMaxDistance(1)

	it := EnumerateMatches(input, pattern, opts)
	var viaIter []Match
	for {
		m, ok := it.Next()
		if !ok {
			break
		}
		viaIter = append(viaIter, m)
	}

	viaCollection := Matches(input, pattern, opts).All()
	if len(viaIter) != len(viaCollection) {
		t.Fatalf("iterator produced %d matches, collection produced %d", len(viaIter), len(viaCollection))
	}
	for i := range viaIter {
		if viaIter[i] != viaCollection[i] {
			t.Errorf("match %d differs: iterator=%+v collection=%+v", i, viaIter[i], viaCollection[i])
		}
	}
}

func TestGetBufferSize(t *testing.T) {
	if got := GetBufferSize(10); got != 66 {
		t.Fatalf("GetBufferSize(10) = %d, want 66", got)
	}
}

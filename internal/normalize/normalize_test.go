package normalize

import "testing"

func TestFoldKnownAccents(t *testing.T) {
	cases := []struct{ in, want string }{
		{"café", "cafe"},
		{"İstanbul", "Istanbul"},
		{"naïve", "naive"},
		{"Müller", "Muller"},
		{"plain", "plain"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Fold(c.in); got != c.want {
			t.Errorf("Fold(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFoldPreservesNonLatin(t *testing.T) {
	in := "東京"
	if got := Fold(in); got != in {
		t.Errorf("Fold(%q) = %q, want unchanged", in, got)
	}
}

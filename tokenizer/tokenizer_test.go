package tokenizer

import (
	"reflect"
	"testing"
)

func TestDefaultTokenizer(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Hello, world! This is a test...", []string{"Hello", "world", "This", "is", "a", "test"}},
		{"Hello, world! Test...", []string{"Hello", "world", "Test"}},
		{"", nil},
		{"   ", []string{}},
		{"single", []string{"single"}},
	}
	for _, c := range cases {
		got := Default.Tokenize(c.in)
		if len(got) == 0 && len(c.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Tokenize(%q) = %#v, want %#v", c.in, got, c.want)
		}
	}
}

func TestFuncAdapter(t *testing.T) {
	tok := Func(func(input string) []string { return []string{input} })
	got := tok.Tokenize("unsplit")
	if len(got) != 1 || got[0] != "unsplit" {
		t.Fatalf("Func adapter = %#v", got)
	}
}

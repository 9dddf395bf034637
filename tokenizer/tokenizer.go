// Package tokenizer implements the tokenize capability: splitting a
// name into the pieces an inverted index buckets on. The
// default tokenizer is a compiled-once, process-wide singleton, in the
// same spirit as sinanm89-ditong's internal/normalizer package-level
// regular expressions.
package tokenizer

import (
	"regexp"

	"github.com/sinanm89/fuzzysearch/internal/config"
)

// Tokenizer splits input into a sequence of tokens.
type Tokenizer interface {
	Tokenize(input string) []string
}

// Func adapts a plain function to the Tokenizer interface.
type Func func(input string) []string

// Tokenize implements Tokenizer.
func (f Func) Tokenize(input string) []string { return f(input) }

// nonWordRun is compiled from config.DefaultTokenizerPattern(), so a
// fuzzysearch.toml overlay can widen or narrow what counts as a word
// character without callers recompiling against a different pattern.
var nonWordRun = regexp.MustCompile(config.DefaultTokenizerPattern())

type wordTokenizer struct{}

// Tokenize splits input on runs of non-word characters and discards
// empty pieces, preserving the original case of each token:
// "Hello, world! Test..." -> ["Hello", "world", "Test"].
func (wordTokenizer) Tokenize(input string) []string {
	pieces := nonWordRun.Split(input, -1)
	out := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Default is the process-wide non-word-run tokenizer used when a
// caller does not supply one of their own.
var Default Tokenizer = wordTokenizer{}

// Package config holds the library-wide tunable defaults: the
// Levenshtein engine's default edit costs, the default match ratio
// IsMatch/IsFullMatch fall back to when a caller gives no
// MaxDistance, and the tokenizer's default non-word pattern.
//
// Every tunable has a hardcoded fallback, so the zero-configuration
// path always works. Callers that want to override a fallback drop a
// fuzzysearch.toml in the working directory (or a couple of directories
// up), or next to the executable (or a couple of directories up from
// it); Load walks the same candidate-path list
// sinanm89-ditong's config.Load walked for config.json, swapped to
// BurntSushi/toml since this module has no JSON shape to preserve.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/sinanm89/fuzzysearch/internal/bufpool"
)

// File is the parsed shape of an optional fuzzysearch.toml overlay.
// Every field is optional; a field absent from the file keeps its
// hardcoded fallback.
type File struct {
	Defaults Defaults `toml:"defaults"`
}

// Defaults holds the overridable tunables. Costs are expressed as
// edit-cost fields rather than importing edittrace.Costs directly, so
// this package never depends on the engine it configures.
type Defaults struct {
	InsertCost     *int     `toml:"insert_cost"`
	DeleteCost     *int     `toml:"delete_cost"`
	SubstituteCost *int     `toml:"substitute_cost"`
	MatchRatio     *float64 `toml:"match_ratio"`
	TokenizerRegex *string  `toml:"tokenizer_regex"`
}

// Costs mirrors edittrace.Costs's shape without importing it.
type Costs struct {
	Insert, Delete, Substitute int
}

const (
	fallbackInsertCost     = 1
	fallbackDeleteCost     = 1
	fallbackSubstituteCost = 1
	fallbackMatchRatio     = 0.25
	fallbackTokenizerRegex = `[^\p{L}\p{N}_]+`
	fallbackStackBudget    = bufpool.StackBudget
)

var loaded *File

// Load reads fuzzysearch.toml from a handful of candidate locations
// (cwd, a couple of parent directories, and alongside the running
// executable) and caches the result. Returns the hardcoded fallbacks
// unchanged when no overlay file is found or it fails to parse.
func Load() *File {
	if loaded != nil {
		return loaded
	}

	paths := []string{
		"fuzzysearch.toml",
		"../fuzzysearch.toml",
		"../../fuzzysearch.toml",
	}
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(dir, "fuzzysearch.toml"),
			filepath.Join(dir, "..", "fuzzysearch.toml"),
			filepath.Join(dir, "..", "..", "fuzzysearch.toml"),
		)
	}

	for _, path := range paths {
		var f File
		if _, err := toml.DecodeFile(path, &f); err == nil {
			loaded = &f
			return loaded
		}
	}

	loaded = &File{}
	return loaded
}

// DefaultCosts returns the engine's default edit-cost triple, overlaid
// by fuzzysearch.toml's [defaults] insert_cost/delete_cost/substitute_cost
// if present.
func DefaultCosts() Costs {
	d := Load().Defaults
	c := Costs{Insert: fallbackInsertCost, Delete: fallbackDeleteCost, Substitute: fallbackSubstituteCost}
	if d.InsertCost != nil {
		c.Insert = *d.InsertCost
	}
	if d.DeleteCost != nil {
		c.Delete = *d.DeleteCost
	}
	if d.SubstituteCost != nil {
		c.Substitute = *d.SubstituteCost
	}
	return c
}

// DefaultMatchRatio is the fraction of |input| IsMatch/IsFullMatch cap
// the edit distance at when a caller gives no MaxDistance, overlaid by
// fuzzysearch.toml's [defaults] match_ratio if present.
func DefaultMatchRatio() float64 {
	if r := Load().Defaults.MatchRatio; r != nil {
		return *r
	}
	return fallbackMatchRatio
}

// DefaultTokenizerPattern is the regular expression tokenizer.Default
// splits on, overlaid by fuzzysearch.toml's [defaults] tokenizer_regex
// if present.
func DefaultTokenizerPattern() string {
	if p := Load().Defaults.TokenizerRegex; p != nil {
		return *p
	}
	return fallbackTokenizerRegex
}

// StackBudget reports bufpool's scratch-row stack budget. It is not
// itself overridable: bufpool.IntRow/TraceRow front their pool with a
// fixed-size array ([bufpool.StackBudget]T), and Go array lengths must
// be compile-time constants, so there is no runtime value to overlay
// here. This accessor lets the documented tunable and bufpool's actual
// constant be compared by a caller without two sources of truth
// drifting apart silently.
func StackBudget() int { return fallbackStackBudget }

package search

import (
	"sync"

	"github.com/sinanm89/fuzzysearch/tokenizer"
)

// parallelThreshold is the item count past which buildBuckets switches
// from a sequential loop to the worker-pool path. Below it the
// goroutine and channel setup costs more than it saves.
const parallelThreshold = 512

type tokenJob[T any] struct {
	item T
}

type tokenResult[T any] struct {
	item   T
	tokens []string
}

// buildBuckets tokenizes every item's name and returns the frozen
// token -> items mapping plus the flat vocabulary the spell checker is
// built over. Buckets have set semantics: an item is added to a bucket
// only if no equal item is already in it, so a bucket never lists the
// same item twice, even when a name repeats a token or items holds
// duplicates.
//
// Construction is grounded on sinanm89-ditong's
// internal/builder/parallel.go: a channel of jobs drained by a fixed
// worker pool, with a sync.WaitGroup gating completion. This
// implementation replaces that file's mutex-guarded shared map with a
// single-consumer results channel, so only one goroutine ever writes
// to buckets/vocabSet and no lock is needed on the hot path.
func buildBuckets[T comparable](items []T, nameOf func(T) string, tok tokenizer.Tokenizer, workers int) (map[string][]T, []string) {
	buckets := make(map[string][]T)
	vocabSet := make(map[string]bool)
	inBucket := make(map[string]map[T]bool)

	addTokens := func(item T, tokens []string) {
		for _, tkn := range tokens {
			if inBucket[tkn] == nil {
				inBucket[tkn] = make(map[T]bool)
			}
			if inBucket[tkn][item] {
				continue
			}
			inBucket[tkn][item] = true
			buckets[tkn] = append(buckets[tkn], item)
			vocabSet[tkn] = true
		}
	}

	if workers <= 1 || len(items) < parallelThreshold {
		for _, item := range items {
			addTokens(item, tok.Tokenize(nameOf(item)))
		}
	} else {
		jobs := make(chan tokenJob[T], len(items))
		results := make(chan tokenResult[T], len(items))
		var wg sync.WaitGroup

		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for job := range jobs {
					results <- tokenResult[T]{item: job.item, tokens: tok.Tokenize(nameOf(job.item))}
				}
			}()
		}

		for _, item := range items {
			jobs <- tokenJob[T]{item: item}
		}
		close(jobs)

		go func() {
			wg.Wait()
			close(results)
		}()

		for r := range results {
			addTokens(r.item, r.tokens)
		}
	}

	vocab := make([]string, 0, len(vocabSet))
	for t := range vocabSet {
		vocab = append(vocab, t)
	}
	return buckets, vocab
}

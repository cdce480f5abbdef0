package wordpiece

import (
	"fmt"
	"strings"
)

// DefaultSpecialTokens is the training special-token set used when none is
// supplied. The unknown token comes first so it always lands on id 0.
var DefaultSpecialTokens = []string{"[UNK]", "[CLS]", "[SEP]", "[PAD]", "[MASK]"}

// TrainConfig controls vocabulary derivation.
type TrainConfig struct {
	// VocabSize bounds the total vocabulary, special tokens included.
	VocabSize int
	// MinFrequency is the lowest corpus frequency a learned symbol may have.
	MinFrequency int
	// SpecialTokens occupy ids 0..k-1 in declared order. Defaults to
	// DefaultSpecialTokens when nil.
	SpecialTokens []string
	// CaseSensitive disables lowercasing during pre-tokenization. Must match
	// the tokenizer the vocabulary will be used with.
	CaseSensitive bool
	// ContinuationPrefix defaults to DefaultContinuationPrefix.
	ContinuationPrefix string
}

type symbolPair struct {
	a, b string
}

// Train derives a token→id mapping from a corpus by iterative pairwise
// merging. Identical inputs always produce an identical mapping: words are
// processed in first-appearance order and pair selection breaks frequency
// ties on the lexicographically smallest concatenation.
func Train(texts []string, cfg TrainConfig) (map[string]int, error) {
	specials := cfg.SpecialTokens
	if specials == nil {
		specials = DefaultSpecialTokens
	}
	prefix := cfg.ContinuationPrefix
	if prefix == "" {
		prefix = DefaultContinuationPrefix
	}
	if cfg.MinFrequency < 1 {
		return nil, fmt.Errorf("%w: min_frequency must be >= 1, got %d", ErrInvalidParams, cfg.MinFrequency)
	}
	if cfg.VocabSize < len(specials) {
		return nil, fmt.Errorf("%w: vocab_size %d cannot hold %d special tokens", ErrInvalidParams, cfg.VocabSize, len(specials))
	}
	seen := make(map[string]bool, len(specials))
	for _, tok := range specials {
		if seen[tok] {
			return nil, fmt.Errorf("%w: duplicate special token %q", ErrInvalidParams, tok)
		}
		seen[tok] = true
	}

	words, freqs := countWords(texts, cfg.CaseSensitive)
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: empty corpus", ErrInvalidParams)
	}

	// One symbol per character to start: first unmarked, rest marked.
	seqs := make([][]string, len(words))
	for i, word := range words {
		runes := []rune(word)
		seq := make([]string, len(runes))
		for j, r := range runes {
			if j == 0 {
				seq[j] = string(r)
			} else {
				seq[j] = prefix + string(r)
			}
		}
		seqs[i] = seq
	}

	// Base alphabet in first-seen order, filtered by frequency.
	symbolFreq := make(map[string]int)
	var learned []string
	inLearned := make(map[string]bool)
	for i, seq := range seqs {
		for _, sym := range seq {
			if symbolFreq[sym] == 0 {
				learned = append(learned, sym)
			}
			symbolFreq[sym] += freqs[i]
		}
	}
	kept := learned[:0]
	for _, sym := range learned {
		if symbolFreq[sym] >= cfg.MinFrequency {
			kept = append(kept, sym)
		}
	}
	learned = kept
	for _, sym := range learned {
		inLearned[sym] = true
	}

	budget := cfg.VocabSize - len(specials)
	for len(learned) < budget {
		pair, freq := bestPair(seqs, freqs)
		if freq < cfg.MinFrequency {
			break
		}
		merged := pair.a + strings.TrimPrefix(pair.b, prefix)
		for i := range seqs {
			seqs[i] = mergeSymbols(seqs[i], pair, merged)
		}
		if !inLearned[merged] {
			learned = append(learned, merged)
			inLearned[merged] = true
		}
	}
	if len(learned) > budget {
		learned = learned[:budget]
	}

	vocab := make(map[string]int, len(specials)+len(learned))
	next := 0
	for _, tok := range specials {
		vocab[tok] = next
		next++
	}
	for _, sym := range learned {
		if _, ok := vocab[sym]; ok {
			continue
		}
		vocab[sym] = next
		next++
	}
	return vocab, nil
}

// countWords pre-tokenizes the corpus exactly as the Tokenizer does and
// returns distinct words in first-appearance order with their frequencies.
func countWords(texts []string, caseSensitive bool) ([]string, []int) {
	var words []string
	var freqs []int
	index := make(map[string]int)
	for _, text := range texts {
		for _, word := range strings.Fields(text) {
			if !caseSensitive {
				word = strings.ToLower(word)
			}
			if i, ok := index[word]; ok {
				freqs[i]++
				continue
			}
			index[word] = len(words)
			words = append(words, word)
			freqs = append(freqs, 1)
		}
	}
	return words, freqs
}

// bestPair returns the adjacent symbol pair with the highest aggregate
// frequency. Ties break on the smaller concatenation, then the smaller
// first symbol, so the choice is independent of map iteration order.
func bestPair(seqs [][]string, freqs []int) (symbolPair, int) {
	counts := make(map[symbolPair]int)
	for i, seq := range seqs {
		for j := 0; j+1 < len(seq); j++ {
			counts[symbolPair{a: seq[j], b: seq[j+1]}] += freqs[i]
		}
	}
	var best symbolPair
	bestFreq := 0
	for pair, freq := range counts {
		if freq < bestFreq {
			continue
		}
		if freq == bestFreq {
			cand, cur := pair.a+pair.b, best.a+best.b
			if cand > cur || (cand == cur && pair.a >= best.a) {
				continue
			}
		}
		best = pair
		bestFreq = freq
	}
	return best, bestFreq
}

// mergeSymbols replaces every adjacent occurrence of pair with merged.
func mergeSymbols(seq []string, pair symbolPair, merged string) []string {
	found := false
	for j := 0; j+1 < len(seq); j++ {
		if seq[j] == pair.a && seq[j+1] == pair.b {
			found = true
			break
		}
	}
	if !found {
		return seq
	}
	out := make([]string, 0, len(seq))
	for j := 0; j < len(seq); {
		if j+1 < len(seq) && seq[j] == pair.a && seq[j+1] == pair.b {
			out = append(out, merged)
			j += 2
			continue
		}
		out = append(out, seq[j])
		j++
	}
	return out
}

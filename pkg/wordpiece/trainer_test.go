package wordpiece

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestTrainInvalidParams(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		texts []string
		cfg   TrainConfig
	}{
		{
			name:  "vocab-size-below-specials",
			texts: []string{"go home"},
			cfg:   TrainConfig{VocabSize: 3, MinFrequency: 1},
		},
		{
			name:  "zero-min-frequency",
			texts: []string{"go home"},
			cfg:   TrainConfig{VocabSize: 30, MinFrequency: 0},
		},
		{
			name:  "empty-corpus",
			texts: nil,
			cfg:   TrainConfig{VocabSize: 30, MinFrequency: 1},
		},
		{
			name:  "whitespace-only-corpus",
			texts: []string{"   ", "\t\n"},
			cfg:   TrainConfig{VocabSize: 30, MinFrequency: 1},
		},
		{
			name:  "duplicate-specials",
			texts: []string{"go home"},
			cfg:   TrainConfig{VocabSize: 30, MinFrequency: 1, SpecialTokens: []string{"[UNK]", "[UNK]"}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Train(tc.texts, tc.cfg)
			if !errors.Is(err, ErrInvalidParams) {
				t.Fatalf("expected ErrInvalidParams, got %v", err)
			}
		})
	}
}

func TestTrainSpecialTokensGetLowestIDs(t *testing.T) {
	t.Parallel()

	vocab, err := Train([]string{"go go home"}, TrainConfig{VocabSize: 40, MinFrequency: 1})
	if err != nil {
		t.Fatalf("train: %v", err)
	}
	for i, tok := range DefaultSpecialTokens {
		if vocab[tok] != i {
			t.Fatalf("special %q: got id %d want %d", tok, vocab[tok], i)
		}
	}

	custom := []string{"<unk>", "<s>", "</s>"}
	vocab, err = Train([]string{"go go home"}, TrainConfig{
		VocabSize:     40,
		MinFrequency:  1,
		SpecialTokens: custom,
	})
	if err != nil {
		t.Fatalf("train: %v", err)
	}
	for i, tok := range custom {
		if vocab[tok] != i {
			t.Fatalf("custom special %q: got id %d want %d", tok, vocab[tok], i)
		}
	}
}

func TestTrainDeterministic(t *testing.T) {
	t.Parallel()

	texts := []string{
		"the running fox jumped over the sleeping dog",
		"running and jumping and sleeping",
		"the dog kept running",
	}
	cfg := TrainConfig{VocabSize: 60, MinFrequency: 1}
	first, err := Train(texts, cfg)
	if err != nil {
		t.Fatalf("train: %v", err)
	}
	second, err := Train(texts, cfg)
	if err != nil {
		t.Fatalf("train: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("training is not deterministic:\nfirst:  %v\nsecond: %v", first, second)
	}
}

func TestTrainVocabSizeBound(t *testing.T) {
	t.Parallel()

	texts := []string{"running running running running running"}
	for _, size := range []int{5, 8, 12, 16, 64} {
		vocab, err := Train(texts, TrainConfig{VocabSize: size, MinFrequency: 1})
		if err != nil {
			t.Fatalf("train size %d: %v", size, err)
		}
		if len(vocab) > size {
			t.Fatalf("vocab size %d exceeds requested %d", len(vocab), size)
		}
	}
}

func TestTrainMergesRepeatedWord(t *testing.T) {
	t.Parallel()

	// Merging proceeds until the whole word is a single symbol, so with a
	// generous budget the vocabulary covers "running" and its suffix pieces.
	texts := []string{"running running running", "running running"}
	vocab, err := Train(texts, TrainConfig{VocabSize: 32, MinFrequency: 1})
	if err != nil {
		t.Fatalf("train: %v", err)
	}
	for _, want := range []string{"r", "##u", "##n", "##i", "##g", "##ning", "running"} {
		if _, ok := vocab[want]; !ok {
			t.Fatalf("expected %q in trained vocabulary, got %v", want, vocab)
		}
	}

	tok, err := New(vocab, Options{})
	if err != nil {
		t.Fatalf("tokenizer over trained vocab: %v", err)
	}
	got := tok.Tokenize("running")
	if !reflect.DeepEqual(got, []string{"running"}) {
		t.Fatalf("Tokenize(running): got %v", got)
	}
}

func TestTrainMinFrequencyFiltersRareSymbols(t *testing.T) {
	t.Parallel()

	// "aaa" occurs twice, "b" once: with min_frequency 2 nothing derived
	// from "b" may enter the vocabulary.
	vocab, err := Train([]string{"aaa b aaa"}, TrainConfig{VocabSize: 30, MinFrequency: 2})
	if err != nil {
		t.Fatalf("train: %v", err)
	}
	for tok := range vocab {
		if strings.Contains(tok, "b") {
			t.Fatalf("rare symbol %q leaked into vocabulary", tok)
		}
	}
	for _, want := range []string{"a", "##a", "aaa"} {
		if _, ok := vocab[want]; !ok {
			t.Fatalf("expected %q in vocabulary, got %v", want, vocab)
		}
	}
}

func TestTrainLowercasesByDefault(t *testing.T) {
	t.Parallel()

	vocab, err := Train([]string{"GO Go gO go"}, TrainConfig{VocabSize: 30, MinFrequency: 1})
	if err != nil {
		t.Fatalf("train: %v", err)
	}
	if _, ok := vocab["go"]; !ok {
		t.Fatalf("expected lowercased merge product, got %v", vocab)
	}
	for tok := range vocab {
		if tok != strings.ToLower(tok) && !strings.HasPrefix(tok, "[") {
			t.Fatalf("unexpected cased token %q", tok)
		}
	}
}

func TestTrainedVocabFeedsTokenizer(t *testing.T) {
	t.Parallel()

	texts := []string{
		"wanted wanted wanted to go home",
		"to go home to go home",
	}
	vocab, err := Train(texts, TrainConfig{VocabSize: 64, MinFrequency: 1})
	if err != nil {
		t.Fatalf("train: %v", err)
	}
	tok, err := New(vocab, Options{})
	if err != nil {
		t.Fatalf("new tokenizer: %v", err)
	}
	ids, err := tok.Encode("wanted to go home")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := tok.Decode(ids)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != "wanted to go home" {
		t.Fatalf("round trip over trained vocab: got %q", got)
	}
}

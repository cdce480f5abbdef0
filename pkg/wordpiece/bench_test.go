package wordpiece

import (
	"math/rand"
	"strings"
	"testing"
)

func benchTokenizer(b *testing.B) *Tokenizer {
	b.Helper()
	tokens := map[string]int{
		"[UNK]": 0, "[CLS]": 1, "[SEP]": 2, "[PAD]": 3, "[MASK]": 4,
	}
	subwords := []string{
		"the", "to", "of", "and", "in", "re", "un",
		"##s", "##ing", "##ed", "##ly", "##er", "##est",
		"##a", "##e", "##i", "##o", "##u", "##t", "##n", "##r", "##l",
		"##d", "##m", "##p", "##c", "##b", "##f", "##g", "##h", "##k",
		"##w", "##y", "##v", "##x", "##z", "##j", "##q",
		"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
		"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	}
	for i, sw := range subwords {
		tokens[sw] = i + 5
	}
	tok, err := New(tokens, Options{})
	if err != nil {
		b.Fatalf("new tokenizer: %v", err)
	}
	return tok
}

// benchText generates a pseudo-random corpus of n lowercase words with a
// fixed seed so runs are comparable.
func benchText(n int) string {
	rng := rand.New(rand.NewSource(42))
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		wordLen := 2 + rng.Intn(9)
		for j := 0; j < wordLen; j++ {
			b.WriteByte(byte('a' + rng.Intn(26)))
		}
	}
	return b.String()
}

func benchmarkTokenize(b *testing.B, words int) {
	tok := benchTokenizer(b)
	text := benchText(words)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if got := tok.Tokenize(text); len(got) == 0 {
			b.Fatal("expected tokens")
		}
	}
}

func BenchmarkTokenize10(b *testing.B)    { benchmarkTokenize(b, 10) }
func BenchmarkTokenize100(b *testing.B)   { benchmarkTokenize(b, 100) }
func BenchmarkTokenize1000(b *testing.B)  { benchmarkTokenize(b, 1000) }
func BenchmarkTokenize10000(b *testing.B) { benchmarkTokenize(b, 10000) }

func BenchmarkEncodeDecode(b *testing.B) {
	tok := benchTokenizer(b)
	text := benchText(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ids, err := tok.Encode(text)
		if err != nil {
			b.Fatalf("encode: %v", err)
		}
		if _, err := tok.Decode(ids); err != nil {
			b.Fatalf("decode: %v", err)
		}
	}
}

func BenchmarkTrain(b *testing.B) {
	texts := make([]string, 50)
	for i := range texts {
		texts[i] = benchText(100)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Train(texts, TrainConfig{VocabSize: 500, MinFrequency: 2}); err != nil {
			b.Fatalf("train: %v", err)
		}
	}
}

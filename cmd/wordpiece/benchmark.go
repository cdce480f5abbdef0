package main

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/wordpiece-go/wordpiece/pkg/wordpiece"
)

func benchmarkCmd() *cli.Command {
	var (
		warmupRuns int64
		benchRuns  int64
		seed       int64
	)

	flags := append(vocabFlags(), loggingFlags()...)
	flags = append(flags,
		&cli.Int64Flag{
			Name:        "warmup",
			Usage:       "number of warmup runs per size",
			Value:       1,
			Destination: &warmupRuns,
		},
		&cli.Int64Flag{
			Name:        "runs",
			Usage:       "number of timed runs per size",
			Value:       5,
			Destination: &benchRuns,
		},
		&cli.Int64Flag{
			Name:        "seed",
			Usage:       "corpus generator seed",
			Value:       42,
			Destination: &seed,
		},
	)

	return &cli.Command{
		Name:  "benchmark",
		Usage: "Measure tokenization throughput over generated corpora",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			applyVocabConfig(cmd, cfg)
			log := newLogger()

			var tok *wordpiece.Tokenizer
			if vocabPath != "" {
				tok, err = loadTokenizer()
			} else {
				tok, err = wordpiece.New(benchmarkVocab(), wordpiece.Options{})
			}
			if err != nil {
				return err
			}
			log.Info("benchmark starting", "vocab_size", tok.Vocab().Size(), "runs", benchRuns)

			fmt.Printf("%10s %12s %14s %12s\n", "words", "tokens", "avg", "words/s")
			for _, words := range []int{10, 100, 1000, 10000} {
				text := generateCorpus(words, seed)
				for i := int64(0); i < warmupRuns; i++ {
					tok.Tokenize(text)
				}
				var total time.Duration
				tokens := 0
				for i := int64(0); i < benchRuns; i++ {
					start := time.Now()
					out := tok.Tokenize(text)
					total += time.Since(start)
					tokens = len(out)
				}
				avg := total / time.Duration(benchRuns)
				perSec := float64(words) / avg.Seconds()
				fmt.Printf("%10d %12d %14s %12.0f\n", words, tokens, avg.Round(time.Microsecond), perSec)
			}
			return nil
		},
	}
}

// generateCorpus builds a deterministic pseudo-random lowercase corpus.
func generateCorpus(words int, seed int64) string {
	rng := rand.New(rand.NewSource(seed))
	var b strings.Builder
	for i := 0; i < words; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		n := 2 + rng.Intn(9)
		for j := 0; j < n; j++ {
			b.WriteByte(byte('a' + rng.Intn(26)))
		}
	}
	return b.String()
}

// benchmarkVocab covers single characters and common English subwords so the
// generated corpus segments without constant unknown fallbacks.
func benchmarkVocab() map[string]int {
	vocab := map[string]int{
		"[UNK]": 0, "[CLS]": 1, "[SEP]": 2, "[PAD]": 3, "[MASK]": 4,
	}
	next := len(vocab)
	for c := 'a'; c <= 'z'; c++ {
		vocab[string(c)] = next
		vocab["##"+string(c)] = next + 1
		next += 2
	}
	for _, sw := range []string{
		"the", "to", "of", "and", "in",
		"##ing", "##ed", "##ly", "##er", "##est",
	} {
		vocab[sw] = next
		next++
	}
	return vocab
}

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/wordpiece-go/wordpiece/internal/vocabio"
	"github.com/wordpiece-go/wordpiece/pkg/wordpiece"
)

func trainCmd() *cli.Command {
	var (
		output       string
		vocabSize    int64
		minFrequency int64
		specials     []string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "path to write the trained vocabulary (.json)",
			Value:       "vocab.json",
			Destination: &output,
		},
		&cli.Int64Flag{
			Name:        "vocab-size",
			Usage:       "maximum vocabulary size, special tokens included",
			Value:       30000,
			Destination: &vocabSize,
		},
		&cli.Int64Flag{
			Name:        "min-frequency",
			Usage:       "minimum corpus frequency for learned symbols",
			Value:       2,
			Destination: &minFrequency,
		},
		&cli.StringSliceFlag{
			Name:        "special",
			Usage:       "special token (repeatable, ordered; defaults to [UNK] [CLS] [SEP] [PAD] [MASK])",
			Destination: &specials,
		},
		&cli.BoolFlag{
			Name:        "case-sensitive",
			Usage:       "disable lowercasing during pre-tokenization",
			Destination: &caseSensitive,
		},
	}
	flags = append(flags, loggingFlags()...)

	return &cli.Command{
		Name:      "train",
		Usage:     "Derive a vocabulary from text files (one text per line)",
		ArgsUsage: "FILE [FILE...]",
		Flags:     flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			applyTrainConfig(cmd, cfg, &vocabSize, &minFrequency, &specials)
			log := newLogger()

			if cmd.Args().Len() == 0 {
				return fmt.Errorf("no input files given")
			}
			var texts []string
			for _, path := range cmd.Args().Slice() {
				lines, err := readLines(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}
				texts = append(texts, lines...)
			}
			log.Info("corpus loaded", "files", cmd.Args().Len(), "texts", len(texts))

			start := time.Now()
			vocab, err := wordpiece.Train(texts, wordpiece.TrainConfig{
				VocabSize:     int(vocabSize),
				MinFrequency:  int(minFrequency),
				SpecialTokens: specials,
				CaseSensitive: caseSensitive,
			})
			if err != nil {
				return err
			}
			log.Info("training finished",
				"vocab_size", len(vocab),
				"duration", time.Since(start).Round(time.Millisecond))

			if err := vocabio.SaveJSON(output, vocab); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			log.Info("vocabulary written", "path", output)
			return nil
		},
	}
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

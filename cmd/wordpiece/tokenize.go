package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"
)

// inputText joins positional args, falling back to stdin when none are given.
func inputText(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() > 0 {
		return strings.Join(cmd.Args().Slice(), " "), nil
	}
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func tokenizeCmd() *cli.Command {
	flags := append(vocabFlags(), loggingFlags()...)
	return &cli.Command{
		Name:      "tokenize",
		Usage:     "Segment text into subword tokens",
		ArgsUsage: "[TEXT...]",
		Flags:     flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			applyVocabConfig(cmd, cfg)
			tok, err := loadTokenizer()
			if err != nil {
				return err
			}
			text, err := inputText(cmd)
			if err != nil {
				return err
			}
			for _, t := range tok.Tokenize(text) {
				fmt.Println(t)
			}
			return nil
		},
	}
}

func encodeCmd() *cli.Command {
	flags := append(vocabFlags(), loggingFlags()...)
	return &cli.Command{
		Name:      "encode",
		Usage:     "Convert text to token ids",
		ArgsUsage: "[TEXT...]",
		Flags:     flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			applyVocabConfig(cmd, cfg)
			tok, err := loadTokenizer()
			if err != nil {
				return err
			}
			text, err := inputText(cmd)
			if err != nil {
				return err
			}
			ids, err := tok.Encode(text)
			if err != nil {
				return err
			}
			parts := make([]string, len(ids))
			for i, id := range ids {
				parts[i] = strconv.Itoa(id)
			}
			fmt.Println(strings.Join(parts, " "))
			return nil
		},
	}
}

func decodeCmd() *cli.Command {
	flags := append(vocabFlags(), loggingFlags()...)
	return &cli.Command{
		Name:      "decode",
		Usage:     "Reconstruct text from token ids",
		ArgsUsage: "ID [ID...]",
		Flags:     flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			applyVocabConfig(cmd, cfg)
			tok, err := loadTokenizer()
			if err != nil {
				return err
			}
			raw := cmd.Args().Slice()
			if len(raw) == 0 {
				stdin, err := io.ReadAll(os.Stdin)
				if err != nil {
					return err
				}
				raw = strings.Fields(string(stdin))
			}
			ids := make([]int, 0, len(raw))
			for _, s := range raw {
				id, err := strconv.Atoi(s)
				if err != nil {
					return fmt.Errorf("invalid token id %q", s)
				}
				ids = append(ids, id)
			}
			text, err := tok.Decode(ids)
			if err != nil {
				return err
			}
			fmt.Println(text)
			return nil
		},
	}
}

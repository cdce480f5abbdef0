package main

import (
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/wordpiece-go/wordpiece/internal/logger"
	"github.com/wordpiece-go/wordpiece/internal/vocabio"
	"github.com/wordpiece-go/wordpiece/pkg/wordpiece"
)

var (
	vocabPath     string
	caseSensitive bool
	logLevel      string
	logFormat     string
	debug         bool
)

func vocabFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "vocab",
			Aliases:     []string{"v"},
			Usage:       "path to vocabulary file (.json mapping or vocab.txt)",
			Destination: &vocabPath,
		},
		&cli.BoolFlag{
			Name:        "case-sensitive",
			Usage:       "disable lowercasing before segmentation",
			Destination: &caseSensitive,
		},
	}
}

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, json, text)",
			Value:       "pretty",
			Destination: &logFormat,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "enable debug logging (shorthand for --log-level=debug)",
			Destination: &debug,
		},
	}
}

func newLogger() logger.Logger {
	level := logger.ParseLevel(logLevel)
	if debug {
		level = slog.LevelDebug
	}
	switch logFormat {
	case "json":
		return logger.JSON(os.Stderr, level)
	case "text":
		return logger.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	default:
		return logger.Pretty(os.Stderr, level)
	}
}

func loadTokenizer() (*wordpiece.Tokenizer, error) {
	tokens, err := vocabio.Load(vocabPath)
	if err != nil {
		return nil, err
	}
	return wordpiece.New(tokens, wordpiece.Options{CaseSensitive: caseSensitive})
}

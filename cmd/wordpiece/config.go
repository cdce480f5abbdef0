package main

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config represents the configuration file (~/.config/wordpiece/config.yaml).
// Scalar overrides are pointers so "not set" can be told apart from zero values.
type Config struct {
	VocabPath     string `yaml:"vocab_path"`
	CaseSensitive *bool  `yaml:"case_sensitive"`

	// Training defaults
	VocabSize     *int64   `yaml:"vocab_size"`
	MinFrequency  *int64   `yaml:"min_frequency"`
	SpecialTokens []string `yaml:"special_tokens"`

	// Output
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Server
	ServerAddress string `yaml:"server_address"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "wordpiece", "config.yaml")
}

// LoadConfig reads the config file. Returns a zero Config if the file doesn't exist.
func LoadConfig() (Config, error) {
	return loadConfigFrom(configPath())
}

func loadConfigFrom(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyVocabConfig fills vocabulary flag variables from the config file when
// the corresponding CLI flag was not explicitly set.
func applyVocabConfig(c *cli.Command, cfg Config) {
	if cfg.VocabPath != "" && !c.IsSet("vocab") {
		vocabPath = cfg.VocabPath
	}
	if cfg.CaseSensitive != nil && !c.IsSet("case-sensitive") {
		caseSensitive = *cfg.CaseSensitive
	}
	applyLoggingConfig(c, cfg)
}

func applyLoggingConfig(c *cli.Command, cfg Config) {
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		logFormat = cfg.LogFormat
	}
}

// applyTrainConfig applies training defaults from the config file.
func applyTrainConfig(c *cli.Command, cfg Config, vocabSize, minFrequency *int64, specials *[]string) {
	if cfg.VocabSize != nil && !c.IsSet("vocab-size") {
		*vocabSize = *cfg.VocabSize
	}
	if cfg.MinFrequency != nil && !c.IsSet("min-frequency") {
		*minFrequency = *cfg.MinFrequency
	}
	if len(cfg.SpecialTokens) > 0 && !c.IsSet("special") {
		*specials = cfg.SpecialTokens
	}
	if cfg.CaseSensitive != nil && !c.IsSet("case-sensitive") {
		caseSensitive = *cfg.CaseSensitive
	}
	applyLoggingConfig(c, cfg)
}

// applyServeConfig applies server defaults from the config file.
func applyServeConfig(c *cli.Command, cfg Config, addr *string) {
	applyVocabConfig(c, cfg)
	if cfg.ServerAddress != "" && !c.IsSet("addr") {
		*addr = cfg.ServerAddress
	}
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/sensorclean-cli/internal/clean"
	"github.com/KaramelBytes/sensorclean-cli/internal/textenc"
)

// Global configuration structure.
type Global struct {
	// Tokens recognized as missing data (lowercase).
	MissingTokens []string `mapstructure:"missing_tokens" yaml:"missing_tokens"`
	// Keywords that identify the header row of an export.
	HeaderKeywords []string `mapstructure:"header_keywords" yaml:"header_keywords"`
	// How many leading rows to scan for a header.
	HeaderScanDepth int `mapstructure:"header_scan_depth" yaml:"header_scan_depth"`
	// Data start row used when no header keyword matches.
	DefaultDataStart int `mapstructure:"default_data_start" yaml:"default_data_start"`
	// Max rows sampled per column during profiling (0 = unlimited).
	SampleSize int `mapstructure:"sample_size" yaml:"sample_size"`
	// Decimal digits kept on interpolated values.
	RoundDigits int `mapstructure:"round_digits" yaml:"round_digits"`
	// Columns processed in parallel when >1.
	Workers int `mapstructure:"workers" yaml:"workers"`
	// Candidate encodings tried in order when decoding input.
	Encodings []string `mapstructure:"encodings" yaml:"encodings"`
}

// PipelineOptions maps the configuration onto core pipeline options.
func (c *Global) PipelineOptions() clean.Options {
	opts := clean.DefaultOptions()
	opts.MissingTokens = c.MissingTokens
	opts.HeaderKeywords = c.HeaderKeywords
	if c.HeaderScanDepth > 0 {
		opts.HeaderScanDepth = c.HeaderScanDepth
	}
	if c.DefaultDataStart >= 0 {
		opts.DefaultDataStart = c.DefaultDataStart
	}
	opts.SampleSize = c.SampleSize
	opts.RoundDigits = c.RoundDigits
	if c.Workers > 0 {
		opts.Workers = c.Workers
	}
	return opts
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.sensorclean/config.yaml, creating the directory
// if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".sensorclean")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("SENSORCLEAN")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("missing_tokens", clean.DefaultMissingTokens())
	v.SetDefault("header_keywords", clean.DefaultHeaderKeywords())
	v.SetDefault("header_scan_depth", 10)
	v.SetDefault("default_data_start", 5)
	v.SetDefault("sample_size", 30000)
	v.SetDefault("round_digits", 3)
	v.SetDefault("workers", 1)
	v.SetDefault("encodings", textenc.DefaultCandidates())

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".sensorclean")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

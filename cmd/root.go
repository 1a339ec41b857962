package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cfgpkg "github.com/KaramelBytes/sensorclean-cli/internal/config"
)

var (
	// Global flags
	cfgFile string
	debug   bool
	// Pipeline overrides (take effect over config if set)
	flagWorkers    int
	flagSampleSize int

	// Loaded configuration and logger
	cfg    *cfgpkg.Global
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sensorclean",
	Short: "sensorclean: fill missing sensor readings with bounded interpolation",
	Long: `sensorclean repairs time-ordered sensor CSV exports by profiling each
column and filling missing numeric readings with statistically-bounded
linear interpolation, falling back to forward/backward fill or the column
median where no two anchors exist.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	err := rootCmd.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.sensorclean/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", 0, "columns processed in parallel (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagSampleSize, "sample-size", 0, "rows sampled per column for statistics (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults so cleaning still works.
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
	} else {
		cfg = c
	}

	if debug {
		l, err := zap.NewDevelopment()
		if err == nil {
			logger = l
		}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	if cfg == nil {
		return
	}
	f := rootCmd.PersistentFlags()
	if f.Changed("workers") && flagWorkers > 0 {
		cfg.Workers = flagWorkers
	}
	if f.Changed("sample-size") && flagSampleSize > 0 {
		cfg.SampleSize = flagSampleSize
	}
}

// effectiveConfig never returns nil; commands use it so a broken config
// file degrades to defaults instead of aborting.
func effectiveConfig() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	return &cfgpkg.Global{
		HeaderScanDepth:  10,
		DefaultDataStart: 5,
		SampleSize:       30000,
		RoundDigits:      3,
		Workers:          1,
	}
}

func parseDelimiter(s string) (rune, error) {
	switch s {
	case "", ",":
		return ',', nil
	case "\t", "tab":
		return '\t', nil
	case ";":
		return ';', nil
	default:
		return 0, fmt.Errorf("unsupported --delimiter: %s", s)
	}
}

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/sensorclean-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set sensorclean configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		fmt.Printf("missing_tokens: %s\n", strings.Join(c.MissingTokens, ","))
		fmt.Printf("header_keywords: %s\n", strings.Join(c.HeaderKeywords, ","))
		fmt.Printf("header_scan_depth: %d\n", c.HeaderScanDepth)
		fmt.Printf("default_data_start: %d\n", c.DefaultDataStart)
		fmt.Printf("sample_size: %d\n", c.SampleSize)
		fmt.Printf("round_digits: %d\n", c.RoundDigits)
		fmt.Printf("workers: %d\n", c.Workers)
		fmt.Printf("encodings: %s\n", strings.Join(c.Encodings, ","))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "missing_tokens":
			cfg.MissingTokens = splitList(val)
		case "header_keywords":
			cfg.HeaderKeywords = splitList(val)
		case "encodings":
			cfg.Encodings = splitList(val)
		case "header_scan_depth", "default_data_start", "sample_size", "round_digits", "workers":
			n, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("%s must be an integer: %w", key, err)
			}
			switch key {
			case "header_scan_depth":
				cfg.HeaderScanDepth = n
			case "default_data_start":
				cfg.DefaultDataStart = n
			case "sample_size":
				cfg.SampleSize = n
			case "round_digits":
				cfg.RoundDigits = n
			case "workers":
				cfg.Workers = n
			}
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Saved %s\n", key)
		return nil
	},
}

// splitList parses a comma-separated value, keeping empty entries so the
// empty string stays a valid missing token.
func splitList(val string) []string {
	parts := strings.Split(val, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/sensorclean-cli/internal/clean"
	"github.com/KaramelBytes/sensorclean-cli/internal/report"
	"github.com/KaramelBytes/sensorclean-cli/internal/tableio"
	"github.com/KaramelBytes/sensorclean-cli/internal/utils"
)

var (
	clnOutputPath  string
	clnDelimiter   string
	clnJSON        bool
	clnSampleLines int
)

var cleanCmd = &cobra.Command{
	Use:   "clean <file>",
	Short: "Interpolate missing numeric readings in a sensor CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		conf := effectiveConfig()

		delim, err := parseDelimiter(clnDelimiter)
		if err != nil {
			return err
		}

		rows, encodingUsed, err := tableio.ReadFile(path, conf.Encodings, delim)
		if err != nil {
			return err
		}

		pipe := clean.NewPipeline(conf.PipelineOptions(), logger)
		res, err := pipe.Run(rows)
		if err != nil {
			return err
		}

		out := clnOutputPath
		if out == "" {
			ext := filepath.Ext(path)
			out = strings.TrimSuffix(path, ext) + "_cleaned" + ext
		}
		if err := tableio.WriteFile(out, res.Table, delim); err != nil {
			return fmt.Errorf("write output: %w", err)
		}

		if clnJSON {
			b, err := utils.PrettyJSON(struct {
				Metrics clean.Metrics              `json:"metrics"`
				Stats   map[int]clean.ColumnStats `json:"columns"`
			}{res.Metrics, res.Stats})
			if err != nil {
				return err
			}
			fmt.Println(string(b))
		} else {
			fmt.Printf("✓ Decoded input as %s\n", encodingUsed)
			fmt.Println(report.Markdown(res))
			fmt.Printf("✓ Clean dataset saved to %s\n", out)
		}

		if clnSampleLines > 0 {
			if err := printSample(out, clnSampleLines); err != nil {
				return err
			}
		}
		return nil
	},
}

// printSample shows the first n lines of the written output so a run can
// be eyeballed without opening the file.
func printSample(path string, n int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open output for sampling: %w", err)
	}
	defer f.Close()

	fmt.Printf("\nSample from cleaned dataset:\n")
	fmt.Println(strings.Repeat("-", 80))
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 1<<20), 1<<20)
	for i := 0; i < n && sc.Scan(); i++ {
		line := sc.Text()
		if len(line) > 120 {
			line = line[:120] + "..."
		}
		fmt.Printf("Line %2d: %s\n", i+1, line)
	}
	return sc.Err()
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().StringVarP(&clnOutputPath, "output", "o", "", "output path (default <input>_cleaned.csv)")
	cleanCmd.Flags().StringVar(&clnDelimiter, "delimiter", "", "field delimiter: ',' | ';' | 'tab'")
	cleanCmd.Flags().BoolVar(&clnJSON, "json", false, "print metrics and column stats as JSON")
	cleanCmd.Flags().IntVar(&clnSampleLines, "sample", 0, "print the first N lines of the cleaned output")
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/sensorclean-cli/internal/clean"
	"github.com/KaramelBytes/sensorclean-cli/internal/report"
	"github.com/KaramelBytes/sensorclean-cli/internal/tableio"
	"github.com/KaramelBytes/sensorclean-cli/internal/utils"
)

var (
	profDelimiter string
	profJSON      bool
)

var profileCmd = &cobra.Command{
	Use:   "profile <file>",
	Short: "Show per-column statistics without modifying the data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := effectiveConfig()

		delim, err := parseDelimiter(profDelimiter)
		if err != nil {
			return err
		}

		rows, _, err := tableio.ReadFile(args[0], conf.Encodings, delim)
		if err != nil {
			return err
		}

		pipe := clean.NewPipeline(conf.PipelineOptions(), logger)
		res, err := pipe.ProfileTable(rows)
		if err != nil {
			return err
		}

		if profJSON {
			b, err := utils.PrettyJSON(res.Stats)
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		}
		fmt.Println(report.ProfileMarkdown(res))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.Flags().StringVar(&profDelimiter, "delimiter", "", "field delimiter: ',' | ';' | 'tab'")
	profileCmd.Flags().BoolVar(&profJSON, "json", false, "print column stats as JSON")
}

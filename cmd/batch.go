package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/abhisek/jimang/internal/batch"
	"github.com/abhisek/jimang/internal/render"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file.csv|->",
	Short: "Recommend choices for every student in a CSV file",
	Long: "Reads a CSV with the header name,middle_school,disposition,score,zone,gender\n" +
		"and prints one recommendation per row. Rows with invalid values are\n" +
		"reported in place and do not stop the batch.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.log.Sync()

		var in io.Reader = cmd.InOrStdin()
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open batch file: %w", err)
			}
			defer f.Close()
			in = f
		}

		rows, err := batch.ReadCSV(in)
		if err != nil {
			return fmt.Errorf("read batch file: %w", err)
		}

		workers := e.cfg.Batch.Workers
		if cmd.Flags().Changed("workers") {
			workers, _ = cmd.Flags().GetInt("workers")
		}

		outs, err := batch.NewRunner(e.engine, workers, e.log).Run(cmd.Context(), rows)
		if err != nil {
			return fmt.Errorf("run batch: %w", err)
		}
		return render.Outcomes(cmd.OutOrStdout(), e.format, outs)
	},
}

func init() {
	batchCmd.Flags().Int("workers", 0, "Concurrent workers (overrides batch.workers config)")
}

package cmd

import (
	"fmt"

	"github.com/abhisek/jimang/internal/rules"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect academic-year rule files",
}

var rulesValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a rules file against the schema and catalog references",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := rules.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (year %s, %d schools)\n", args[0], rs.Year(), len(rs.Schools()))
		return nil
	},
}

func init() {
	rulesCmd.AddCommand(rulesValidateCmd)
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/jimang/internal/rules"
	"github.com/spf13/cobra"
)

var schoolsCmd = &cobra.Command{
	Use:   "schools",
	Short: "List the school catalog (optionally filtered by gender restriction)",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		restriction, _ := cmd.Flags().GetString("restriction")

		schools := e.rules.Schools()
		if restriction != "" {
			r := rules.Restriction(strings.ToLower(restriction))
			switch r {
			case rules.RestrictionCoed, rules.RestrictionBoysOnly, rules.RestrictionGirlsOnly:
			default:
				return fmt.Errorf("unknown restriction %q (want coed, boys or girls)", restriction)
			}
			filtered := schools[:0]
			for _, s := range schools {
				if s.Restriction == r {
					filtered = append(filtered, s)
				}
			}
			schools = filtered
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-18s  %-12s  %-8s  %s\n", "ID", "Name", "Category", "Restriction")
		fmt.Fprintln(out, strings.Repeat("─", 60))
		for _, s := range schools {
			fmt.Fprintf(out, "%-18s  %-12s  %-8s  %s\n",
				s.ID, s.Name, e.rules.CategoryOf(s.ID), s.Restriction.Label())
		}
		fmt.Fprintf(out, "\n%d schools (%s rules)\n", len(schools), e.rules.Year())
		return nil
	},
}

func init() {
	schoolsCmd.Flags().String("restriction", "", "Filter by restriction (coed, boys, girls)")
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/jimang/internal/recommend"
	"github.com/abhisek/jimang/internal/rules"
	"github.com/spf13/cobra"
)

var clustersCmd = &cobra.Command{
	Use:   "clusters",
	Short: "Show cluster keywords in matching order, or classify a middle school",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if cmd.Flags().Changed("detect") {
			name, _ := cmd.Flags().GetString("detect")
			c := recommend.DetectCluster(name, e.rules)
			fmt.Fprintf(out, "%s\t%s\t%s\n", name, c, c.Label())
			return nil
		}

		for i, c := range rules.AllClusters() {
			cr, _ := e.rules.Cluster(c)
			fmt.Fprintf(out, "%d. %-14s %-12s first=%s second=%s\n", i+1, c, c.Label(), cr.First, cr.Second)
			fmt.Fprintf(out, "   keywords: %s\n", strings.Join(cr.Keywords, ", "))
			if cr.FallbackZone != "" {
				fmt.Fprintf(out, "   3rd–5th from zone: %s\n", cr.FallbackZone.Label())
			}
		}
		return nil
	},
}

func init() {
	clustersCmd.Flags().String("detect", "", "Middle-school name to classify")
}

package cmd

import (
	"fmt"

	"github.com/abhisek/jimang/internal/recommend"
	"github.com/abhisek/jimang/internal/render"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend 1st–5th choices for one student",
	Example: `  jimang recommend --name 예시학생A --middle-school 용지중 --disposition 탐구형 --score 93 --zone 의창
  jimang recommend --middle-school 창북중 --disposition stable --score 90 --zone jinhae --gender male --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.log.Sync()

		req := recommend.ProfileRequest{}
		req.Name, _ = cmd.Flags().GetString("name")
		req.MiddleSchool, _ = cmd.Flags().GetString("middle-school")
		req.Disposition, _ = cmd.Flags().GetString("disposition")
		req.Zone, _ = cmd.Flags().GetString("zone")
		req.Gender, _ = cmd.Flags().GetString("gender")
		req.Score, _ = cmd.Flags().GetFloat64("score")

		p, err := recommend.ParseProfile(req)
		if err != nil {
			return err
		}

		log := e.log.With("request_id", uuid.New().String())
		res := e.engine.Recommend(p)
		log.Info("recommendation served",
			"cluster", res.Cluster,
			"choices", len(res.Schools),
			"gender_filtered", res.GenderFiltered,
			"gender_fallback", res.GenderFallback,
		)
		if res.GenderFallback {
			log.Warn("gender filter fallback returned schools the student may not attend", "gender", p.Gender)
		}

		if err := render.Result(cmd.OutOrStdout(), e.format, res); err != nil {
			return fmt.Errorf("render result: %w", err)
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().String("name", "", "Student name (display only)")
	recommendCmd.Flags().String("middle-school", "", "Middle school name, e.g. 용지중")
	recommendCmd.Flags().String("disposition", "", "Disposition: 탐구형|안정형|도전형 (explorer|stable|challenger)")
	recommendCmd.Flags().Float64("score", 0, "Grade average, 0–100")
	recommendCmd.Flags().String("zone", "", "Commuting zone: 의창|성산|마산|진해 (uichang|seongsan|masan|jinhae)")
	recommendCmd.Flags().String("gender", "", "Gender: 남|여 (male|female); blank for unspecified")

	_ = recommendCmd.MarkFlagRequired("disposition")
	_ = recommendCmd.MarkFlagRequired("score")
	_ = recommendCmd.MarkFlagRequired("zone")
}

package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/jimang/internal/config"
	"github.com/abhisek/jimang/internal/logger"
	"github.com/abhisek/jimang/internal/recommend"
	"github.com/abhisek/jimang/internal/render"
	"github.com/abhisek/jimang/internal/rules"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jimang",
	Short: "High-school choice recommender",
	Long: "jimang recommends 1st through 5th high-school choices for Changwon middle-school students\n" +
		"from their middle school, disposition, grade average, commuting zone and gender.",
	SilenceUsage: true,
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides JIMANG_CONFIG env var)")
	rootCmd.PersistentFlags().String("rules", "", "Path to an academic-year rules file (default: embedded rules)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("format", "", "Output format: text or json")

	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(schoolsCmd)
	rootCmd.AddCommand(clustersCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)
}

// env is what a command needs after config has been resolved.
type env struct {
	cfg    *config.Config
	log    *logger.Logger
	rules  *rules.RuleSet
	engine *recommend.Engine
	format render.Format
}

// setup loads config, applies flag overrides, and builds the logger, rule
// set, and engine. Flags take precedence over config file and env vars.
func setup(cmd *cobra.Command) (*env, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if v, _ := cmd.Flags().GetString("rules"); v != "" {
		cfg.Rules.Path = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}
	if v, _ := cmd.Flags().GetString("format"); v != "" {
		cfg.Output.Format = v
	}

	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	rs, err := loadRules(cfg.Rules.Path)
	if err != nil {
		return nil, err
	}
	log.Debug("rules loaded", "year", rs.Year(), "source", rulesSource(cfg.Rules.Path))

	return &env{
		cfg:    cfg,
		log:    log,
		rules:  rs,
		engine: recommend.New(rs, recommend.WithLogger(log.Zap())),
		format: format,
	}, nil
}

func loadRules(path string) (*rules.RuleSet, error) {
	if path == "" {
		return rules.Default()
	}
	return rules.Load(path)
}

func rulesSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}

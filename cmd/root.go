package cmd

import (
	"fmt"

	"github.com/sflc/amendments/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "amendments",
	Short: "Flashcards and a timeline for the constitutional amendments",
	Long: `amendments is a terminal trainer for the 27 amendments to the U.S. Constitution.

Pick the right title for each definition, then carry the card to its year on the timeline.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("seed", "", "Shuffle seed for a repeatable order (overrides "+config.EnvSeed+")")
	rootCmd.PersistentFlags().Bool("ordered", false, "Present cards in catalog order (overrides "+config.EnvOrdered+")")
	rootCmd.PersistentFlags().String("log-file", "", "Write structured logs to this file (overrides "+config.EnvLogFile+")")
	rootCmd.PersistentFlags().Bool("no-splash", false, "Skip the welcome animation (overrides "+config.EnvNoSplash+")")

	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig reads the environment and then applies any flags the user
// set explicitly.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return cfg, fmt.Errorf("read environment: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		v, _ := flags.GetString("seed")
		seed, err := config.ParseSeed(v)
		if err != nil {
			return cfg, fmt.Errorf("--seed: %w", err)
		}
		cfg.Seed = seed
	}
	if flags.Changed("ordered") {
		cfg.Ordered, _ = flags.GetBool("ordered")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("no-splash") {
		cfg.SkipSplash, _ = flags.GetBool("no-splash")
	}
	return cfg, nil
}

// ABOUTME: Root Cobra command for nutri CLI.
// ABOUTME: Loads .env, config, and the logger in PersistentPreRunE.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/harperreed/nutri/internal/config"
	"github.com/harperreed/nutri/internal/session"
	"github.com/spf13/cobra"
)

var (
	cfg       *config.Config
	logger    *log.Logger
	debugFlag bool
	envFile   string
)

var rootCmd = &cobra.Command{
	Use:   "nutri",
	Short: "Personal nutrition and activity tracker",
	Long: `Nutri tracks what you eat, how much water you drink, and how long you
exercise against daily goals, and reminds you about meals and hydration.

WHAT IT TRACKS:

  Food       calories, protein, carbs, fat from a built-in food catalog
  Water      servings per day
  Exercise   minutes per day

CALORIE TARGET:

  With a profile (age, gender, weight, height, activity, goal) the daily
  calorie target comes from the Harris-Benedict equation. Without one it
  is the calorie goal you set.

QUICK START:

  $ nutri target --age 30 --gender male --weight 70 --height 175 --activity moderate
  $ nutri foods                 # See the food catalog
  $ nutri shell                 # Track a day interactively

NOTIFICATIONS:

  Achievements fire once per day when calories reach 90% of target and when
  the water goal is met. Reminders fire at 08:00, 12:00, 19:00 and on even
  hours while water is below goal.

MCP INTEGRATION:

  Run 'nutri mcp' to host a tracking session for MCP-compatible assistants.

CONFIGURATION:

  ~/.config/nutri/config.json, overridable with NUTRI_REMINDER_POLICY,
  NUTRI_TICK_SECONDS, NUTRI_TIMEZONE and NUTRI_CATALOG (also read from .env).
  Nothing is persisted: each session starts fresh.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" {
			return nil
		}

		if err := config.LoadDotenv(envFile); err != nil {
			return err
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger = log.NewWithOptions(os.Stderr, log.Options{
			Prefix:          "nutri",
			ReportTimestamp: true,
			Level:           log.WarnLevel,
		})
		if debugFlag {
			logger.SetLevel(log.DebugLevel)
		}
		return nil
	},
}

// openSession builds a session from the loaded config.
func openSession() (*session.Session, error) {
	sess, err := cfg.OpenSession(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}
	return sess, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with NUTRI_* overrides")
}

// ABOUTME: CLI command computing the daily calorie target from a profile.
// ABOUTME: Prints basal rate, total expenditure, and the adjusted target.
package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/harperreed/nutri/internal/energy"
	"github.com/harperreed/nutri/internal/models"
	"github.com/spf13/cobra"
)

var targetProfile models.UserProfile

var targetCmd = &cobra.Command{
	Use:     "target",
	Aliases: []string{"tdee"},
	Short:   "Compute a daily calorie target",
	Long: `Compute basal metabolic rate (Harris-Benedict), total daily expenditure,
and the calorie target for a weight goal.

ACTIVITY LEVELS:

  sedentary    x1.200   little or no exercise
  light        x1.375   1-3 days/week
  moderate     x1.550   3-5 days/week
  active       x1.725   6-7 days/week
  very_active  x1.900   hard daily exercise or physical job

GOALS:

  lose      target = expenditure - 500
  maintain  target = expenditure
  gain      target = expenditure + 500

EXAMPLES:

  nutri target --age 30 --gender male --weight 70 --height 175 --activity moderate
  nutri target --age 25 --gender female --weight 60 --height 165 --goal lose`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printTarget(cmd.OutOrStdout(), targetProfile)
	},
}

func printTarget(w io.Writer, p models.UserProfile) error {
	b, err := energy.Compute(p)
	if err != nil {
		return err
	}
	mult, _ := energy.Multiplier(p.ActivityLevel)

	faint := color.New(color.Faint)
	fmt.Fprintf(w, "%s %.1f kcal\n", padRight("Basal rate", 18), b.Basal)
	fmt.Fprintf(w, "%s %.1f kcal %s\n", padRight("Expenditure", 18), b.Total, faint.Sprintf("(x%.3f %s)", mult, p.ActivityLevel))
	color.New(color.FgGreen, color.Bold).Fprintf(w, "%s %d kcal/day", padRight("Target", 18), b.Target)
	fmt.Fprintf(w, " %s\n", faint.Sprintf("(%s)", p.Goal))
	return nil
}

func init() {
	f := targetCmd.Flags()
	f.IntVar(&targetProfile.Age, "age", 0, "age in years")
	f.StringVar((*string)(&targetProfile.Gender), "gender", "", "male or female")
	f.Float64Var(&targetProfile.WeightKG, "weight", 0, "weight in kg")
	f.Float64Var(&targetProfile.HeightCM, "height", 0, "height in cm")
	f.StringVar((*string)(&targetProfile.ActivityLevel), "activity", string(models.ActivitySedentary), "activity level")
	f.StringVar((*string)(&targetProfile.Goal), "goal", string(models.GoalMaintain), "lose, maintain, or gain")
	_ = targetCmd.MarkFlagRequired("age")
	_ = targetCmd.MarkFlagRequired("gender")
	_ = targetCmd.MarkFlagRequired("weight")
	_ = targetCmd.MarkFlagRequired("height")
	rootCmd.AddCommand(targetCmd)
}

// ABOUTME: CLI command listing the food catalog.
// ABOUTME: Shows per-serving calories and macros with the ID used to record food.
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/nutri/internal/models"
	"github.com/spf13/cobra"
)

var foodsCmd = &cobra.Command{
	Use:     "foods",
	Aliases: []string{"f"},
	Short:   "List the food catalog",
	Long: `List the foods that can be recorded.

OUTPUT FORMAT:

  Each line shows: ID  NAME  KCAL  PROTEIN  CARBS  FAT  (SERVING)

  Use the ID with 'eat' in the shell or record_food over MCP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := cfg.GetCatalog()
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
		printFoods(cmd.OutOrStdout(), cat.All())
		return nil
	},
}

func printFoods(w io.Writer, foods []models.FoodItem) {
	faint := color.New(color.Faint)
	for _, f := range foods {
		fmt.Fprintf(w, "%s %s %6.0f kcal %5.1fp %5.1fc %5.1ff %s\n",
			faint.Sprint(padRight(f.ID, 3)),
			padRight(truncate(f.Name, 32), 32),
			f.CaloriesPerServing,
			f.ProteinG, f.CarbsG, f.FatG,
			faint.Sprintf("(%s)", f.ServingDescription))
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	rootCmd.AddCommand(foodsCmd)
}

// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Hosts one tracking session with running reminders over stdio.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/nutri/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server hosts a single in-memory tracking session for as long as it runs,
with meal and hydration reminders ticking in the background. It communicates
via stdin/stdout.

CONFIGURATION:

  {
    "mcpServers": {
      "nutri": {
        "command": "nutri",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  record_food         Log servings of a catalog food
  adjust_water        Add or remove water servings
  adjust_exercise     Add or remove exercise minutes
  set_goals           Update daily goals
  set_profile         Set profile and recompute calorie goal
  calorie_target      Compute a calorie target
  today               Today's totals and progress
  list_notifications  Reminders and achievements
  mark_read           Mark one notification read
  mark_all_read       Mark all notifications read
  list_foods          Food catalog
  export_day          Today's report as json, yaml, or md

AVAILABLE RESOURCES:

  nutri://today          Today's dashboard
  nutri://notifications  Notification feed
  nutri://foods          Food catalog`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.Close()

		server, err := mcp.NewServer(sess)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		if err := sess.StartReminders(ctx); err != nil {
			return err
		}
		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

// ABOUTME: Terminal rendering for the dashboard and notification feed.
// ABOUTME: Uses lipgloss for the status panel and fatih/color for lists.
package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/harperreed/nutri/internal/models"
	"github.com/harperreed/nutri/internal/session"
)

const barWidth = 20

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle = lipgloss.NewStyle().Width(10)
	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	todoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// bar draws a fixed-width progress bar. Percentages above 100 fill it.
func bar(pct float64, width int) string {
	filled := int(pct / 100 * float64(width))
	filled = min(max(filled, 0), width)
	return doneStyle.Render(strings.Repeat("█", filled)) +
		todoStyle.Render(strings.Repeat("░", width-filled))
}

func progressLine(label string, pct float64, detail string) string {
	return fmt.Sprintf("%s %s %3.0f%%  %s", labelStyle.Render(label), bar(pct, barWidth), pct, detail)
}

func renderStatus(w io.Writer, snap session.Snapshot) {
	target := "goal"
	if snap.HasProfile {
		target = "profile"
	}
	lines := []string{
		titleStyle.Render("Today " + snap.At.Format("Mon Jan 2 15:04")),
		"",
		progressLine("Calories", snap.Progress.Calories,
			fmt.Sprintf("%.0f / %d kcal (%d left, from %s)", snap.Totals.Calories, snap.CalorieTarget, snap.CaloriesRemaining, target)),
		progressLine("Protein", snap.Progress.ProteinG, fmt.Sprintf("%.1f / %d g", snap.Totals.ProteinG, snap.Goals.ProteinG)),
		progressLine("Carbs", snap.Progress.CarbsG, fmt.Sprintf("%.1f / %d g", snap.Totals.CarbsG, snap.Goals.CarbsG)),
		progressLine("Fat", snap.Progress.FatG, fmt.Sprintf("%.1f / %d g", snap.Totals.FatG, snap.Goals.FatG)),
		progressLine("Water", snap.Progress.Water, fmt.Sprintf("%d / %d servings", snap.Water, snap.Goals.WaterServings)),
		progressLine("Exercise", snap.Progress.Exercise, fmt.Sprintf("%d / %d min", snap.Exercise, snap.Goals.ExerciseMinutes)),
	}
	if len(snap.Entries) > 0 {
		lines = append(lines, "")
		for _, e := range snap.Entries {
			lines = append(lines, fmt.Sprintf("%s %s x%g  %.0f kcal",
				e.ConsumedAt.Format("15:04"), padRight(truncate(e.Food.Name, 28), 28), e.Quantity, e.Calories()))
		}
	}
	if snap.Unread > 0 {
		lines = append(lines, "", fmt.Sprintf("%d unread notification(s)", snap.Unread))
	}
	fmt.Fprintln(w, panelStyle.Render(strings.Join(lines, "\n")))
}

func kindColor(k models.NotificationKind) *color.Color {
	switch k {
	case models.KindAchievement:
		return color.New(color.FgGreen, color.Bold)
	case models.KindWarning:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgCyan)
	}
}

func renderNotifications(w io.Writer, list []models.Notification, unreadOnly bool, loc *time.Location) {
	faint := color.New(color.Faint)
	shown := 0
	for _, n := range list {
		if unreadOnly && n.Read {
			continue
		}
		marker := "*"
		if n.Read {
			marker = " "
		}
		fmt.Fprintf(w, "%s %s %s %s %s\n",
			marker,
			faint.Sprint(n.ID.String()[:8]),
			faint.Sprint(n.CreatedAt.In(loc).Format("15:04")),
			kindColor(n.Kind).Sprint(padRight(string(n.Kind), 11)),
			n.Message)
		shown++
	}
	if shown == 0 {
		fmt.Fprintln(w, "No notifications.")
	}
}

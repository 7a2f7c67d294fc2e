// ABOUTME: Day report export for a tracking session.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/harperreed/nutri/internal/ledger"
	"github.com/harperreed/nutri/internal/models"
	"github.com/harperreed/nutri/internal/session"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by Render for an unsupported format name.
var ErrUnknownFormat = errors.New("report: unknown format")

// Formats lists the accepted format names.
var Formats = []string{"json", "yaml", "md"}

// ExportData is the full export of one calendar day.
type ExportData struct {
	Version       string                `json:"version"`
	ExportedAt    time.Time             `json:"exported_at"`
	Tool          string                `json:"tool"`
	Day           string                `json:"day"`
	Snapshot      session.Snapshot      `json:"snapshot"`
	Notifications []models.Notification `json:"notifications"`
}

// Build assembles the report for the snapshot's day. Only notifications
// created on that day are included.
func Build(snap session.Snapshot, notes []models.Notification, loc *time.Location) *ExportData {
	today := make([]models.Notification, 0, len(notes))
	for _, n := range notes {
		if ledger.SameDay(n.CreatedAt, snap.At, loc) {
			n.CreatedAt = n.CreatedAt.In(loc)
			today = append(today, n)
		}
	}
	return &ExportData{
		Version:       "1.0",
		ExportedAt:    snap.At,
		Tool:          "nutri",
		Day:           ledger.DayKey(snap.At, loc),
		Snapshot:      snap,
		Notifications: today,
	}
}

// Render encodes the report in the named format.
func Render(data *ExportData, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", "json":
		return data.JSON()
	case "yaml", "yml":
		return data.YAML()
	case "md", "markdown":
		return []byte(data.Markdown()), nil
	default:
		return nil, fmt.Errorf("%w: %s (want one of %s)", ErrUnknownFormat, format, strings.Join(Formats, ", "))
	}
}

// JSON exports the report as indented JSON.
func (e *ExportData) JSON() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}

// YAML exports the report with rounded figures and short IDs.
func (e *ExportData) YAML() ([]byte, error) {
	s := e.Snapshot
	yamlData := struct {
		Version       string             `yaml:"version"`
		ExportedAt    string             `yaml:"exported_at"`
		Tool          string             `yaml:"tool"`
		Day           string             `yaml:"day"`
		CalorieTarget int                `yaml:"calorie_target"`
		Remaining     int                `yaml:"calories_remaining"`
		Totals        yamlTotals         `yaml:"totals"`
		Goals         models.DailyGoals  `yaml:"goals"`
		Water         int                `yaml:"water_servings"`
		Exercise      int                `yaml:"exercise_minutes"`
		Entries       []yamlEntry        `yaml:"entries"`
		Notifications []yamlNotification `yaml:"notifications,omitempty"`
	}{
		Version:       e.Version,
		ExportedAt:    e.ExportedAt.Format(time.RFC3339),
		Tool:          e.Tool,
		Day:           e.Day,
		CalorieTarget: s.CalorieTarget,
		Remaining:     s.CaloriesRemaining,
		Totals: yamlTotals{
			Calories: round1(s.Totals.Calories),
			ProteinG: round1(s.Totals.ProteinG),
			CarbsG:   round1(s.Totals.CarbsG),
			FatG:     round1(s.Totals.FatG),
		},
		Goals:    s.Goals,
		Water:    s.Water,
		Exercise: s.Exercise,
		Entries:  make([]yamlEntry, 0, len(s.Entries)),
	}

	for _, en := range s.Entries {
		yamlData.Entries = append(yamlData.Entries, yamlEntry{
			Food:       en.Food.Name,
			Quantity:   en.Quantity,
			Calories:   round1(en.Calories()),
			ConsumedAt: en.ConsumedAt.Format(time.RFC3339),
		})
	}
	for _, n := range e.Notifications {
		yamlData.Notifications = append(yamlData.Notifications, yamlNotification{
			ID:        n.ID.String()[:8],
			Kind:      string(n.Kind),
			Topic:     string(n.Topic),
			Message:   n.Message,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
			Read:      n.Read,
		})
	}

	return yaml.Marshal(yamlData)
}

type yamlTotals struct {
	Calories float64 `yaml:"calories"`
	ProteinG float64 `yaml:"protein_g"`
	CarbsG   float64 `yaml:"carbs_g"`
	FatG     float64 `yaml:"fat_g"`
}

type yamlEntry struct {
	Food       string  `yaml:"food"`
	Quantity   float64 `yaml:"quantity"`
	Calories   float64 `yaml:"calories"`
	ConsumedAt string  `yaml:"consumed_at"`
}

type yamlNotification struct {
	ID        string `yaml:"id"`
	Kind      string `yaml:"kind"`
	Topic     string `yaml:"topic"`
	Message   string `yaml:"message"`
	CreatedAt string `yaml:"created_at"`
	Read      bool   `yaml:"read"`
}

// Markdown exports the report as a Markdown document.
func (e *ExportData) Markdown() string {
	s := e.Snapshot
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Nutrition Report - %s\n\n", e.Day))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", e.ExportedAt.Format(time.RFC3339)))

	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Measure | Consumed | Goal | Progress |\n")
	sb.WriteString("|---------|----------|------|----------|\n")
	rows := []struct {
		name     string
		consumed string
		goal     string
		pct      float64
	}{
		{"Calories", fmt.Sprintf("%.0f kcal", s.Totals.Calories), fmt.Sprintf("%d kcal", s.CalorieTarget), s.Progress.Calories},
		{"Protein", fmt.Sprintf("%.1f g", s.Totals.ProteinG), fmt.Sprintf("%d g", s.Goals.ProteinG), s.Progress.ProteinG},
		{"Carbs", fmt.Sprintf("%.1f g", s.Totals.CarbsG), fmt.Sprintf("%d g", s.Goals.CarbsG), s.Progress.CarbsG},
		{"Fat", fmt.Sprintf("%.1f g", s.Totals.FatG), fmt.Sprintf("%d g", s.Goals.FatG), s.Progress.FatG},
		{"Water", fmt.Sprintf("%d servings", s.Water), fmt.Sprintf("%d servings", s.Goals.WaterServings), s.Progress.Water},
		{"Exercise", fmt.Sprintf("%d min", s.Exercise), fmt.Sprintf("%d min", s.Goals.ExerciseMinutes), s.Progress.Exercise},
	}
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %.0f%% |\n", r.name, r.consumed, r.goal, r.pct))
	}
	sb.WriteString("\n")

	if len(s.Entries) > 0 {
		sb.WriteString("## Food\n\n")
		sb.WriteString("| Time | Food | Servings | Calories |\n")
		sb.WriteString("|------|------|----------|----------|\n")
		for _, en := range s.Entries {
			sb.WriteString(fmt.Sprintf("| %s | %s | %g | %.0f |\n",
				en.ConsumedAt.Format("15:04"), en.Food.Name, en.Quantity, en.Calories()))
		}
		sb.WriteString("\n")
	}

	if len(e.Notifications) > 0 {
		sb.WriteString("## Notifications\n\n")
		for _, n := range e.Notifications {
			sb.WriteString(fmt.Sprintf("- %s [%s] %s\n", n.CreatedAt.Format("15:04"), n.Kind, n.Message))
		}
	}

	return sb.String()
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

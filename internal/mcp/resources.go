// ABOUTME: MCP resource implementations for the nutrition tracker.
// ABOUTME: Provides nutri://today, nutri://notifications, and nutri://foods.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/harperreed/nutri/internal/models"
	"github.com/harperreed/nutri/internal/session"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// nutri://today - Dashboard for the current calendar day
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "nutri://today",
		Name:        "Today's Nutrition",
		Description: "Totals, goals, remaining calories, and progress for today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// nutri://notifications - Full notification feed
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "nutri://notifications",
		Name:        "Notifications",
		Description: "Reminders and achievements, most recent first",
		MIMEType:    "application/json",
	}, s.handleNotificationsResource)

	// nutri://foods - Food catalog
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "nutri://foods",
		Name:        "Food Catalog",
		Description: "Foods that can be recorded, with per-serving nutrition",
		MIMEType:    "application/json",
	}, s.handleFoodsResource)
}

type todayOutput struct {
	Date              string             `json:"date"`
	Totals            models.MacroTotals `json:"totals"`
	Goals             models.DailyGoals  `json:"goals"`
	CalorieTarget     int                `json:"calorie_target"`
	CaloriesRemaining int                `json:"calories_remaining"`
	Progress          session.Progress   `json:"progress"`
	WaterServings     int                `json:"water_servings"`
	ExerciseMinutes   int                `json:"exercise_minutes"`
	HasProfile        bool               `json:"has_profile"`
	Unread            int                `json:"unread"`
	Entries           []entryView        `json:"entries"`
}

type entryView struct {
	FoodID     string  `json:"food_id"`
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	Calories   float64 `json:"calories"`
	ConsumedAt string  `json:"consumed_at"`
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func newTodayOutput(snap session.Snapshot) todayOutput {
	out := todayOutput{
		Date: snap.Day,
		Totals: models.MacroTotals{
			Calories: round1(snap.Totals.Calories),
			ProteinG: round1(snap.Totals.ProteinG),
			CarbsG:   round1(snap.Totals.CarbsG),
			FatG:     round1(snap.Totals.FatG),
		},
		Goals:             snap.Goals,
		CalorieTarget:     snap.CalorieTarget,
		CaloriesRemaining: snap.CaloriesRemaining,
		Progress: session.Progress{
			Calories: round1(snap.Progress.Calories),
			ProteinG: round1(snap.Progress.ProteinG),
			CarbsG:   round1(snap.Progress.CarbsG),
			FatG:     round1(snap.Progress.FatG),
			Water:    round1(snap.Progress.Water),
			Exercise: round1(snap.Progress.Exercise),
		},
		WaterServings:   snap.Water,
		ExerciseMinutes: snap.Exercise,
		HasProfile:      snap.HasProfile,
		Unread:          snap.Unread,
		Entries:         make([]entryView, 0, len(snap.Entries)),
	}
	for _, e := range snap.Entries {
		out.Entries = append(out.Entries, entryView{
			FoodID:     e.Food.ID,
			Name:       e.Food.Name,
			Quantity:   e.Quantity,
			Calories:   round1(e.Calories()),
			ConsumedAt: e.ConsumedAt.Format("15:04"),
		})
	}
	return out
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource("nutri://today", newTodayOutput(s.session.Snapshot()))
}

func (s *Server) handleNotificationsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	views := []notificationView{}
	for _, n := range s.session.Notifications() {
		views = append(views, viewNotification(n))
	}
	return jsonResource("nutri://notifications", notificationsOutput{
		Notifications: views,
		Unread:        s.session.UnreadCount(),
	})
}

func (s *Server) handleFoodsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource("nutri://foods", foodsOutput{Foods: s.session.Catalog().All()})
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// ABOUTME: MCP tool implementations for the nutrition tracker.
// ABOUTME: Maps each session command and query to a tool.
package mcp

import (
	"context"
	"fmt"
	"math"

	"github.com/harperreed/nutri/internal/energy"
	"github.com/harperreed/nutri/internal/models"
	"github.com/harperreed/nutri/internal/report"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "record_food",
		Description: "Log servings of a catalog food eaten now",
	}, s.handleRecordFood)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "adjust_water",
		Description: "Add or remove water servings (never below zero)",
	}, s.handleAdjustWater)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "adjust_exercise",
		Description: "Add or remove exercise minutes (never below zero)",
	}, s.handleAdjustExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_goals",
		Description: "Update one or more daily goals; omitted fields are unchanged",
	}, s.handleSetGoals)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_profile",
		Description: "Set the user profile and recompute the calorie goal",
	}, s.handleSetProfile)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "calorie_target",
		Description: "Compute the daily calorie target for a profile, or the session's current target",
	}, s.handleCalorieTarget)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "today",
		Description: "Get today's totals, goals, and progress",
	}, s.handleToday)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_notifications",
		Description: "List reminders and achievements, most recent first",
	}, s.handleListNotifications)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "mark_read",
		Description: "Mark a notification as read by ID or ID prefix",
	}, s.handleMarkRead)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "mark_all_read",
		Description: "Mark every notification as read",
	}, s.handleMarkAllRead)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_foods",
		Description: "List the food catalog with per-serving nutrition",
	}, s.handleListFoods)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "export_day",
		Description: "Export today's report as json, yaml, or md",
	}, s.handleExportDay)
}

// Tool input/output types

type recordFoodInput struct {
	FoodID   string  `json:"food_id" jsonschema:"catalog food ID (see list_foods)"`
	Quantity *float64 `json:"quantity,omitempty" jsonschema:"number of servings, defaults to 1; must be positive"`
}

type entryOutput struct {
	FoodID   string  `json:"food_id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Calories float64 `json:"calories"`
	Unread   int     `json:"unread"`
	Message  string  `json:"message"`
}

type deltaInput struct {
	Delta int `json:"delta" jsonschema:"amount to add; negative values subtract"`
}

type counterOutput struct {
	Value   int    `json:"value"`
	Goal    int    `json:"goal"`
	Unread  int    `json:"unread"`
	Message string `json:"message"`
}

type setGoalsInput struct {
	Calories        *int `json:"calories,omitempty" jsonschema:"daily calories"`
	ProteinG        *int `json:"protein_g,omitempty" jsonschema:"daily protein in grams"`
	CarbsG          *int `json:"carbs_g,omitempty" jsonschema:"daily carbohydrates in grams"`
	FatG            *int `json:"fat_g,omitempty" jsonschema:"daily fat in grams"`
	WaterServings   *int `json:"water_servings,omitempty" jsonschema:"daily water servings"`
	ExerciseMinutes *int `json:"exercise_minutes,omitempty" jsonschema:"daily exercise minutes"`
}

type goalsOutput struct {
	Goals   models.DailyGoals `json:"goals"`
	Message string            `json:"message"`
}

type profileInput struct {
	Age           int     `json:"age" jsonschema:"age in years"`
	Gender        string  `json:"gender" jsonschema:"male or female"`
	WeightKG      float64 `json:"weight_kg" jsonschema:"body weight in kilograms"`
	HeightCM      float64 `json:"height_cm" jsonschema:"height in centimeters"`
	ActivityLevel string  `json:"activity_level" jsonschema:"sedentary, light, moderate, active, or very_active"`
	Goal          string  `json:"goal" jsonschema:"lose, maintain, or gain"`
}

func (in profileInput) profile() models.UserProfile {
	return models.UserProfile{
		Age:           in.Age,
		Gender:        models.Gender(in.Gender),
		WeightKG:      in.WeightKG,
		HeightCM:      in.HeightCM,
		ActivityLevel: models.ActivityLevel(in.ActivityLevel),
		Goal:          models.WeightGoal(in.Goal),
	}
}

type calorieTargetInput struct {
	Profile *profileInput `json:"profile,omitempty" jsonschema:"profile to compute for; omit to use the session"`
}

type targetOutput struct {
	Target  int     `json:"target"`
	Basal   float64 `json:"basal,omitempty"`
	Total   float64 `json:"total,omitempty"`
	Message string  `json:"message"`
}

type emptyInput struct{}

type listNotificationsInput struct {
	UnreadOnly bool `json:"unread_only,omitempty" jsonschema:"only return unread notifications"`
	Limit      int  `json:"limit,omitempty" jsonschema:"max results (default all)"`
}

type notificationView struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Topic     string `json:"topic"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
	Read      bool   `json:"read"`
}

type notificationsOutput struct {
	Notifications []notificationView `json:"notifications"`
	Unread        int                `json:"unread"`
}

type markReadInput struct {
	ID string `json:"id" jsonschema:"notification ID or ID prefix"`
}

type simpleOutput struct {
	Message string `json:"message"`
	Unread  int    `json:"unread"`
}

type foodsOutput struct {
	Foods []models.FoodItem `json:"foods"`
}

type exportInput struct {
	Format string `json:"format,omitempty" jsonschema:"json, yaml, or md (default json)"`
}

type exportOutput struct {
	Format  string `json:"format"`
	Content string `json:"content"`
}

// Tool handlers

func (s *Server) handleRecordFood(ctx context.Context, req *mcp.CallToolRequest, input recordFoodInput) (*mcp.CallToolResult, entryOutput, error) {
	qty := 1.0
	if input.Quantity != nil {
		qty = *input.Quantity
	}
	entry, err := s.session.RecordFood(input.FoodID, qty)
	if err != nil {
		return nil, entryOutput{}, err
	}
	return nil, entryOutput{
		FoodID:   entry.Food.ID,
		Name:     entry.Food.Name,
		Quantity: entry.Quantity,
		Calories: entry.Calories(),
		Unread:   s.session.UnreadCount(),
		Message:  fmt.Sprintf("Recorded %g x %s", entry.Quantity, entry.Food.Name),
	}, nil
}

func (s *Server) handleAdjustWater(ctx context.Context, req *mcp.CallToolRequest, input deltaInput) (*mcp.CallToolResult, counterOutput, error) {
	n := s.session.AdjustWater(input.Delta)
	goal := s.session.Goals().WaterServings
	return nil, counterOutput{
		Value:   n,
		Goal:    goal,
		Unread:  s.session.UnreadCount(),
		Message: fmt.Sprintf("Water: %d/%d servings", n, goal),
	}, nil
}

func (s *Server) handleAdjustExercise(ctx context.Context, req *mcp.CallToolRequest, input deltaInput) (*mcp.CallToolResult, counterOutput, error) {
	n := s.session.AdjustExercise(input.Delta)
	goal := s.session.Goals().ExerciseMinutes
	return nil, counterOutput{
		Value:   n,
		Goal:    goal,
		Unread:  s.session.UnreadCount(),
		Message: fmt.Sprintf("Exercise: %d/%d minutes", n, goal),
	}, nil
}

func (s *Server) handleSetGoals(ctx context.Context, req *mcp.CallToolRequest, input setGoalsInput) (*mcp.CallToolResult, goalsOutput, error) {
	patch := models.GoalsPatch{
		Calories:        input.Calories,
		ProteinG:        input.ProteinG,
		CarbsG:          input.CarbsG,
		FatG:            input.FatG,
		WaterServings:   input.WaterServings,
		ExerciseMinutes: input.ExerciseMinutes,
	}
	if patch.IsEmpty() {
		return nil, goalsOutput{}, fmt.Errorf("no goal fields provided")
	}
	g := s.session.SetGoals(patch)
	return nil, goalsOutput{Goals: g, Message: "Goals updated"}, nil
}

func (s *Server) handleSetProfile(ctx context.Context, req *mcp.CallToolRequest, input profileInput) (*mcp.CallToolResult, targetOutput, error) {
	target, err := s.session.SetProfile(input.profile())
	if err != nil {
		return nil, targetOutput{}, err
	}
	return nil, targetOutput{
		Target:  target,
		Message: fmt.Sprintf("Profile saved. Daily target is %d calories.", target),
	}, nil
}

func (s *Server) handleCalorieTarget(ctx context.Context, req *mcp.CallToolRequest, input calorieTargetInput) (*mcp.CallToolResult, targetOutput, error) {
	if input.Profile == nil {
		target := s.session.CalorieTarget()
		return nil, targetOutput{
			Target:  target,
			Message: fmt.Sprintf("Current daily target is %d calories", target),
		}, nil
	}

	b, err := energy.Compute(input.Profile.profile())
	if err != nil {
		return nil, targetOutput{}, err
	}
	return nil, targetOutput{
		Target:  b.Target,
		Basal:   math.Round(b.Basal*10) / 10,
		Total:   math.Round(b.Total*10) / 10,
		Message: fmt.Sprintf("Daily target is %d calories", b.Target),
	}, nil
}

func (s *Server) handleToday(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, todayOutput, error) {
	return nil, newTodayOutput(s.session.Snapshot()), nil
}

func (s *Server) handleListNotifications(ctx context.Context, req *mcp.CallToolRequest, input listNotificationsInput) (*mcp.CallToolResult, notificationsOutput, error) {
	out := notificationsOutput{Notifications: []notificationView{}}
	for _, n := range s.session.Notifications() {
		if input.UnreadOnly && n.Read {
			continue
		}
		out.Notifications = append(out.Notifications, viewNotification(n))
		if input.Limit > 0 && len(out.Notifications) >= input.Limit {
			break
		}
	}
	out.Unread = s.session.UnreadCount()
	return nil, out, nil
}

func (s *Server) handleMarkRead(ctx context.Context, req *mcp.CallToolRequest, input markReadInput) (*mcp.CallToolResult, simpleOutput, error) {
	id, err := s.session.ResolveNotification(input.ID)
	if err != nil {
		// Unknown IDs are a no-op, not an error.
		return nil, simpleOutput{Message: "No matching notification", Unread: s.session.UnreadCount()}, nil
	}
	if !s.session.MarkNotificationRead(id) {
		return nil, simpleOutput{Message: "No matching notification", Unread: s.session.UnreadCount()}, nil
	}
	return nil, simpleOutput{Message: "Marked as read", Unread: s.session.UnreadCount()}, nil
}

func (s *Server) handleMarkAllRead(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, simpleOutput, error) {
	s.session.MarkAllRead()
	return nil, simpleOutput{Message: "All notifications marked as read", Unread: s.session.UnreadCount()}, nil
}

func (s *Server) handleListFoods(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, foodsOutput, error) {
	return nil, foodsOutput{Foods: s.session.Catalog().All()}, nil
}

func (s *Server) handleExportDay(ctx context.Context, req *mcp.CallToolRequest, input exportInput) (*mcp.CallToolResult, exportOutput, error) {
	data := report.Build(s.session.Snapshot(), s.session.Notifications(), s.session.Location())
	out, err := report.Render(data, input.Format)
	if err != nil {
		return nil, exportOutput{}, err
	}
	format := input.Format
	if format == "" {
		format = "json"
	}
	return nil, exportOutput{Format: format, Content: string(out)}, nil
}

func viewNotification(n models.Notification) notificationView {
	return notificationView{
		ID:        n.ID.String(),
		Kind:      string(n.Kind),
		Topic:     string(n.Topic),
		Message:   n.Message,
		CreatedAt: n.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		Read:      n.Read,
	}
}

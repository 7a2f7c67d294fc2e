// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Calls handlers directly against an in-memory session.
package mcp

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/harperreed/nutri/internal/session"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 7, 14, 9, 30, 0, 0, time.UTC)

func setupTestServer(t *testing.T) *Server {
	t.Helper()
	sess := session.New(session.Options{
		Location: time.UTC,
		Clock:    func() time.Time { return testNow },
	})
	t.Cleanup(sess.Close)

	server, err := NewServer(sess)
	require.NoError(t, err)
	return server
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestNewServer(t *testing.T) {
	server := setupTestServer(t)
	assert.NotNil(t, server.mcpServer)
	assert.NotNil(t, server.session)
}

func TestHandleRecordFood(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   recordFoodInput
		wantCal float64
		wantErr bool
	}{
		{"default quantity", recordFoodInput{FoodID: "4"}, 105, false},
		{"explicit quantity", recordFoodInput{FoodID: "3", Quantity: floatPtr(2)}, 330, false},
		{"unknown food", recordFoodInput{FoodID: "404", Quantity: floatPtr(1)}, 0, true},
		{"zero quantity", recordFoodInput{FoodID: "3", Quantity: floatPtr(0)}, 0, true},
		{"negative quantity", recordFoodInput{FoodID: "3", Quantity: floatPtr(-1)}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, err := server.handleRecordFood(ctx, nil, tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCal, out.Calories)
			assert.Contains(t, out.Message, "Recorded")
		})
	}

	assert.Len(t, server.session.TodayEntries(), 2)
}

func TestHandleAdjustCounters(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, out, err := server.handleAdjustWater(ctx, nil, deltaInput{Delta: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Value)
	assert.Equal(t, 8, out.Goal)

	_, out, err = server.handleAdjustWater(ctx, nil, deltaInput{Delta: -5})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Value)

	_, out, err = server.handleAdjustExercise(ctx, nil, deltaInput{Delta: 15})
	require.NoError(t, err)
	assert.Equal(t, 15, out.Value)
	assert.Equal(t, 30, out.Goal)
}

func TestHandleSetGoals(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, _, err := server.handleSetGoals(ctx, nil, setGoalsInput{})
	assert.Error(t, err)

	_, out, err := server.handleSetGoals(ctx, nil, setGoalsInput{Calories: intPtr(1700), WaterServings: intPtr(10)})
	require.NoError(t, err)
	assert.Equal(t, 1700, out.Goals.Calories)
	assert.Equal(t, 10, out.Goals.WaterServings)
	assert.Equal(t, 150, out.Goals.ProteinG)
}

func TestHandleSetProfileAndTarget(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	profile := profileInput{Age: 30, Gender: "male", WeightKG: 70, HeightCM: 175, ActivityLevel: "moderate", Goal: "maintain"}

	_, out, err := server.handleCalorieTarget(ctx, nil, calorieTargetInput{Profile: &profile})
	require.NoError(t, err)
	assert.Equal(t, 2628, out.Target)
	assert.Equal(t, 1695.7, out.Basal)

	_, out, err = server.handleCalorieTarget(ctx, nil, calorieTargetInput{})
	require.NoError(t, err)
	assert.Equal(t, 2000, out.Target)

	_, out, err = server.handleSetProfile(ctx, nil, profile)
	require.NoError(t, err)
	assert.Equal(t, 2628, out.Target)

	_, out, err = server.handleCalorieTarget(ctx, nil, calorieTargetInput{})
	require.NoError(t, err)
	assert.Equal(t, 2628, out.Target)

	bad := profile
	bad.Age = 0
	_, _, err = server.handleSetProfile(ctx, nil, bad)
	assert.Error(t, err)
}

func TestHandleNotifications(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	server.session.AdjustWater(8)
	server.session.Tick(testNow.Add(-90 * time.Minute)) // 08:00, breakfast

	_, out, err := server.handleListNotifications(ctx, nil, listNotificationsInput{})
	require.NoError(t, err)
	require.Len(t, out.Notifications, 2)
	assert.Equal(t, "breakfast", out.Notifications[0].Topic)
	assert.Equal(t, "hydration_goal", out.Notifications[1].Topic)
	assert.Equal(t, 2, out.Unread)

	_, simple, err := server.handleMarkRead(ctx, nil, markReadInput{ID: out.Notifications[0].ID[:8]})
	require.NoError(t, err)
	assert.Equal(t, 1, simple.Unread)

	_, simple, err = server.handleMarkRead(ctx, nil, markReadInput{ID: "ffffffff-ffff-ffff-ffff-ffffffffffff"})
	require.NoError(t, err)
	assert.Equal(t, 1, simple.Unread)

	_, out, err = server.handleListNotifications(ctx, nil, listNotificationsInput{UnreadOnly: true})
	require.NoError(t, err)
	require.Len(t, out.Notifications, 1)
	assert.Equal(t, "achievement", out.Notifications[0].Kind)

	_, simple, err = server.handleMarkAllRead(ctx, nil, emptyInput{})
	require.NoError(t, err)
	assert.Equal(t, 0, simple.Unread)
}

func TestHandleListFoods(t *testing.T) {
	server := setupTestServer(t)
	_, out, err := server.handleListFoods(context.Background(), nil, emptyInput{})
	require.NoError(t, err)
	assert.Len(t, out.Foods, 15)
}

func TestHandleToday(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, _, err := server.handleRecordFood(ctx, nil, recordFoodInput{FoodID: "2", Quantity: floatPtr(1)})
	require.NoError(t, err)

	_, out, err := server.handleToday(ctx, nil, emptyInput{})
	require.NoError(t, err)
	assert.Equal(t, "2026-07-14", out.Date)
	assert.Equal(t, 227.0, out.Totals.Calories)
	assert.Equal(t, 1773, out.CaloriesRemaining)
	require.Len(t, out.Entries, 1)
	assert.Equal(t, "09:30", out.Entries[0].ConsumedAt)
}

func TestHandleTodayUsesSessionLocation(t *testing.T) {
	jst := time.FixedZone("JST", 9*3600)
	now := time.Date(2026, 7, 14, 20, 0, 0, 0, time.UTC)
	sess := session.New(session.Options{Location: jst, Clock: func() time.Time { return now }})
	t.Cleanup(sess.Close)
	server, err := NewServer(sess)
	require.NoError(t, err)
	ctx := context.Background()

	_, _, err = server.handleRecordFood(ctx, nil, recordFoodInput{FoodID: "5"})
	require.NoError(t, err)

	_, out, err := server.handleToday(ctx, nil, emptyInput{})
	require.NoError(t, err)
	assert.Equal(t, "2026-07-15", out.Date)
	require.Len(t, out.Entries, 1)
	assert.Equal(t, "05:00", out.Entries[0].ConsumedAt)
}

func TestHandleExportDay(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, _, err := server.handleRecordFood(ctx, nil, recordFoodInput{FoodID: "11"})
	require.NoError(t, err)

	_, out, err := server.handleExportDay(ctx, nil, exportInput{})
	require.NoError(t, err)
	assert.Equal(t, "json", out.Format)
	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(out.Content), &parsed))
	assert.Equal(t, "2026-07-14", parsed["day"])

	_, out, err = server.handleExportDay(ctx, nil, exportInput{Format: "md"})
	require.NoError(t, err)
	assert.Contains(t, out.Content, "Oats (1/2 cup)")

	_, _, err = server.handleExportDay(ctx, nil, exportInput{Format: "pdf"})
	assert.Error(t, err)
}

func TestResources(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()
	server.session.AdjustWater(8)

	tests := []struct {
		uri     string
		handler func(context.Context, *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error)
		key     string
	}{
		{"nutri://today", server.handleTodayResource, "calorie_target"},
		{"nutri://notifications", server.handleNotificationsResource, "notifications"},
		{"nutri://foods", server.handleFoodsResource, "foods"},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			res, err := tt.handler(ctx, nil)
			require.NoError(t, err)
			require.Len(t, res.Contents, 1)
			assert.Equal(t, tt.uri, res.Contents[0].URI)
			assert.Equal(t, "application/json", res.Contents[0].MIMEType)

			var decoded map[string]any
			require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &decoded))
			assert.Contains(t, decoded, tt.key)
		})
	}
}

// ABOUTME: Tests for the food catalog.
// ABOUTME: Covers the built-in data, lookups, and YAML validation.
package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	assert.Equal(t, 15, c.Len())

	salmon, err := c.Lookup("10")
	require.NoError(t, err)
	assert.Equal(t, "Grilled salmon (100g)", salmon.Name)
	assert.Equal(t, 208.0, salmon.CaloriesPerServing)
	assert.Equal(t, 25.4, salmon.ProteinG)
	assert.Equal(t, 12.4, salmon.FatG)
	assert.Equal(t, "100g", salmon.ServingDescription)

	all := c.All()
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "15", all[14].ID)
}

func TestLookupUnknown(t *testing.T) {
	_, err := Default().Lookup("99")
	if !errors.Is(err, ErrUnknownFood) {
		t.Fatalf("expected ErrUnknownFood, got %v", err)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	c := Default()
	all := c.All()
	all[0].Name = "changed"

	rice, err := c.Lookup("1")
	require.NoError(t, err)
	assert.Equal(t, "White rice (1 cup)", rice.Name)
}

func TestParseRejectsBadCatalogs(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", "foods: []"},
		{"missing id", "foods:\n  - {name: x, calories: 1}"},
		{"duplicate id", "foods:\n  - {id: a, calories: 1}\n  - {id: a, calories: 2}"},
		{"negative fat", "foods:\n  - {id: a, calories: 1, fat_g: -1}"},
		{"not yaml", "foods: [unterminated"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foods.yaml")
	data := "foods:\n  - {id: tofu, name: Tofu (100g), calories: 76, protein_g: 8, carbs_g: 1.9, fat_g: 4.8, serving: 100g}\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	c, err := Load(path)
	require.NoError(t, err)
	tofu, err := c.Lookup("tofu")
	require.NoError(t, err)
	assert.Equal(t, 76.0, tofu.CaloriesPerServing)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

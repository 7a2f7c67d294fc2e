// ABOUTME: Static food reference catalog loaded from embedded or user-supplied YAML.
// ABOUTME: Read-only after construction; lookups are by food ID.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/harperreed/nutri/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed foods.yaml
var builtinYAML []byte

// ErrUnknownFood is returned when a food ID is not in the catalog.
var ErrUnknownFood = errors.New("catalog: unknown food")

// Catalog is an ordered, read-only set of foods.
type Catalog struct {
	foods []models.FoodItem
	byID  map[string]int
}

type catalogFile struct {
	Foods []models.FoodItem `yaml:"foods"`
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(builtinYAML)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from YAML bytes, rejecting duplicate IDs and
// negative nutrition values.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Foods) == 0 {
		return nil, fmt.Errorf("parse catalog: no foods defined")
	}

	c := &Catalog{foods: f.Foods, byID: make(map[string]int, len(f.Foods))}
	for i, food := range f.Foods {
		if food.ID == "" {
			return nil, fmt.Errorf("parse catalog: food %d has no id", i)
		}
		if _, dup := c.byID[food.ID]; dup {
			return nil, fmt.Errorf("parse catalog: duplicate id %q", food.ID)
		}
		if food.CaloriesPerServing < 0 || food.ProteinG < 0 || food.CarbsG < 0 || food.FatG < 0 {
			return nil, fmt.Errorf("parse catalog: food %q has negative nutrition values", food.ID)
		}
		c.byID[food.ID] = i
	}
	return c, nil
}

// Lookup returns the food with the given ID.
func (c *Catalog) Lookup(id string) (models.FoodItem, error) {
	i, ok := c.byID[id]
	if !ok {
		return models.FoodItem{}, fmt.Errorf("%w: %s", ErrUnknownFood, id)
	}
	return c.foods[i], nil
}

// All returns a copy of the catalog in file order.
func (c *Catalog) All() []models.FoodItem {
	out := make([]models.FoodItem, len(c.foods))
	copy(out, c.foods)
	return out
}

// Len returns the number of foods.
func (c *Catalog) Len() int {
	return len(c.foods)
}

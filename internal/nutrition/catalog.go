package nutrition

import (
	"errors"
	"fmt"
	"strings"

	"github.com/limbo/snackcheck/pkg/entity"
	"github.com/spf13/viper"
)

// defaultFoods is the built-in catalog. Lookup scans it in this order and the
// first match wins, so the order is part of the data.
var defaultFoods = []entity.FoodCatalogEntry{
	{Name: "apple", Score: 9, Category: "fruit", CaloriesPer100g: 52, Feedback: "Perfect healthy snack! Rich in fiber and vitamins."},
	{Name: "banana", Score: 8, Category: "fruit", CaloriesPer100g: 89, Feedback: "Great source of potassium and natural energy."},
	{Name: "orange", Score: 9, Category: "fruit", CaloriesPer100g: 47, Feedback: "Excellent vitamin C source. Keep up the healthy choice!"},
	{Name: "carrot", Score: 9, Category: "vegetable", CaloriesPer100g: 41, Feedback: "Great for your eyes and skin. Rich in beta-carotene."},
	{Name: "pizza", Score: 3, Category: "processed", CaloriesPer100g: 266, Feedback: "Try a salad or fruit instead for better nutrition."},
	{Name: "chocolate", Score: 2, Category: "sweets", CaloriesPer100g: 546, Feedback: "Consider dark chocolate (70%+) or fruit for a healthier sweet option."},
	{Name: "candy", Score: 1, Category: "sweets", CaloriesPer100g: 375, Feedback: "Try fruits like grapes or berries for natural sweetness."},
	{Name: "chips", Score: 2, Category: "snacks", CaloriesPer100g: 536, Feedback: "Consider nuts, carrot sticks, or air-popped popcorn instead."},
	{Name: "yogurt", Score: 7, Category: "dairy", CaloriesPer100g: 59, Feedback: "Great choice! Greek yogurt with berries is even better."},
	{Name: "bread", Score: 6, Category: "grains", CaloriesPer100g: 265, Feedback: "Whole grain bread is a healthier choice."},
	{Name: "sandwich", Score: 6, Category: "meal", CaloriesPer100g: 250, Feedback: "Add more vegetables and choose whole grain bread."},
	{Name: "salad", Score: 9, Category: "vegetable", CaloriesPer100g: 20, Feedback: "Excellent! Add nuts or seeds for extra protein."},
	{Name: "water", Score: 10, Category: "drinks", CaloriesPer100g: 0, Feedback: "Perfect choice! Stay hydrated throughout the day."},
	{Name: "soda", Score: 1, Category: "drinks", CaloriesPer100g: 42, Feedback: "Try water, unsweetened tea, or sparkling water with lemon."},
	{Name: "burger", Score: 3, Category: "fast_food", CaloriesPer100g: 295, Feedback: "Consider a grilled chicken salad or veggie wrap instead."},
	{Name: "fries", Score: 2, Category: "fast_food", CaloriesPer100g: 365, Feedback: "Try baked sweet potato wedges or roasted vegetables."},
	{Name: "nuts", Score: 8, Category: "protein", CaloriesPer100g: 607, Feedback: "Great healthy fat and protein source. Watch portion sizes."},
	{Name: "egg", Score: 8, Category: "protein", CaloriesPer100g: 155, Feedback: "Excellent protein source. Great for breakfast or snacks."},
	{Name: "rice", Score: 6, Category: "grains", CaloriesPer100g: 130, Feedback: "Brown rice is more nutritious than white rice."},
	{Name: "chicken", Score: 8, Category: "protein", CaloriesPer100g: 239, Feedback: "Lean protein source. Remove skin for less fat."},
	{Name: "fish", Score: 9, Category: "protein", CaloriesPer100g: 206, Feedback: "Excellent source of protein and omega-3 fatty acids."},
	{Name: "broccoli", Score: 10, Category: "vegetable", CaloriesPer100g: 34, Feedback: "Superfood packed with vitamins and minerals!"},
	{Name: "spinach", Score: 10, Category: "vegetable", CaloriesPer100g: 23, Feedback: "Iron-rich leafy green. Great in salads or smoothies."},
	{Name: "pasta", Score: 5, Category: "grains", CaloriesPer100g: 220, Feedback: "Choose whole grain pasta and add lots of vegetables."},
	{Name: "cheese", Score: 6, Category: "dairy", CaloriesPer100g: 113, Feedback: "Good protein source but high in saturated fat. Moderate portions."},
	{Name: "milk", Score: 7, Category: "dairy", CaloriesPer100g: 42, Feedback: "Good source of calcium and protein."},
	{Name: "coffee", Score: 8, Category: "drinks", CaloriesPer100g: 1, Feedback: "Great antioxidant source! Avoid too much sugar or cream."},
	{Name: "tea", Score: 9, Category: "drinks", CaloriesPer100g: 1, Feedback: "Excellent choice! Green tea has additional antioxidants."},
}

// Catalog is an ordered, read-only food table.
type Catalog struct {
	entries []entity.FoodCatalogEntry
}

func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultFoods)
	if err != nil {
		panic("built-in nutrition catalog is invalid: " + err.Error())
	}
	return c
}

func NewCatalog(entries []entity.FoodCatalogEntry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, errors.New("catalog is empty")
	}
	seen := make(map[string]struct{}, len(entries))
	result := make([]entity.FoodCatalogEntry, 0, len(entries))
	for i, e := range entries {
		e.Name = strings.ToLower(strings.TrimSpace(e.Name))
		switch {
		case e.Name == "":
			return nil, fmt.Errorf("catalog entry %d: empty name", i)
		case e.Score < 1 || e.Score > 10:
			return nil, fmt.Errorf("catalog entry %q: score %d out of range 1-10", e.Name, e.Score)
		case e.CaloriesPer100g < 0:
			return nil, fmt.Errorf("catalog entry %q: negative calories", e.Name)
		}
		if _, ok := seen[e.Name]; ok {
			return nil, fmt.Errorf("catalog entry %q: duplicated name", e.Name)
		}
		seen[e.Name] = struct{}{}
		result = append(result, e)
	}
	return &Catalog{entries: result}, nil
}

// LoadCatalog reads a YAML catalog with a top-level "foods" list.
// Empty path means the built-in catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.New("reading catalog file error: " + err.Error())
	}
	var entries []entity.FoodCatalogEntry
	if err := v.UnmarshalKey("foods", &entries); err != nil {
		return nil, errors.New("parsing catalog file error: " + err.Error())
	}
	return NewCatalog(entries)
}

// Lookup returns the first entry whose name contains the input or is
// contained in it.
func (c *Catalog) Lookup(food string) (entity.FoodCatalogEntry, bool) {
	food = strings.ToLower(strings.TrimSpace(food))
	if food == "" {
		return entity.FoodCatalogEntry{}, false
	}
	for _, e := range c.entries {
		if strings.Contains(food, e.Name) || strings.Contains(e.Name, food) {
			return e, true
		}
	}
	return entity.FoodCatalogEntry{}, false
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

func (c *Catalog) Entries() []entity.FoodCatalogEntry {
	out := make([]entity.FoodCatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

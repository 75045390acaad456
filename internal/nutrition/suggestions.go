package nutrition

var (
	praiseSuggestions = []string{
		"Great choice! Keep it up!",
		"Maybe add some variety with other healthy options",
	}
	genericSuggestions = []string{
		"Add more fruits and vegetables",
		"Choose whole grain options",
		"Drink more water",
	}
	alternativesByCategory = map[string][]string{
		"sweets":    {"Try fresh fruits like berries or grapes", "Dark chocolate (70%+) in small amounts", "Frozen grapes or banana 'ice cream'"},
		"snacks":    {"Raw nuts or seeds", "Carrot sticks with hummus", "Air-popped popcorn"},
		"drinks":    {"Water with lemon or cucumber", "Herbal tea", "Sparkling water with fruit"},
		"fast_food": {"Grilled chicken salad", "Veggie wrap with hummus", "Homemade smoothie bowl"},
		"processed": {"Whole grain alternatives", "Fresh fruits and vegetables", "Homemade versions with less salt/sugar"},
	}
)

// Suggestions returns healthier alternatives for a food of the given category.
// Scores of 7 and above only get praise.
func Suggestions(category string, score int) []string {
	if score >= 7 {
		return clone(praiseSuggestions)
	}
	if alts, ok := alternativesByCategory[category]; ok {
		return clone(alts)
	}
	return clone(genericSuggestions)
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

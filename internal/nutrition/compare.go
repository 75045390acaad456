package nutrition

import (
	"fmt"
	"math"

	"github.com/limbo/snackcheck/pkg/entity"
)

type ComparedFood struct {
	Name            string  `json:"name"`
	Score           int     `json:"score"`
	CaloriesPer100g float64 `json:"calories_per_100g"`
	Category        string  `json:"category"`
	Feedback        string  `json:"feedback"`
}

type Comparison struct {
	First             ComparedFood `json:"food_1"`
	Second            ComparedFood `json:"food_2"`
	Winner            string       `json:"winner"`
	ScoreDifference   int          `json:"score_difference"`
	CalorieDifference float64      `json:"calorie_difference"`
	Recommendation    string       `json:"recommendation"`
}

// Compare puts two classified foods side by side. On equal scores the
// second food is reported as the winner.
func Compare(firstName string, first entity.Classification, secondName string, second entity.Classification) Comparison {
	winner := secondName
	if first.Score > second.Score {
		winner = firstName
	}
	diff := first.Score - second.Score
	if diff < 0 {
		diff = -diff
	}
	return Comparison{
		First:             comparedFood(firstName, first),
		Second:            comparedFood(secondName, second),
		Winner:            winner,
		ScoreDifference:   diff,
		CalorieDifference: math.Abs(first.CaloriesPer100g - second.CaloriesPer100g),
		Recommendation:    recommendation(diff),
	}
}

func comparedFood(name string, c entity.Classification) ComparedFood {
	return ComparedFood{
		Name:            name,
		Score:           c.Score,
		CaloriesPer100g: c.CaloriesPer100g,
		Category:        c.Category,
		Feedback:        c.Feedback,
	}
}

func recommendation(scoreDiff int) string {
	switch {
	case scoreDiff >= 3:
		return fmt.Sprintf("Clear winner! The better choice scores %d points higher and is much healthier.", scoreDiff)
	case scoreDiff >= 1:
		return fmt.Sprintf("Small but meaningful difference. The better option scores %d points higher.", scoreDiff)
	default:
		return "Both options are comparable in healthiness. Pick the one you enjoy more!"
	}
}

package nutrition

import (
	"strconv"
	"strings"
	"unicode"
)

const gramsPerPiece = 150

var (
	gramUnits = map[string]struct{}{
		"g": {}, "gr": {}, "gram": {}, "grams": {}, "gramme": {}, "grammes": {},
	}
	pieceUnits = map[string]struct{}{
		"piece": {}, "pieces": {}, "pc": {}, "pcs": {}, "stuk": {}, "stuks": {},
	}
)

// EstimateCalories turns a free-text quantity into total calories. The
// amount is the first run of digits. Units are matched as whole tokens, so
// "200g" and "200 grams" count as grams but "2 eggs" does not. Anything
// unparseable is treated as a 100g serving.
func EstimateCalories(quantity string, caloriesPer100g float64) float64 {
	if caloriesPer100g < 0 {
		caloriesPer100g = 0
	}
	tokens := tokenize(quantity)

	amountToken := ""
	for _, t := range tokens {
		if isDigits(t) {
			amountToken = t
			break
		}
	}
	if amountToken == "" {
		return caloriesPer100g
	}
	amount, err := strconv.ParseFloat(amountToken, 64)
	if err != nil {
		return caloriesPer100g
	}

	if hasToken(tokens, gramUnits) {
		return amount / 100 * caloriesPer100g
	}
	if hasToken(tokens, pieceUnits) {
		return amount * gramsPerPiece / 100 * caloriesPer100g
	}
	return caloriesPer100g
}

// tokenize splits text into lowercase runs of letters and runs of digits.
func tokenize(s string) []string {
	var (
		tokens []string
		cur    strings.Builder
		kind   int // 0 none, 1 letters, 2 digits
	)
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
		kind = 0
	}
	for _, r := range strings.ToLower(s) {
		var k int
		switch {
		case r >= '0' && r <= '9':
			k = 2
		case unicode.IsLetter(r):
			k = 1
		}
		if k == 0 {
			flush()
			continue
		}
		if k != kind {
			flush()
			kind = k
		}
		cur.WriteRune(r)
	}
	flush()
	return tokens
}

func isDigits(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

func hasToken(tokens []string, set map[string]struct{}) bool {
	for _, t := range tokens {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}

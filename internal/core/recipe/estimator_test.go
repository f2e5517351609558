package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateNutritionPermutationInvariance(t *testing.T) {
	a := EstimateNutrition([]string{"rice", "garlic"}, 4)
	b := EstimateNutrition([]string{"garlic", "rice"}, 4)

	assert.Equal(t, a, b)
}

func TestEstimateNutritionServingsScaling(t *testing.T) {
	four := EstimateNutrition([]string{"rice", "garlic"}, 4)
	eight := EstimateNutrition([]string{"rice", "garlic"}, 8)

	// 份數加倍時每份熱量約減半（允許進位誤差）
	assert.InDelta(t, four.Calories, eight.Calories*2, 1.0)
	assert.Equal(t, 4, four.Servings)
	assert.Equal(t, 8, eight.Servings)
}

func TestEstimateNutritionKnownValues(t *testing.T) {
	got := EstimateNutrition([]string{"chicken", "rice"}, 4)

	// chicken 165 + rice 130 = 295 → 74 每份
	assert.Equal(t, 74, got.Calories)
	assert.Equal(t, 8.5, got.Protein)
	assert.Equal(t, 7.0, got.Carbs)
	assert.Greater(t, got.Calories, 0)
}

func TestEstimateNutritionMatching(t *testing.T) {
	tests := []struct {
		name        string
		ingredient  string
		wantCal4Srv int
	}{
		{"exact match", "chicken", 41},                       // 165 / 4
		{"substring match", "chicken breast", 41},            // 同上，經部分比對
		{"reverse substring match", "toma", 5},               // "toma" 包含於 "tomatoes"，18 / 4 → 4.5 → 5
		{"unknown falls back to default", "dragonfruit", 13}, // 50 / 4
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateNutrition([]string{tt.ingredient}, 4)
			assert.Equal(t, tt.wantCal4Srv, got.Calories)
		})
	}
}

func TestEstimateNutritionEmptyInput(t *testing.T) {
	got := EstimateNutrition(nil, 4)

	assert.Equal(t, 0, got.Calories)
	assert.Equal(t, 0.0, got.Protein)
	assert.Equal(t, 0.0, got.Carbs)
	assert.Equal(t, 0.0, got.Fat)
	assert.Equal(t, 4, got.Servings)
}

func TestEstimateNutritionInvalidServings(t *testing.T) {
	got := EstimateNutrition([]string{"rice"}, 0)

	// servings 永不為零，除以零在結構上不可能發生
	assert.Equal(t, 4, got.Servings)
}

func TestEstimateCookingTime(t *testing.T) {
	tests := []struct {
		name        string
		ingredients []string
		complexity  string
		want        string
	}{
		{"unknown ingredient medium", []string{"dragonfruit"}, "medium", "23 minutes"}, // 10×1.3=13 + 10
		{"slowest ingredient wins", []string{"garlic", "beef"}, "easy", "35 minutes"},  // max(2,30)×1.0 + 5
		{"hard complexity", []string{"chicken"}, "hard", "60 minutes"},                 // 25×1.8=45 + 15
		{"unrecognized tier", []string{"chicken"}, "extreme", "35 minutes"},            // 25×1.0 + 10
		{"empty input is prep only", nil, "medium", "10 minutes"},                      // 0×1.3 + 10
		{"case insensitive tier", []string{"chicken"}, "Medium", "42 minutes"},         // 25×1.3=32.5→32 + 10
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateCookingTime(tt.ingredients, tt.complexity))
		})
	}
}
